package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mangaBody = `{
	"result": "ok",
	"response": "entity",
	"data": {
		"id": "%ID%",
		"type": "manga",
		"attributes": {
			"title": {"en": "Solo Leveling"},
			"status": "completed",
			"createdAt": "2018-11-16T11:17:07+00:00",
			"version": 3
		},
		"relationships": [
			{"id": "a1", "type": "author", "attributes": {"name": "Chugong", "version": 1}}
		]
	}
}`

func chapterJSON(id, volume, chapter string) string {
	return `{"id": "` + id + `", "type": "chapter", "attributes": {
		"volume": ` + volume + `, "chapter": ` + chapter + `, "pages": 12,
		"translatedLanguage": "en",
		"readableAt": "2024-01-01T00:00:00+00:00",
		"createdAt": "2024-01-01T00:00:00+00:00", "version": 1
	}, "relationships": []}`
}

func fakeMangaDex(t *testing.T, id string) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/manga/" + id:
			w.Write([]byte(strings.ReplaceAll(mangaBody, "%ID%", id)))
		case "/manga/" + id + "/feed":
			w.Write([]byte(`{"result": "ok", "response": "collection", "total": 4, "data": [` +
				chapterJSON("c10", `"1"`, `"10"`) + "," +
				chapterJSON("c2b", `"1"`, `"2.5"`) + "," +
				chapterJSON("c2", `null`, `"2"`) + "," +
				chapterJSON("c1", `"1"`, `"1"`) +
				`]}`))
		case "/statistics/manga/" + id:
			w.Write([]byte(`{"result": "ok", "statistics": {"` + id + `": {"rating": {"average": 9.1, "bayesian": 8.93}, "follows": 51234}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"result": "error", "errors": [{"status": 404, "title": "not_found"}]}`))
		}
	}))
	t.Cleanup(server.Close)
	t.Setenv("MANGADEX_BASE_URL", server.URL)
	t.Setenv("MANGADEX_LANGUAGES", "en,"+id)
	t.Setenv("LOG_LEVEL", "error")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChaptersJSON(t *testing.T) {
	id := "0e2f4b1c-1111-4c2a-8a3b-5d6e7f809102"
	fakeMangaDex(t, id)

	out, err := run(t, "chapters", id, "--json")
	require.NoError(t, err)

	var chapters []chapterOutput
	require.NoError(t, json.Unmarshal([]byte(out), &chapters))
	var ids []string
	for _, c := range chapters {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c1", "c2", "c2b", "c10"}, ids)
	assert.Equal(t, "Vol. 1 Ch. 2.5", chapters[2].Key)
	assert.Equal(t, "English", chapters[0].Language)
	assert.Nil(t, chapters[1].Volume)
}

func TestChaptersTable(t *testing.T) {
	id := "0e2f4b1c-2222-4c2a-8a3b-5d6e7f809102"
	fakeMangaDex(t, id)

	out, err := run(t, "chapters", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Solo Leveling (4 chapters, 51234 follows, rated 8.93)")
	assert.Contains(t, out, "CHAPTER")
	assert.Contains(t, out, "Vol. 1 Ch. 10")
	assert.Contains(t, out, "2024-01-01")
}

func TestChaptersInvalidId(t *testing.T) {
	_, err := run(t, "chapters", "solo-leveling")
	assert.ErrorContains(t, err, "invalid manga id")
}

func TestChaptersNotFound(t *testing.T) {
	id := "0e2f4b1c-3333-4c2a-8a3b-5d6e7f809102"
	fakeMangaDex(t, "0e2f4b1c-4444-4c2a-8a3b-5d6e7f809102")

	_, err := run(t, "chapters", id)
	assert.ErrorContains(t, err, "fetch chapters")
}
