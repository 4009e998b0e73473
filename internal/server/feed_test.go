package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/feeds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HiRoS-neko/MangaDexLib/internal/feed"
	"github.com/HiRoS-neko/MangaDexLib/internal/model"
)

const mangaID = "32d76d19-8a05-4db0-9fc2-e0b0648fe9d0"

// MockBuilder is a mock implementation of the Builder interface
type MockBuilder struct {
	mock.Mock
}

func (m *MockBuilder) GetRecentReleases(ctx context.Context) (feeds.Feed, error) {
	args := m.Called(ctx)
	return args.Get(0).(feeds.Feed), args.Error(1)
}

func (m *MockBuilder) GetMangaReleases(ctx context.Context, id string) (feeds.Feed, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(feeds.Feed), args.Error(1)
}

func (m *MockBuilder) GetMangaCollection(ctx context.Context, id string) (model.Collection, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Collection), args.Error(1)
}

func createMockFeed(title, itemTitle string) feeds.Feed {
	now := time.Now()
	return feeds.Feed{
		Title:   title,
		Link:    &feeds.Link{Href: "https://mangadex.org"},
		Created: now,
		Items: []*feeds.Item{
			{
				Id:      "item",
				Title:   itemTitle,
				Link:    &feeds.Link{Href: "https://mangadex.org/chapter/item"},
				Created: now,
			},
		},
	}
}

func newTestRouter(builder feed.Builder) http.Handler {
	s := &Server{builder: builder, languages: []string{"en"}}
	return s.RegisterRoutes()
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRecentHandler(t *testing.T) {
	mockBuilder := new(MockBuilder)
	mockBuilder.On("GetRecentReleases", mock.Anything).Return(createMockFeed("Test Feed", "Test Item"), nil)
	r := newTestRouter(mockBuilder)

	tests := []struct {
		path        string
		contentType string
		body        string
	}{
		{"/recent", "application/rss+xml; charset=utf-8", "<rss"},
		{"/recent.rss", "application/rss+xml; charset=utf-8", "<rss"},
		{"/recent.atom", "application/atom+xml; charset=utf-8", "<feed"},
		{"/recent.json", "application/feed+json; charset=utf-8", `"title": "Test Feed"`},
		{"/recent.xml", "application/rss+xml; charset=utf-8", "<rss"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(t, r, tt.path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.body)
			assert.Contains(t, w.Body.String(), "Test Item")
			assert.NotEmpty(t, w.Header().Get("Last-Modified"))
			assert.Regexp(t, `^max-age=\d+$`, w.Header().Get("Cache-Control"))
		})
	}
}

func TestRecentHandlerError(t *testing.T) {
	mockBuilder := new(MockBuilder)
	mockBuilder.On("GetRecentReleases", mock.Anything).Return(feeds.Feed{}, errors.New("upstream down"))

	w := get(t, newTestRouter(mockBuilder), "/recent")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestMangaHandler(t *testing.T) {
	mockBuilder := new(MockBuilder)
	mockBuilder.On("GetMangaReleases", mock.Anything, mangaID).Return(createMockFeed("MangaDex: Solo Leveling", "Ch. 1"), nil)

	w := get(t, newTestRouter(mockBuilder), "/manga/"+mangaID+".atom")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/atom+xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Solo Leveling")
	mockBuilder.AssertCalled(t, "GetMangaReleases", mock.Anything, mangaID)
}

func TestMangaHandlerNormalisesId(t *testing.T) {
	mockBuilder := new(MockBuilder)
	mockBuilder.On("GetMangaReleases", mock.Anything, mangaID).Return(createMockFeed("Feed", "Item"), nil)

	w := get(t, newTestRouter(mockBuilder), "/manga/32D76D19-8A05-4DB0-9FC2-E0B0648FE9D0")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMangaHandlerInvalidId(t *testing.T) {
	mockBuilder := new(MockBuilder)

	w := get(t, newTestRouter(mockBuilder), "/manga/solo-leveling.rss")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockBuilder.AssertNotCalled(t, "GetMangaReleases", mock.Anything, mock.Anything)
}

func TestMangaHandlerNotFound(t *testing.T) {
	mockBuilder := new(MockBuilder)
	mockBuilder.On("GetMangaReleases", mock.Anything, mangaID).Return(feeds.Feed{}, feed.ErrNotFound)

	w := get(t, newTestRouter(mockBuilder), "/manga/"+mangaID)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
}

func TestIndexAndRobots(t *testing.T) {
	r := newTestRouter(new(MockBuilder))

	w := get(t, r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/recent.rss")
	assert.Contains(t, w.Body.String(), "in en.")

	w = get(t, r, "/robots.txt")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User-agent")
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))

	w = get(t, r, "/robots")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(t, r, "/up")
	assert.Equal(t, http.StatusOK, w.Code)
}
