package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestChapterLabel(t *testing.T) {
	assert.Equal(t, "Vol. 3 Ch. 12.5", Chapter{Volume: strPtr("3"), Number: strPtr("12.5")}.Label())
	assert.Equal(t, "Ch. 7", Chapter{Number: strPtr("7")}.Label())
	assert.Equal(t, "Ch. 7", Chapter{Volume: strPtr(""), Number: strPtr("7")}.Label())
	assert.Equal(t, "Oneshot", Chapter{}.Label())
}

func TestSortChapters(t *testing.T) {
	chapters := []Chapter{
		{Id: "c", Number: strPtr("3")},
		{Id: "b2", Number: strPtr("2.5"), Volume: strPtr("1")},
		{Id: "oneshot"},
		{Id: "b", Number: strPtr("2")},
		{Id: "zero", Number: strPtr("0")},
	}
	SortChapters(chapters)

	var ids []string
	for _, c := range chapters {
		ids = append(ids, c.Id)
	}
	assert.Equal(t, []string{"zero", "oneshot", "b", "b2", "c"}, ids)
}

func TestCollectionSummary(t *testing.T) {
	assert.Empty(t, Collection{}.Summary())
	assert.Equal(t, "1200 follows", Collection{Follows: 1200}.Summary())
	assert.Equal(t, "1200 follows, rated 7.40", Collection{Follows: 1200, Rating: 7.4}.Summary())
}
