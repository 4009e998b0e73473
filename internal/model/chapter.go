package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/HiRoS-neko/MangaDexLib/internal/ordering"
)

type Collection struct {
	Name     string
	Slug     string
	Created  time.Time
	Cover    Image
	Authors  []string
	Follows  int
	Rating   float64
	Chapters []Chapter
}

// Summary is the one line audience figure shown under a collection, e.g.
// "1200 follows, rated 7.40". Empty when nothing is known.
func (c Collection) Summary() string {
	var parts []string
	if c.Follows > 0 {
		parts = append(parts, fmt.Sprintf("%d follows", c.Follows))
	}
	if c.Rating > 0 {
		parts = append(parts, fmt.Sprintf("rated %.2f", c.Rating))
	}
	return strings.Join(parts, ", ")
}

func NewCollection(name, slug string, chapters []Chapter) Collection {
	return Collection{
		Name:     name,
		Slug:     slug,
		Created:  time.Now(),
		Chapters: chapters,
	}
}

type Chapter struct {
	Id          string
	Link        string
	Title       string
	Volume      *string
	Number      *string
	Language    string
	Group       string
	Manga       string
	MangaId     string
	Pages       int
	PublishDate time.Time
}

func (c Chapter) Key() ordering.Key {
	return ordering.NewKey(c.Number, c.Volume)
}

// Label renders the labels as the uploader typed them, e.g. "Vol. 3 Ch. 12.5".
func (c Chapter) Label() string {
	var parts []string
	if c.Volume != nil && *c.Volume != "" {
		parts = append(parts, "Vol. "+*c.Volume)
	}
	if c.Number != nil && *c.Number != "" {
		parts = append(parts, "Ch. "+*c.Number)
	}
	if len(parts) == 0 {
		return "Oneshot"
	}
	return strings.Join(parts, " ")
}

// SortChapters puts chapters in reading order.
func SortChapters(chapters []Chapter) {
	ordering.Sort(chapters, Chapter.Key)
}

type Image struct {
	Width  int
	Height int
	Url    string
}
