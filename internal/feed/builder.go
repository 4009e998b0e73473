package feed

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/gorilla/feeds"
	"github.com/rs/zerolog/log"

	"github.com/HiRoS-neko/MangaDexLib/internal/model"
)

//go:embed templates/*
var fs embed.FS

type Builder interface {
	GetRecentReleases(ctx context.Context) (feeds.Feed, error)
	GetMangaReleases(ctx context.Context, id string) (feeds.Feed, error)
	GetMangaCollection(ctx context.Context, id string) (model.Collection, error)
}

type builder struct {
	templates *template.Template
}

type content struct {
	Chapter model.Chapter
	Cover   model.Image
}

func newBuilder() builder {
	return builder{
		templates: template.Must(
			template.New("base").Funcs(sprig.FuncMap()).ParseFS(fs, "templates/*.tmpl"),
		),
	}
}

func (b *builder) buildFeed(title, link, description string, created time.Time, cover model.Image, chapters []model.Chapter) (feeds.Feed, error) {
	if description != "" {
		description = "\n" + description
	}
	feed := &feeds.Feed{
		Title:       title,
		Link:        &feeds.Link{Href: link},
		Created:     created,
		Description: fmt.Sprintf("Generated on %s%s", created.Format("02 Jan 2006 15:04:05 (-0700)"), description),
		Updated:     created,
	}
	if cover.Url != "" {
		feed.Image = &feeds.Image{Url: cover.Url, Title: title, Link: link}
	}
	for _, chapter := range chapters {
		var enclosure *feeds.Enclosure
		if cover.Url != "" {
			enclosure = &feeds.Enclosure{
				Url:  cover.Url,
				Type: "image/jpeg",
			}
		}
		item := &feeds.Item{
			Id:        chapter.Id,
			Title:     itemTitle(chapter),
			Link:      &feeds.Link{Href: chapter.Link},
			Author:    &feeds.Author{Name: chapter.Group},
			Content:   b.renderContent(chapter, cover),
			Created:   chapter.PublishDate,
			Enclosure: enclosure,
		}
		feed.Add(item)
	}
	feed.Sort(func(a, b *feeds.Item) bool {
		return b.Created.Before(a.Created)
	})

	return *feed, nil
}

func itemTitle(chapter model.Chapter) string {
	var title strings.Builder
	if chapter.Manga != "" {
		title.WriteString(chapter.Manga + " - ")
	}
	title.WriteString(chapter.Label())
	if chapter.Title != "" {
		title.WriteString(": " + chapter.Title)
	}
	return title.String()
}

func (b *builder) renderContent(chapter model.Chapter, cover model.Image) string {
	var out strings.Builder
	if err := b.templates.ExecuteTemplate(&out, "content.tmpl", content{Chapter: chapter, Cover: cover}); err != nil {
		log.Error().Err(err).Str("chapter", chapter.Id).Msg("Unable to render chapter content")
	}
	return out.String()
}
