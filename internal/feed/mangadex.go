package feed

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/HiRoS-neko/MangaDexLib/internal/cache"
	"github.com/HiRoS-neko/MangaDexLib/internal/mangadex"
	"github.com/HiRoS-neko/MangaDexLib/internal/model"
)

var ErrNotFound = mangadex.ErrNotFound

// maxFeedPages bounds how many pages of a manga feed are fetched for one collection.
const maxFeedPages = 5

type Client interface {
	GetManga(ctx context.Context, id string, includes ...mangadex.ObjectType) (mangadex.Manga, error)
	GetMangaFeed(ctx context.Context, id string, q mangadex.ListQuery) (mangadex.EntityList[mangadex.ChapterAttributes], error)
	GetChapters(ctx context.Context, q mangadex.ListQuery) (mangadex.EntityList[mangadex.ChapterAttributes], error)
	GetMangaStatistics(ctx context.Context, id string) (mangadex.Statistics, error)
}

type mangadexBuilder struct {
	builder
	client    Client
	languages []string
	limit     int
}

func NewMangaDexBuilder(client Client, languages []string, limit int) Builder {
	return &mangadexBuilder{
		builder:   newBuilder(),
		client:    client,
		languages: languages,
		limit:     limit,
	}
}

func (b mangadexBuilder) buildUrl(slug string) string {
	return fmt.Sprintf("https://mangadex.org/%s", slug)
}

func coverUrl(mangaId, fileName string) string {
	return fmt.Sprintf("https://uploads.mangadex.org/covers/%s/%s.256.jpg", mangaId, fileName)
}

func languageName(tag language.Tag, code string) string {
	if tag == language.Und {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}

func (b mangadexBuilder) mapChapter(source mangadex.Chapter, mangaTitle, mangaId string) model.Chapter {
	attrs := source.Attributes

	var groups []string
	for _, group := range mangadex.AllAttributesOf[mangadex.GroupAttributes](source.Relationships, mangadex.ObjectTypeScanlationGroup) {
		groups = append(groups, group.Name)
	}
	if mangaTitle == "" {
		if manga, ok := mangadex.AttributesOf[mangadex.MangaAttributes](source.Relationships, mangadex.ObjectTypeManga); ok {
			mangaTitle = manga.Title.Get("en")
		}
	}
	if mangaId == "" {
		if rel, ok := source.Relationships.First(mangadex.ObjectTypeManga); ok {
			mangaId = rel.ID
		}
	}

	link := b.buildUrl("chapter/" + source.ID)
	if attrs.ExternalURL != nil && *attrs.ExternalURL != "" {
		link = *attrs.ExternalURL
	}
	var title string
	if attrs.Title != nil {
		title = *attrs.Title
	}
	published := attrs.ReadableAt
	if published.IsZero() {
		published = attrs.PublishAt
	}

	return model.Chapter{
		Id:          source.ID,
		Link:        link,
		Title:       title,
		Volume:      attrs.Volume,
		Number:      attrs.Chapter,
		Language:    languageName(attrs.Language(), attrs.TranslatedLanguage),
		Group:       strings.Join(groups, ", "),
		Manga:       mangaTitle,
		MangaId:     mangaId,
		Pages:       attrs.Pages,
		PublishDate: published,
	}
}

func (b mangadexBuilder) mapManga(source mangadex.Manga) model.Collection {
	var authors []string
	for _, t := range []mangadex.ObjectType{mangadex.ObjectTypeAuthor, mangadex.ObjectTypeArtist} {
		for _, person := range mangadex.AllAttributesOf[mangadex.AuthorAttributes](source.Relationships, t) {
			if !slices.Contains(authors, person.Name) {
				authors = append(authors, person.Name)
			}
		}
	}
	collection := model.NewCollection(source.Attributes.Title.Get("en"), "title/"+source.ID, nil)
	collection.Authors = authors
	if cover, ok := mangadex.AttributesOf[mangadex.CoverAttributes](source.Relationships, mangadex.ObjectTypeCoverArt); ok {
		collection.Cover = model.Image{Width: 256, Url: coverUrl(source.ID, cover.FileName)}
	}
	return collection
}

func (b *mangadexBuilder) fetchChapters(ctx context.Context, id string) ([]mangadex.Chapter, error) {
	var chapters []mangadex.Chapter
	query := mangadex.ListQuery{
		Limit:     b.limit,
		Languages: b.languages,
		Includes:  []mangadex.ObjectType{mangadex.ObjectTypeScanlationGroup},
	}
	for range maxFeedPages {
		page, err := b.client.GetMangaFeed(ctx, id, query)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, page.Data...)
		query.Offset += len(page.Data)
		if len(page.Data) == 0 || query.Offset >= page.Total {
			break
		}
	}
	return chapters, nil
}

func (b *mangadexBuilder) GetMangaCollection(ctx context.Context, id string) (model.Collection, error) {
	log := log.With().Str("manga", id).Logger()
	loader := cache.CollectionLoaderFunc(func(ctx context.Context, key string) (collection model.Collection, err error) {
		now := time.Now()
		log.Info().Msg("Fetching manga")
		manga, err := b.client.GetManga(ctx, id, mangadex.ObjectTypeCoverArt, mangadex.ObjectTypeAuthor, mangadex.ObjectTypeArtist)
		if err != nil {
			return
		}
		collection = b.mapManga(manga)
		if stats, statsErr := b.client.GetMangaStatistics(ctx, id); statsErr != nil {
			log.Warn().Err(statsErr).Msg("Unable to fetch statistics")
		} else {
			collection.Follows = stats.Follows
			if stats.Rating != nil {
				collection.Rating = stats.Rating.Bayesian
			}
		}
		data, err := b.fetchChapters(ctx, id)
		log.Info().Dur("elapsed", time.Since(now)).Int("chapters", len(data)).Msg("Retrieved manga feed")
		if err != nil {
			return
		}
		for _, chapter := range data {
			collection.Chapters = append(collection.Chapters, b.mapChapter(chapter, collection.Name, id))
		}
		model.SortChapters(collection.Chapters)
		return collection, nil
	})
	return cache.CollectionCache.Get(ctx, cache.MangaKey(id, b.languages), loader)
}

func (b *mangadexBuilder) GetMangaReleases(ctx context.Context, id string) (feeds.Feed, error) {
	collection, err := b.GetMangaCollection(ctx, id)
	if err != nil {
		return feeds.Feed{}, err
	}
	var lines []string
	if len(collection.Authors) > 0 {
		lines = append(lines, "By "+strings.Join(collection.Authors, ", "))
	}
	if summary := collection.Summary(); summary != "" {
		lines = append(lines, summary)
	}
	description := strings.Join(lines, "\n")
	title := fmt.Sprintf("MangaDex: %s", collection.Name)
	return b.buildFeed(title, b.buildUrl(collection.Slug), description, collection.Created, collection.Cover, collection.Chapters)
}

func (b *mangadexBuilder) GetRecentReleases(ctx context.Context) (feeds.Feed, error) {
	loader := cache.CollectionLoaderFunc(func(ctx context.Context, key string) (collection model.Collection, err error) {
		now := time.Now()
		log.Info().Strs("languages", b.languages).Msg("Fetching recent releases")
		data, err := b.client.GetChapters(ctx, mangadex.ListQuery{
			Limit:     b.limit,
			Languages: b.languages,
			Includes:  []mangadex.ObjectType{mangadex.ObjectTypeManga, mangadex.ObjectTypeScanlationGroup},
		})
		log.Info().Dur("elapsed", time.Since(now)).Msg("Retrieved recent releases data")
		if err != nil {
			return
		}
		var chapters []model.Chapter
		for _, chapter := range data.Data {
			chapters = append(chapters, b.mapChapter(chapter, "", ""))
		}
		return model.NewCollection("Recent", "titles/recent", chapters), nil
	})
	collection, err := cache.CollectionCache.Get(ctx, cache.RecentKey(b.languages), loader)
	if err != nil {
		return feeds.Feed{}, err
	}
	return b.buildFeed("MangaDex: Recent Releases", b.buildUrl(collection.Slug), "", collection.Created, model.Image{}, collection.Chapters)
}
