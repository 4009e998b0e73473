package mangadex

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

// MangaFilter narrows a manga search. Zero values are left out of the query.
type MangaFilter struct {
	Title                   string
	Authors                 []string `validate:"dive,uuid"`
	Artists                 []string `validate:"dive,uuid"`
	Year                    int      `validate:"omitempty,min=1900,max=2100"`
	IncludedTags            []string `validate:"dive,uuid"`
	IncludedTagsMode        string   `validate:"omitempty,oneof=AND OR"`
	ExcludedTags            []string `validate:"dive,uuid"`
	ExcludedTagsMode        string   `validate:"omitempty,oneof=AND OR"`
	Statuses                []string `validate:"dive,oneof=ongoing completed hiatus cancelled"`
	OriginalLanguages       []string
	PublicationDemographics []string `validate:"dive,oneof=shounen shoujo josei seinen none"`
	ContentRatings          []string `validate:"dive,oneof=safe suggestive erotica pornographic"`
	CreatedAtSince          time.Time
	UpdatedAtSince          time.Time
	// Order maps a sort field ("relevance", "followedCount", "latestUploadedChapter") to asc or desc.
	Order                map[string]string `validate:"dive,oneof=asc desc"`
	IDs                  []string          `validate:"dive,uuid"`
	HasAvailableChapters *bool
	Includes             []ObjectType
	Limit                int `validate:"min=0,max=100"`
	Offset               int `validate:"min=0"`
}

// The API rejects timestamps with a zone suffix.
const filterTimeLayout = "2006-01-02T15:04:05"

func (f MangaFilter) values() url.Values {
	values := url.Values{}
	if f.Title != "" {
		values.Set("title", f.Title)
	}
	if f.Year > 0 {
		values.Set("year", strconv.Itoa(f.Year))
	}
	addAll := func(key string, items []string) {
		for _, item := range items {
			values.Add(key+"[]", item)
		}
	}
	addAll("authors", f.Authors)
	addAll("artists", f.Artists)
	addAll("includedTags", f.IncludedTags)
	addAll("excludedTags", f.ExcludedTags)
	addAll("status", f.Statuses)
	addAll("originalLanguage", f.OriginalLanguages)
	addAll("publicationDemographic", f.PublicationDemographics)
	addAll("contentRating", f.ContentRatings)
	addAll("ids", f.IDs)
	if f.IncludedTagsMode != "" {
		values.Set("includedTagsMode", f.IncludedTagsMode)
	}
	if f.ExcludedTagsMode != "" {
		values.Set("excludedTagsMode", f.ExcludedTagsMode)
	}
	if !f.CreatedAtSince.IsZero() {
		values.Set("createdAtSince", f.CreatedAtSince.UTC().Format(filterTimeLayout))
	}
	if !f.UpdatedAtSince.IsZero() {
		values.Set("updatedAtSince", f.UpdatedAtSince.UTC().Format(filterTimeLayout))
	}
	for field, direction := range f.Order {
		values.Set("order["+field+"]", direction)
	}
	if f.HasAvailableChapters != nil {
		values.Set("hasAvailableChapters", strconv.FormatBool(*f.HasAvailableChapters))
	}
	if f.Limit > 0 {
		values.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		values.Set("offset", strconv.Itoa(f.Offset))
	}
	addIncludes(values, f.Includes)
	return values
}

func (c *Client) SearchManga(ctx context.Context, filter MangaFilter) (EntityList[MangaAttributes], error) {
	var result EntityList[MangaAttributes]
	if err := validate.Struct(filter); err != nil {
		return result, fmt.Errorf("mangadex: invalid filter: %w", err)
	}
	err := c.get(ctx, "/manga", filter.values(), &result)
	return result, err
}

func (c *Client) GetTagList(ctx context.Context) (EntityList[TagAttributes], error) {
	var result EntityList[TagAttributes]
	err := c.get(ctx, "/manga/tag", nil, &result)
	return result, err
}

// TagIDs maps tag names to ids, matching the English name without regard to
// case. Names with no tag are returned as the error.
func TagIDs(tags []Object[TagAttributes], names []string) ([]string, error) {
	var ids, missing []string
	for _, name := range names {
		idx := slices.IndexFunc(tags, func(tag Object[TagAttributes]) bool {
			return strings.EqualFold(tag.Attributes.Name.Get("en"), strings.TrimSpace(name))
		})
		if idx < 0 {
			missing = append(missing, name)
			continue
		}
		ids = append(ids, tags[idx].ID)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("mangadex: unknown tags: %s", strings.Join(missing, ", "))
	}
	return ids, nil
}
