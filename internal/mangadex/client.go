package mangadex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/HiRoS-neko/MangaDexLib/internal/version"
)

const DefaultBaseURL = "https://api.mangadex.org"

type authTransport struct {
	token   string
	wrapped http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("mangafeed/%s (https://github.com/HiRoS-neko/MangaDexLib)", version.Version))
	return t.wrapped.RoundTrip(req)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{
		Transport: &authTransport{
			token:   token,
			wrapped: http.DefaultTransport,
		},
	}
	retryClient.Logger = slog.Default()
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    retryClient.StandardClient(),
	}
}

// ListQuery selects one page of a list endpoint.
type ListQuery struct {
	Limit     int
	Offset    int
	Languages []string
	Includes  []ObjectType
}

func (q ListQuery) values() url.Values {
	values := url.Values{}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	for _, lang := range q.Languages {
		values.Add("translatedLanguage[]", lang)
	}
	addIncludes(values, q.Includes)
	return values
}

func addIncludes(values url.Values, includes []ObjectType) {
	for _, t := range includes {
		values.Add("includes[]", t.String())
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("mangadex: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("mangadex: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("mangadex: read %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newResponseError(path, resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("mangadex: decode %s: %w", path, err)
	}
	return nil
}

func newResponseError(path string, status int, body []byte) *ResponseError {
	respErr := &ResponseError{URL: path, StatusCode: status}
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil {
		respErr.Errors = payload.Errors
	}
	if status == http.StatusForbidden && strings.Contains(string(body), "captcha_required_exception") {
		respErr.captcha = true
	}
	return respErr
}

func (c *Client) GetManga(ctx context.Context, id string, includes ...ObjectType) (Manga, error) {
	query := url.Values{}
	addIncludes(query, includes)
	var result Entity[MangaAttributes]
	if err := c.get(ctx, "/manga/"+url.PathEscape(id), query, &result); err != nil {
		return Manga{}, err
	}
	return result.Data, nil
}

// GetMangaFeed returns one page of a manga's chapters as sorted by the API.
// The API order is not reading order for malformed chapter numbers; callers
// sort with ordering.Sort.
func (c *Client) GetMangaFeed(ctx context.Context, id string, q ListQuery) (EntityList[ChapterAttributes], error) {
	query := q.values()
	query.Set("order[volume]", "asc")
	query.Set("order[chapter]", "asc")
	var result EntityList[ChapterAttributes]
	err := c.get(ctx, "/manga/"+url.PathEscape(id)+"/feed", query, &result)
	return result, err
}

// GetChapters returns the most recently readable chapters.
func (c *Client) GetChapters(ctx context.Context, q ListQuery) (EntityList[ChapterAttributes], error) {
	query := q.values()
	query.Set("order[readableAt]", "desc")
	var result EntityList[ChapterAttributes]
	err := c.get(ctx, "/chapter", query, &result)
	return result, err
}

func (c *Client) GetMangaStatistics(ctx context.Context, id string) (Statistics, error) {
	var result statisticsResponse
	if err := c.get(ctx, "/statistics/manga/"+url.PathEscape(id), nil, &result); err != nil {
		return Statistics{}, err
	}
	stats, ok := result.Statistics[id]
	if !ok {
		return Statistics{}, fmt.Errorf("mangadex: statistics for %s: %w", id, ErrNotFound)
	}
	return stats, nil
}
