package mangadex

import (
	"context"
	"net/url"
	"strings"
)

// AtHomeServer is the MangaDex@Home node assigned to serve one chapter's pages.
type AtHomeServer struct {
	Result  string        `json:"result"`
	BaseURL string        `json:"baseUrl"`
	Chapter AtHomeChapter `json:"chapter"`
}

type AtHomeChapter struct {
	Hash      string   `json:"hash"`
	Data      []string `json:"data"`
	DataSaver []string `json:"dataSaver"`
}

// PageURLs lists the chapter's page images in order. dataSaver selects the
// compressed copies.
func (s AtHomeServer) PageURLs(dataSaver bool) []string {
	quality, files := "data", s.Chapter.Data
	if dataSaver {
		quality, files = "data-saver", s.Chapter.DataSaver
	}
	base := strings.TrimRight(s.BaseURL, "/")
	urls := make([]string, 0, len(files))
	for _, file := range files {
		urls = append(urls, base+"/"+quality+"/"+url.PathEscape(s.Chapter.Hash)+"/"+url.PathEscape(file))
	}
	return urls
}

// GetAtHomeServer asks for a node serving the chapter. Node URLs expire after
// a few minutes, so results are not cached.
func (c *Client) GetAtHomeServer(ctx context.Context, chapterID string) (AtHomeServer, error) {
	var result AtHomeServer
	err := c.get(ctx, "/at-home/server/"+url.PathEscape(chapterID), nil, &result)
	return result, err
}
