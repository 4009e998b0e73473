package server

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/feeds"
	"github.com/rs/zerolog/log"

	"github.com/HiRoS-neko/MangaDexLib/internal/feed"
)

// feedTTL matches the collection cache expiry.
const feedTTL = time.Hour

func writeContentType(mediaType string, w http.ResponseWriter) {
	params := map[string]string{
		"charset": "utf-8",
	}
	contentType := mime.FormatMediaType(mediaType, params)
	w.Header().Set("Content-Type", contentType)
}

func determineFormat(r *http.Request) feed.Format {
	ext, _ := r.Context().Value(middleware.URLFormatCtxKey).(string)
	return feed.ParseFormat(ext)
}

func (s *Server) writeError(err error, w http.ResponseWriter) {
	status := http.StatusBadGateway
	if errors.Is(err, feed.ErrNotFound) {
		status = http.StatusNotFound
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}
	writeContentType("text/plain", w)
	w.WriteHeader(status)
	w.Write([]byte(http.StatusText(status)))
}

func (s *Server) writeFeed(format feed.Format, out *feeds.Feed, w http.ResponseWriter) {
	w.Header().Set("Last-Modified", out.Created.UTC().Format(http.TimeFormat))
	remaining := max(time.Until(out.Created.Add(feedTTL)), 0)
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(remaining.Seconds())))

	var err error
	switch format {
	case feed.FORMAT_JSON:
		writeContentType("application/feed+json", w)
		err = out.WriteJSON(w)
	case feed.FORMAT_ATOM:
		writeContentType("application/atom+xml", w)
		err = out.WriteAtom(w)
	default:
		writeContentType("application/rss+xml", w)
		err = out.WriteRss(w)
	}
	if err != nil {
		log.Error().Err(err).Str("format", string(format)).Msg("Unable to write feed")
	}
}

func (s *Server) RecentHandler(w http.ResponseWriter, r *http.Request) {
	format := determineFormat(r)
	feed, err := s.builder.GetRecentReleases(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("error retrieving recent")
		s.writeError(err, w)
		return
	}
	log.Info().Int("entries", len(feed.Items)).Msg("Generated feed for recent releases")
	s.writeFeed(format, &feed, w)
}

func (s *Server) MangaHandler(w http.ResponseWriter, r *http.Request) {
	format := determineFormat(r)
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid manga id", http.StatusBadRequest)
		return
	}
	log := log.With().Str("manga", id.String()).Logger()
	feed, err := s.builder.GetMangaReleases(r.Context(), id.String())
	if err != nil {
		log.Error().Err(err).Msg("error retrieving manga")
		s.writeError(err, w)
		return
	}
	log.Info().Int("entries", len(feed.Items)).Msg("Generated feed for manga")
	s.writeFeed(format, &feed, w)
}
