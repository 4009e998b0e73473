package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"

	"github.com/HiRoS-neko/MangaDexLib/assets"
	"github.com/HiRoS-neko/MangaDexLib/config"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))
	if config.LogRequests() {
		r.Use(httplog.RequestLogger(slog.Default(), &httplog.Options{
			Level:         slog.LevelInfo,
			Schema:        httplog.SchemaOTEL.Concise(config.IsLocal()),
			RecoverPanics: true,
		}))
	} else {
		r.Use(middleware.Recoverer)
	}
	r.Use(middleware.Heartbeat("/up"))

	r.Get("/", templ.Handler(indexPage(s.languages)).ServeHTTP)
	r.Get("/robots.txt", robotsHandler)

	r.Mount("/", s.feedRoutes())

	return r
}

// feedRoutes runs URLFormat on its own router so the extension is only stripped
// from feed paths and /robots.txt keeps its suffix.
func (s *Server) feedRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(httprate.LimitByIP(10, 10*time.Second))
	r.Use(middleware.URLFormat)

	r.Get("/recent", s.RecentHandler)
	r.Get("/manga/{id}", s.MangaHandler)
	return r
}

func robotsHandler(w http.ResponseWriter, r *http.Request) {
	writeContentType("text/plain", w)
	w.Write([]byte(assets.RobotsTxt))
}
