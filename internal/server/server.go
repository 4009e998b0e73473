package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/HiRoS-neko/MangaDexLib/config"
	"github.com/HiRoS-neko/MangaDexLib/internal/cache"
	"github.com/HiRoS-neko/MangaDexLib/internal/feed"
)

type Server struct {
	port      int
	languages []string
	builder   feed.Builder
}

func NewServer(builder feed.Builder) *http.Server {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to create scheduler")
	}
	if _, err := scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(cache.SaveCache),
	); err != nil {
		log.Error().Err(err).Msg("Unable to schedule cache save")
	}
	scheduler.Start()

	NewServer := &Server{
		port:      config.Port(),
		languages: config.Languages(),
		builder:   builder,
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", NewServer.port),
		Handler:      NewServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	server.RegisterOnShutdown(func() {
		if err := scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Scheduler shutdown failed")
		}
		cache.SaveCache()
	})

	cache.LoadCache()

	return server
}
