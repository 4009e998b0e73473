package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	slogzerolog "github.com/samber/slog-zerolog/v2"

	"github.com/HiRoS-neko/MangaDexLib/config"
)

// Setup installs the global zerolog logger and routes slog through it.
func Setup() *zerolog.Logger {
	return setup(os.Stderr, config.LogFormat() == "text" || config.IsLocal(), config.LogLevel())
}

func setup(out io.Writer, console bool, level zerolog.Level) *zerolog.Logger {
	writer := out
	if console {
		writer = zerolog.ConsoleWriter{Out: out}
	}
	context := zerolog.New(writer).With().Timestamp().Caller().Stack()
	if !console {
		context = context.Str("service.name", "mangafeed")
	}
	logger := context.Logger().Level(level)
	log.Logger = logger

	// go-retryablehttp and httplog log through slog
	slog.SetDefault(slog.New(slogzerolog.Option{Level: slogLevel(level), Logger: &logger}.NewZerologHandler()))
	return &logger
}

func slogLevel(level zerolog.Level) slog.Level {
	switch {
	case level <= zerolog.DebugLevel:
		return slog.LevelDebug
	case level == zerolog.InfoLevel:
		return slog.LevelInfo
	case level == zerolog.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
