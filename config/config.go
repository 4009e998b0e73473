package config

import (
	"slices"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

type config struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"APP_ENV" default:"production"`
	Log         struct {
		Level    string `envconfig:"LOG_LEVEL" default:"debug"`
		Format   string `envconfig:"LOG_FORMAT" default:"text"`
		Requests bool   `envconfig:"LOG_REQUESTS" default:"false"`
	}
	MangaDex struct {
		Token     string   `envconfig:"MANGADEX_TOKEN"`
		BaseURL   string   `envconfig:"MANGADEX_BASE_URL" default:"https://api.mangadex.org"`
		Languages []string `envconfig:"MANGADEX_LANGUAGES" default:"en"`
		FeedLimit int      `envconfig:"MANGADEX_FEED_LIMIT" default:"100"`
	}
	Cache struct {
		StoragePath string `envconfig:"CACHE_STORAGE_PATH" default:"."`
	}
}

var cfg config

func LoadConfig() error {
	err := envconfig.Process("", &cfg)
	if err != nil {
		return err
	}
	return nil
}

func Config() config {
	return cfg
}

func Port() int {
	return cfg.Port
}

func IsLocal() bool {
	return cfg.Environment == "local"
}

func LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil || level == zerolog.NoLevel || level == zerolog.Disabled {
		return zerolog.DebugLevel
	}
	return level
}

func LogFormat() string {
	allowed := []string{"text", "json"}
	format := strings.ToLower(cfg.Log.Format)
	if slices.Contains(allowed, format) {
		return format
	}
	return "json"
}

func LogRequests() bool {
	return cfg.Log.Requests
}

func MangaDexToken() string {
	return cfg.MangaDex.Token
}

func MangaDexBaseURL() string {
	return cfg.MangaDex.BaseURL
}

// Languages lists the translated languages requested from the API.
func Languages() []string {
	var languages []string
	for _, lang := range cfg.MangaDex.Languages {
		lang = strings.TrimSpace(lang)
		if lang != "" && !slices.Contains(languages, lang) {
			languages = append(languages, lang)
		}
	}
	return languages
}

// FeedLimit is clamped to the API's page size range of 1 to 100.
func FeedLimit() int {
	return min(max(cfg.MangaDex.FeedLimit, 1), 100)
}

func CacheStorage() string {
	return cfg.Cache.StoragePath
}
