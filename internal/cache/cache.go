package cache

import (
	"errors"
	"os"
	"path"
	"time"

	"github.com/maypok86/otter/v2"
	"github.com/rs/zerolog/log"

	"github.com/HiRoS-neko/MangaDexLib/config"
	"github.com/HiRoS-neko/MangaDexLib/internal/model"
)

var CollectionCache *otter.Cache[string, model.Collection]

type CollectionLoaderFunc = otter.LoaderFunc[string, model.Collection]

const collectionFile = "collection.gob"

func init() {
	CollectionCache = newCollectionCache()
}

// Chapter feeds move faster than book lists, so entries expire after an hour.
func newCollectionCache() *otter.Cache[string, model.Collection] {
	return otter.Must(&otter.Options[string, model.Collection]{
		MaximumSize:      10_000,
		ExpiryCalculator: otter.ExpiryCreating[string, model.Collection](time.Hour),
	})
}

func MangaKey(id string, languages []string) string {
	key := "mangadex/manga/" + id
	for _, lang := range languages {
		key += "/" + lang
	}
	return key
}

func RecentKey(languages []string) string {
	key := "mangadex/recent"
	for _, lang := range languages {
		key += "/" + lang
	}
	return key
}

func LoadCache() {
	collectionPath := path.Join(config.CacheStorage(), collectionFile)
	log.Info().Str("path", collectionPath).Msg("Loading collection cache")
	if err := otter.LoadCacheFromFile(CollectionCache, collectionPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error().Err(err).Msg("Load cache failed")
		}
	}
}

func SaveCache() {
	collectionPath := path.Join(config.CacheStorage(), collectionFile)
	log.Info().Str("path", collectionPath).Msg("Saving collection cache")
	if err := otter.SaveCacheToFile(CollectionCache, collectionPath); err != nil {
		log.Error().Err(err).Msg("Save cache failed")
	}
}
