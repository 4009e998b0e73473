package main

import (
	"github.com/spf13/cobra"

	"github.com/HiRoS-neko/MangaDexLib/config"
	"github.com/HiRoS-neko/MangaDexLib/internal/feed"
	"github.com/HiRoS-neko/MangaDexLib/internal/logging"
	"github.com/HiRoS-neko/MangaDexLib/internal/mangadex"
	"github.com/HiRoS-neko/MangaDexLib/internal/version"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mangafeed",
		Short:         "Chapter feeds for MangaDex titles",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadConfig(); err != nil {
				return err
			}
			logging.Setup()
			return nil
		},
	}
	rootCmd.AddCommand(newServeCmd(), newChaptersCmd(), newSearchCmd(), newPagesCmd())
	return rootCmd
}

func newClient() *mangadex.Client {
	return mangadex.NewClient(config.MangaDexBaseURL(), config.MangaDexToken())
}

func newBuilder() feed.Builder {
	return feed.NewMangaDexBuilder(newClient(), config.Languages(), config.FeedLimit())
}
