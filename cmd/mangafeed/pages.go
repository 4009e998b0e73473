package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newPagesCmd() *cobra.Command {
	var dataSaver bool
	cmd := &cobra.Command{
		Use:   "pages <chapter-id>",
		Short: "Print the page image URLs of a chapter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid chapter id %q: %w", args[0], err)
			}
			server, err := newClient().GetAtHomeServer(cmd.Context(), id.String())
			if err != nil {
				return fmt.Errorf("fetch pages: %w", err)
			}
			for _, page := range server.PageURLs(dataSaver) {
				fmt.Fprintln(cmd.OutOrStdout(), page)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dataSaver, "data-saver", false, "Use the compressed page images")
	return cmd
}
