package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/HiRoS-neko/MangaDexLib/internal/model"
)

type chapterOutput struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Volume    *string   `json:"volume"`
	Chapter   *string   `json:"chapter"`
	Title     string    `json:"title,omitempty"`
	Language  string    `json:"language"`
	Group     string    `json:"group,omitempty"`
	Pages     int       `json:"pages"`
	Published time.Time `json:"published"`
	Link      string    `json:"link"`
}

func newChaptersCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "chapters <manga-id>",
		Short: "List a manga's chapters in reading order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid manga id %q: %w", args[0], err)
			}
			collection, err := newBuilder().GetMangaCollection(cmd.Context(), id.String())
			if err != nil {
				return fmt.Errorf("fetch chapters: %w", err)
			}
			if asJSON {
				return writeChaptersJSON(cmd.OutOrStdout(), collection.Chapters)
			}
			return writeChaptersTable(cmd.OutOrStdout(), collection)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func writeChaptersJSON(w io.Writer, chapters []model.Chapter) error {
	output := make([]chapterOutput, 0, len(chapters))
	for _, c := range chapters {
		output = append(output, chapterOutput{
			ID:        c.Id,
			Key:       c.Key().String(),
			Volume:    c.Volume,
			Chapter:   c.Number,
			Title:     c.Title,
			Language:  c.Language,
			Group:     c.Group,
			Pages:     c.Pages,
			Published: c.PublishDate,
			Link:      c.Link,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func writeChaptersTable(w io.Writer, collection model.Collection) error {
	header := fmt.Sprintf("%d chapters", len(collection.Chapters))
	if summary := collection.Summary(); summary != "" {
		header += ", " + summary
	}
	fmt.Fprintf(w, "%s (%s)\n", collection.Name, header)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHAPTER\tTITLE\tLANGUAGE\tGROUP\tPUBLISHED")
	for _, c := range collection.Chapters {
		published := "-"
		if !c.PublishDate.IsZero() {
			published = c.PublishDate.Format(time.DateOnly)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.Label(), c.Title, c.Language, c.Group, published)
	}
	return tw.Flush()
}
