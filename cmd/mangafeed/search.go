package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/HiRoS-neko/MangaDexLib/internal/mangadex"
)

type searchResult struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Status  string   `json:"status"`
	Year    *int     `json:"year"`
	Authors []string `json:"authors,omitempty"`
	Link    string   `json:"link"`
}

func newSearchCmd() *cobra.Command {
	var (
		tags     []string
		statuses []string
		limit    int
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Search MangaDex titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient()
			filter := mangadex.MangaFilter{
				Title:    strings.Join(args, " "),
				Statuses: statuses,
				Order:    map[string]string{"relevance": "desc"},
				Includes: []mangadex.ObjectType{mangadex.ObjectTypeAuthor},
				Limit:    limit,
			}
			if len(tags) > 0 {
				tagList, err := client.GetTagList(cmd.Context())
				if err != nil {
					return fmt.Errorf("fetch tags: %w", err)
				}
				if filter.IncludedTags, err = mangadex.TagIDs(tagList.Data, tags); err != nil {
					return err
				}
				filter.IncludedTagsMode = "AND"
			}

			result, err := client.SearchManga(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			results := make([]searchResult, 0, len(result.Data))
			for _, manga := range result.Data {
				var authors []string
				for _, author := range mangadex.AllAttributesOf[mangadex.AuthorAttributes](manga.Relationships, mangadex.ObjectTypeAuthor) {
					authors = append(authors, author.Name)
				}
				results = append(results, searchResult{
					ID:      manga.ID,
					Title:   manga.Attributes.Title.Get("en"),
					Status:  manga.Attributes.Status,
					Year:    manga.Attributes.Year,
					Authors: authors,
					Link:    "https://mangadex.org/title/" + manga.ID,
				})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tYEAR\tAUTHORS")
			for _, r := range results {
				year := "-"
				if r.Year != nil {
					year = strconv.Itoa(*r.Year)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Title, r.Status, year, strings.Join(r.Authors, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Only titles with every one of these tags (English names)")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Publication status: ongoing, completed, hiatus, cancelled")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
