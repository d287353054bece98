package main

import (
	"encoding/json"
	"fmt"
	"io"

	"newatalk/internal/domain/entity"
	newsUC "newatalk/internal/usecase/news"

	"github.com/spf13/cobra"
)

var (
	newsCity   string
	newsLimit  int
	newsJSON   bool
	newsWorker int
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Aggregate the feeds for a city and print the ranked articles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		svc := newService(reg, newsWorker)
		articles, err := svc.Aggregate(cmd.Context(), newsCity, newsLimit)
		if err != nil {
			return err
		}
		if newsJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"articles": articles})
		}
		printArticles(cmd.OutOrStdout(), articles)
		return nil
	},
}

func init() {
	newsCmd.Flags().StringVar(&newsCity, "city", "", "city name or alias; empty for national news only")
	newsCmd.Flags().IntVarP(&newsLimit, "limit", "n", newsUC.DefaultLimit, "articles to print (clamped to 10..200)")
	newsCmd.Flags().BoolVar(&newsJSON, "json", false, "print the API response body")
	newsCmd.Flags().IntVar(&newsWorker, "concurrency", 0, "maximum simultaneous fetches (0 = one per feed)")
	rootCmd.AddCommand(newsCmd)
}

func printArticles(w io.Writer, articles []entity.Article) {
	for i, a := range articles {
		meta := a.Source
		if t, ok := a.PublishedTime(); ok {
			meta += " · " + t.Local().Format("02 Jan 15:04")
		}
		fmt.Fprintf(w, "%3d. %s\n", i+1, titleStyle.Render(a.Title))
		fmt.Fprintf(w, "     %s\n", sourceStyle.Render(meta))
		fmt.Fprintf(w, "     %s\n", dimStyle.Render(a.Link))
	}
	fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf("%d articles", len(articles))))
}
