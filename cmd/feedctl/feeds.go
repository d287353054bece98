package main

import (
	"fmt"
	"io"
	"sort"

	"newatalk/internal/registry"

	"github.com/spf13/cobra"
)

var feedsCity string

var feedsCmd = &cobra.Command{
	Use:   "feeds",
	Short: "List configured feeds, or the feeds resolved for a city",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		if feedsCity != "" {
			printResolved(cmd.OutOrStdout(), reg, feedsCity)
			return nil
		}
		printRegistry(cmd.OutOrStdout(), reg)
		return nil
	},
}

func init() {
	feedsCmd.Flags().StringVar(&feedsCity, "city", "", "show the feeds resolved for this city")
	rootCmd.AddCommand(feedsCmd)
}

func printResolved(w io.Writer, reg *registry.Registry, city string) {
	key := reg.Normalize(city)
	label := key.String()
	if key.IsZero() {
		label = "national only"
	}
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s → %s", city, label)))
	for _, u := range reg.Resolve(city) {
		fmt.Fprintln(w, "  "+linkStyle.Render(u))
	}
}

func printRegistry(w io.Writer, reg *registry.Registry) {
	fmt.Fprintln(w, headerStyle.Render("National"))
	for _, u := range reg.General() {
		fmt.Fprintln(w, "  "+linkStyle.Render(u))
	}

	aliases := reg.Aliases()
	byCity := make(map[string][]string)
	for alias, city := range aliases {
		if alias != city {
			byCity[city] = append(byCity[city], alias)
		}
	}
	for _, city := range reg.Cities() {
		fmt.Fprintln(w)
		title := city
		if al := byCity[city]; len(al) > 0 {
			sort.Strings(al)
			title += dimStyle.Render(fmt.Sprintf("  (also %v)", al))
		}
		fmt.Fprintln(w, headerStyle.Render(title))
		for _, u := range reg.Resolve(city) {
			fmt.Fprintln(w, "  "+linkStyle.Render(u))
		}
	}
	fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf("%d feeds, %d cities", reg.FeedCount(), len(reg.Cities()))))
}
