package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"newatalk/internal/infra/scraper"
	newsUC "newatalk/internal/usecase/news"

	"github.com/spf13/cobra"
)

// FeedDiagnostic is the health of a single feed.
type FeedDiagnostic struct {
	URL        string `json:"url"`
	Status     string `json:"status"` // "OK", "EMPTY", or the upper-cased failure kind
	HTTPCode   int    `json:"http_code,omitempty"`
	ItemCount  int    `json:"item_count"`
	LatestDate string `json:"latest_date,omitempty"`
	Error      string `json:"error_message,omitempty"`
	DurationMS int64  `json:"response_time_ms"`
}

// Healthy reports whether the feed contributed articles.
func (d FeedDiagnostic) Healthy() bool { return d.Status == "OK" }

var (
	diagnoseJSON   bool
	diagnoseStrict bool
	diagnoseCity   string
)

var errUnhealthyFeeds = errors.New("one or more feeds failed")

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Fetch every configured feed and report which ones contribute articles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		feeds := reg.Resolve(diagnoseCity)
		if diagnoseCity == "" {
			feeds = allFeeds(reg.General(), reg.Cities(), reg.Resolve)
		}

		start := time.Now()
		results := newService(reg, 8).Collect(cmd.Context(), feeds)
		diags := diagnose(results)

		if diagnoseJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(diags); err != nil {
				return err
			}
		} else {
			printReport(cmd.OutOrStdout(), diags, time.Since(start))
		}

		if diagnoseStrict {
			for _, d := range diags {
				if !d.Healthy() {
					return errUnhealthyFeeds
				}
			}
		}
		return nil
	},
}

func init() {
	diagnoseCmd.Flags().BoolVar(&diagnoseJSON, "json", false, "print the report as JSON")
	diagnoseCmd.Flags().BoolVar(&diagnoseStrict, "strict", false, "exit non-zero when any feed is unhealthy")
	diagnoseCmd.Flags().StringVar(&diagnoseCity, "city", "", "only the feeds resolved for this city")
	rootCmd.AddCommand(diagnoseCmd)
}

// allFeeds lists every distinct feed URL, national first then per city.
func allFeeds(general, cities []string, resolve func(string) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(urls []string) {
		for _, u := range urls {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			out = append(out, u)
		}
	}
	add(general)
	for _, c := range cities {
		add(resolve(c))
	}
	return out
}

func diagnose(results []newsUC.FeedResult) []FeedDiagnostic {
	diags := make([]FeedDiagnostic, 0, len(results))
	for _, r := range results {
		d := FeedDiagnostic{URL: r.URL, ItemCount: len(r.Articles), DurationMS: r.Duration.Milliseconds()}
		switch {
		case !r.OK():
			d.Status = strings.ToUpper(r.FailureKind())
			d.Error = r.Err.Error()
			var fe *scraper.FetchError
			if errors.As(r.Err, &fe) {
				d.HTTPCode = fe.StatusCode
			}
		case len(r.Articles) == 0:
			d.Status = "EMPTY"
		default:
			d.Status = "OK"
		}

		var latest time.Time
		for _, a := range r.Articles {
			if t, ok := a.PublishedTime(); ok && t.After(latest) {
				latest = t
			}
		}
		if !latest.IsZero() {
			d.LatestDate = latest.UTC().Format(time.RFC3339)
		}
		diags = append(diags, d)
	}
	return diags
}

func printReport(w io.Writer, diags []FeedDiagnostic, elapsed time.Duration) {
	fmt.Fprintln(w, headerStyle.Render("Feed diagnostics"))
	healthy := 0
	for _, d := range diags {
		status := failStyle.Render(fmt.Sprintf("%-12s", d.Status))
		if d.Healthy() {
			healthy++
			status = okStyle.Render(fmt.Sprintf("%-12s", d.Status))
		}
		fmt.Fprintf(w, "%s %s\n", status, linkStyle.Render(d.URL))

		detail := fmt.Sprintf("items: %d  %dms", d.ItemCount, d.DurationMS)
		if d.LatestDate != "" {
			detail += "  latest: " + d.LatestDate
		}
		if d.Error != "" {
			detail += "  " + d.Error
		}
		fmt.Fprintln(w, "             "+dimStyle.Render(detail))
	}
	fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf("%d/%d feeds healthy in %v", healthy, len(diags), elapsed.Round(time.Millisecond))))
}
