package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"newatalk/internal/config"
	"newatalk/internal/infra/scraper"
	"newatalk/internal/observability/logging"
	"newatalk/internal/registry"
	newsUC "newatalk/internal/usecase/news"

	"github.com/spf13/cobra"
)

var (
	registryFile string
	fetchTimeout time.Duration
	userAgent    string
	verbose      bool
)

// rootCmd is the base command called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "feedctl",
	Short:         "Inspect and exercise the NewaTalk feed registry",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		slog.SetDefault(logging.New(os.Stderr, logging.Options{Level: level, Format: "text"}))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&registryFile, "registry", os.Getenv("FEED_REGISTRY_FILE"), "YAML feed registry (default: built-in)")
	rootCmd.PersistentFlags().DurationVar(&fetchTimeout, "timeout", 10*time.Second, "per-feed fetch timeout")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", config.DefaultUserAgent, "User-Agent sent to publishers")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
}

func loadRegistry() (*registry.Registry, error) {
	if registryFile == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(registryFile)
}

func newService(reg *registry.Registry, concurrency int) *newsUC.Service {
	f := scraper.NewRSSFetcher(&http.Client{}, scraper.Config{
		Timeout:   fetchTimeout,
		UserAgent: userAgent,
	})
	svc := newsUC.NewService(reg, f)
	svc.MaxConcurrency = concurrency
	return svc
}
