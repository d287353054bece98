package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"newatalk/internal/config"
	"newatalk/internal/infra/fetcher"
	"newatalk/internal/infra/geocoder"
	"newatalk/internal/infra/scraper"
	"newatalk/internal/infra/translator"
	"newatalk/internal/observability/logging"
	"newatalk/internal/observability/tracing"
	"newatalk/internal/registry"

	fetchUC "newatalk/internal/usecase/fetch"
	newsUC "newatalk/internal/usecase/news"

	hhttp "newatalk/internal/handler/http"
	hgeocode "newatalk/internal/handler/http/geocode"
	"newatalk/internal/handler/http/middleware"
	hnews "newatalk/internal/handler/http/news"
	hreader "newatalk/internal/handler/http/reader"
	"newatalk/internal/handler/http/requestid"
	htranslate "newatalk/internal/handler/http/translate"

	_ "newatalk/docs" // swagger docs
)

// @title           NewaTalk API
// @version         1.0
// @description     Aggregated Indian news from RSS/Atom feeds, with translation, reverse geocoding and article text for read-aloud.

// @contact.name   API Support
// @contact.url    https://example.com
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

const (
	rateLimitCleanupInterval = time.Minute
	maxRequestBodyBytes      = 1 << 20
)

func main() {
	logger := initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing := tracing.Setup("newatalk-api", cfg.Version, cfg.TracingSampleRatio)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("failed to shut down tracing", slog.Any("error", err))
		}
	}()

	components := setupServer(logger, cfg)
	runServer(logger, cfg, components)
}

// initLogger initializes the structured logger from LOG_LEVEL and LOG_FORMAT.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// loadRegistry returns the built-in feed registry, or the one in
// FEED_REGISTRY_FILE when set.
func loadRegistry(logger *slog.Logger, path string) *registry.Registry {
	if path == "" {
		return registry.Default()
	}
	reg, err := registry.LoadFile(path)
	if err != nil {
		logger.Error("failed to load feed registry", slog.String("path", path), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("feed registry loaded",
		slog.String("path", path),
		slog.Int("feeds", reg.FeedCount()),
		slog.Int("cities", len(reg.Cities())))
	return reg
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler     http.Handler
	RateLimiter *middleware.RateLimiter
}

// setupServer wires the use cases, collaborators and middleware.
func setupServer(logger *slog.Logger, cfg *config.Config) *ServerComponents {
	reg := loadRegistry(logger, cfg.Feed.RegistryFile)

	feedFetcher := scraper.NewRSSFetcher(&http.Client{}, scraper.Config{
		Timeout:      cfg.Feed.Timeout,
		MaxBodyBytes: cfg.Feed.MaxBodyBytes,
		UserAgent:    cfg.Feed.UserAgent,
	})
	newsSvc := newsUC.NewService(reg, feedFetcher)
	newsSvc.MaxConcurrency = cfg.Feed.MaxConcurrency
	newsSvc.Deadline = cfg.FeedCollectDeadline()

	tr, err := translator.New(cfg.Translator, &http.Client{Timeout: 15 * time.Second}, cfg.Feed.UserAgent)
	if err != nil {
		logger.Error("failed to create translator", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("translator initialized", slog.String("provider", tr.Name()))

	geo := geocoder.NewNominatim(&http.Client{Timeout: cfg.Geocoder.Timeout}, cfg.Geocoder.URL, cfg.Feed.UserAgent)

	fetchCfg := fetcher.DefaultConfig()
	fetchCfg.Timeout = cfg.ArticleText.Timeout
	fetchCfg.MaxBodySize = cfg.ArticleText.MaxBodyBytes
	fetchCfg.UserAgent = cfg.Feed.UserAgent
	if err := fetchCfg.Validate(); err != nil {
		logger.Error("invalid article text configuration", slog.Any("error", err))
		os.Exit(1)
	}
	contentFetcher := fetcher.NewReadabilityFetcher(fetchCfg)
	articleSvc := fetchUC.NewService(contentFetcher)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		var ipExtractor middleware.IPExtractor = &middleware.RemoteAddrExtractor{}
		if len(cfg.RateLimit.TrustedProxies) > 0 {
			trusted, err := middleware.NewTrustedProxyExtractor(cfg.RateLimit.TrustedProxies)
			if err != nil {
				logger.Error("failed to load trusted proxies", slog.Any("error", err))
				os.Exit(1)
			}
			ipExtractor = trusted
			logger.Info("rate limiting: trusted proxy mode enabled",
				slog.Int("trusted_proxies_count", len(cfg.RateLimit.TrustedProxies)))
		}
		rateLimiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		}, ipExtractor)
		logger.Info("rate limiting initialized",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	mux := http.NewServeMux()
	hnews.Register(mux, newsSvc, reg, logger)
	htranslate.Register(mux, tr, logger)
	hgeocode.Register(mux, geo, logger)
	hreader.Register(mux, articleSvc)

	health := &hhttp.HealthHandler{
		Registry: reg,
		Breakers: []hhttp.Breaker{tr.Breaker(), geo.Breaker(), contentFetcher.Breaker()},
		Version:  cfg.Version,
	}
	if rateLimiter != nil {
		health.Limiter = rateLimiter
	}
	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Registry: reg})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return &ServerComponents{
		Handler:     applyMiddleware(logger, cfg, mux, rateLimiter),
		RateLimiter: rateLimiter,
	}
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Recovery → Logging → Body Limit → CORS → Rate Limit → Timeout → Tracing → Metrics
// Tracing and Metrics read r.Pattern, so nothing between them and the mux may
// replace the request.
func applyMiddleware(logger *slog.Logger, cfg *config.Config, handler http.Handler, rateLimiter *middleware.RateLimiter) http.Handler {
	var cors, limit hhttp.Middleware
	if len(cfg.CORS.AllowedOrigins) > 0 {
		cors = middleware.CORS(middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins))
		logger.Info("CORS enabled", slog.Any("allowed_origins", cfg.CORS.AllowedOrigins))
	}
	if rateLimiter != nil {
		limit = rateLimiter.Middleware
	}

	return hhttp.Chain(handler,
		requestid.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.LimitRequestBody(maxRequestBodyBytes),
		cors,
		limit,
		hhttp.Timeout(cfg.RequestTimeout),
		tracing.Middleware,
		hhttp.MetricsMiddleware,
	)
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.Config, components *ServerComponents) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if components.RateLimiter != nil {
		go components.RateLimiter.StartCleanup(ctx, rateLimitCleanupInterval)
		logger.Info("rate limit cleanup started", slog.Duration("interval", rateLimitCleanupInterval))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		logger.Info("shutting down server...")
	case err := <-errCh:
		logger.Error("server failed", slog.Any("error", err))
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
