package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Feed ingestion metrics
var (
	// FeedFetchTotal counts feed fetches by host and result (success, failure)
	FeedFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_fetch_total",
			Help:      "Total number of feed fetches",
		},
		[]string{"host", "result"},
	)

	// FeedFetchErrors counts failed feed fetches by failure kind
	FeedFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_fetch_errors_total",
			Help:      "Total number of failed feed fetches",
		},
		[]string{"host", "kind"},
	)

	// FeedFetchDuration measures time to fetch and parse one feed
	FeedFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_fetch_duration_seconds",
			Help:      "Time taken to fetch and parse a feed",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"host"},
	)

	// ArticlesParsedTotal counts articles produced by each feed host
	ArticlesParsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_parsed_total",
			Help:      "Total number of articles parsed from feeds",
		},
		[]string{"host"},
	)

	// AggregationDuration measures one full aggregation pass
	AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "news_aggregation_duration_seconds",
			Help:      "Time taken to aggregate all feeds for one request",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	// ArticlesDuplicatesTotal counts articles discarded by link deduplication
	ArticlesDuplicatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_duplicates_total",
			Help:      "Total number of duplicate articles discarded",
		},
	)

	// ArticlesServed measures the size of aggregated responses
	ArticlesServed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "articles_served",
			Help:      "Number of articles returned per aggregation",
			Buckets:   []float64{0, 10, 20, 40, 60, 100, 150, 200},
		},
	)
)

// Collaborator metrics
var (
	// TranslationsTotal counts translation calls by provider and result
	TranslationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "translations_total",
			Help:      "Total number of translation requests",
		},
		[]string{"provider", "result"},
	)

	// GeocodeTotal counts reverse geocoding calls by result
	GeocodeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reverse_geocode_total",
			Help:      "Total number of reverse geocoding requests",
		},
		[]string{"result"},
	)

	// ContentFetchAttemptsTotal counts article text extractions by result
	ContentFetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_fetch_attempts_total",
			Help:      "Total number of article text extraction attempts",
		},
		[]string{"result"},
	)

	// ContentFetchDuration measures time to fetch and extract article text
	ContentFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "content_fetch_duration_seconds",
			Help:      "Time taken to fetch article content",
			Buckets:   []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
	)
)

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

// RecordFeedFetch records one feed fetch. kind is ignored on success.
func RecordFeedFetch(host string, duration time.Duration, articles int, kind string, ok bool) {
	FeedFetchTotal.WithLabelValues(host, result(ok)).Inc()
	FeedFetchDuration.WithLabelValues(host).Observe(duration.Seconds())
	if !ok {
		FeedFetchErrors.WithLabelValues(host, kind).Inc()
		return
	}
	if articles > 0 {
		ArticlesParsedTotal.WithLabelValues(host).Add(float64(articles))
	}
}

// RecordAggregation records a completed aggregation pass.
func RecordAggregation(duration time.Duration, duplicates, served int) {
	AggregationDuration.Observe(duration.Seconds())
	if duplicates > 0 {
		ArticlesDuplicatesTotal.Add(float64(duplicates))
	}
	ArticlesServed.Observe(float64(served))
}

// RecordTranslation records a translation attempt.
func RecordTranslation(provider string, ok bool) {
	TranslationsTotal.WithLabelValues(provider, result(ok)).Inc()
}

// RecordGeocode records a reverse geocoding attempt.
func RecordGeocode(ok bool) {
	GeocodeTotal.WithLabelValues(result(ok)).Inc()
}

// RecordContentFetch records an article text extraction.
func RecordContentFetch(duration time.Duration, ok bool) {
	ContentFetchAttemptsTotal.WithLabelValues(result(ok)).Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}
