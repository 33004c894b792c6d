package config

import "time"

const (
	envPort           = "PORT"
	envDataDir        = "DATA_DIR"
	envAllowedOrigins = "ALLOWED_ORIGINS"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultDataDir     = "data"
	defaultMetricsPort = "9090"

	envFeedPerPage     = "FEED_PER_PAGE"
	envFeedMaxPages    = "FEED_MAX_PAGES"
	envFeedMinInterval = "FEED_MIN_INTERVAL"
	envFeedBackoff     = "FEED_BACKOFF"

	defaultFeedPerPage  = 10
	defaultFeedMaxPages = 10
	// Conservative inter-request gap; the balldontlie free tier allows
	// roughly one request per second.
	defaultFeedMinInterval = 1100 * Duration(time.Millisecond)
	defaultFeedBackoff     = 1500 * Duration(time.Millisecond)
)
