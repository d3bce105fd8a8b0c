package config

import "time"

const (
	envConfigPath    = "NBA_SCRAPER_CONFIG"
	envProvider      = "PROVIDER"
	envNBABaseURL    = "NBA_BASE_URL"
	envWNBABaseURL   = "WNBA_BASE_URL"
	envHTTPTimeout   = "HTTP_TIMEOUT"
	envUserAgent     = "HTTP_USER_AGENT"
	envPace          = "SCRAPE_PACE"
	envWorkers       = "SCRAPE_WORKERS"
	envRetries       = "SCRAPE_RETRIES"
	envBackoff       = "SCRAPE_BACKOFF"
	envOutputMode    = "OUTPUT_MODE"
	envDataDir       = "DATA_DIR"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envTraceOn       = "TRACING_ENABLED"
	envTraceEndpoint = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	envRunLogPath    = "RUN_LOG_PATH"

	defaultProvider    = "nbastats"
	defaultNBABaseURL  = "https://cdn.nba.com"
	defaultWNBABaseURL = "https://cdn.wnba.com"
	defaultHTTPTimeout = 20 * Duration(time.Second)
	defaultUserAgent   = "nba-scraper/1.0"
	// Courtesy spacing between upstream requests; applies to every scrape mode.
	defaultPace          = 1500 * Duration(time.Millisecond)
	defaultWorkers       = 1
	defaultRetries       = 3
	defaultBackoff       = 500 * Duration(time.Millisecond)
	defaultOutputMode    = "table"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultServiceName   = "nba-scraper"
	defaultTraceEndpoint = "localhost:4317"
)
