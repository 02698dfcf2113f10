package config

import "time"

const (
	envPort             = "PORT"
	envProvider         = "PROVIDER"
	envCacheTTL         = "CACHE_TTL"
	envWarmEnabled      = "CACHE_WARM_ENABLED"
	envWarmInterval     = "CACHE_WARM_INTERVAL"
	envMinFetchInterval = "MIN_FETCH_INTERVAL"
	envAdminToken       = "ADMIN_TOKEN"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	// Hourly refresh keeps the dataset reasonably fresh without hammering Kaggle.
	defaultCacheTTL     = Duration(time.Hour)
	defaultWarmEnabled  = true
	defaultWarmInterval = 10 * Duration(time.Minute)
	// Minimum spacing between dataset downloads regardless of request pressure.
	defaultMinFetchInterval = Duration(time.Minute)
	defaultLogLevel         = "info"
	defaultLogFormat        = "text"
	defaultMetricsPort      = "9090"
)
