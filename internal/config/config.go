package config

// Config holds runtime configuration for the server.
type Config struct {
	Port             string
	Provider         string
	CacheTTL         Duration
	WarmEnabled      bool
	WarmInterval     Duration
	MinFetchInterval Duration
	AdminToken       string
	LogLevel         string
	LogFormat        string
	Kaggle           KaggleConfig
	Metrics          MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:             envOrDefault(envPort, defaultPort),
		Provider:         envOrDefault(envProvider, defaultProvider),
		CacheTTL:         durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		WarmEnabled:      boolEnvOrDefault(envWarmEnabled, defaultWarmEnabled),
		WarmInterval:     durationEnvOrDefault(envWarmInterval, defaultWarmInterval),
		MinFetchInterval: durationEnvOrDefault(envMinFetchInterval, defaultMinFetchInterval),
		AdminToken:       envOrDefault(envAdminToken, ""),
		LogLevel:         envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:        envOrDefault(envLogFormat, defaultLogFormat),
		Kaggle:           loadKaggle(),
		Metrics:          loadMetrics(),
	}
}
