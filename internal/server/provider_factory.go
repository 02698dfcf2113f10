package server

import (
	"log/slog"

	"nba-player-stats-service/internal/config"
	"nba-player-stats-service/internal/metrics"
	"nba-player-stats-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit,
// breaker, fetch logging).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DatasetProvider {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider, base)
	logged := providers.NewLoggingProvider(base, name, f.logger)
	broken := providers.NewBreakerProvider(logged, name, f.logger, f.metrics)
	// Limiter goes outermost so suppressed fetches never count against the breaker.
	return providers.NewRateLimitedProvider(broken, cfg.MinFetchInterval, f.logger, f.metrics)
}
