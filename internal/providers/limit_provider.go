package providers

import (
	"context"
	"time"

	"log/slog"

	"golang.org/x/time/rate"

	"nba-player-stats-service/internal/domain/boxscore"
	"nba-player-stats-service/internal/metrics"
)

// rateLimitedProvider wraps a DatasetProvider and enforces a minimum interval
// between upstream fetches. Disallowed calls fail fast with a RateLimitError
// rather than blocking: a query waiting on a stale cache must not stall
// behind a quota window.
type rateLimitedProvider struct {
	next     DatasetProvider
	interval time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewRateLimitedProvider returns a DatasetProvider that allows at most one
// upstream fetch per interval.
func NewRateLimitedProvider(next DatasetProvider, interval time.Duration, logger *slog.Logger, recorder *metrics.Recorder) DatasetProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		logger:   logger,
		recorder: recorder,
	}
}

func (p *rateLimitedProvider) FetchDataset(ctx context.Context) (boxscore.Dataset, error) {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return boxscore.Dataset{}, ErrProviderUnavailable
	}
	if err := ctx.Err(); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "fetch canceled")
		return boxscore.Dataset{}, err
	}
	if !p.limiter.Allow() {
		if p.recorder != nil {
			p.recorder.RecordRateLimit("rate-limited", p.interval)
		}
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "fetch suppressed by rate limit",
			slog.Duration("interval", p.interval),
		)
		return boxscore.Dataset{}, &RateLimitError{
			Provider:   "rate-limited",
			RetryAfter: p.interval,
			Message:    "fetch rate limit exceeded",
		}
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited provider fetch")
	return p.next.FetchDataset(ctx)
}
