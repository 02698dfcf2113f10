package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"nba-player-stats-service/internal/domain/boxscore"
	"nba-player-stats-service/internal/metrics"
)

const (
	breakerMinRequests  = 3
	breakerFailureRatio = 0.6
	breakerOpenTimeout  = 60 * time.Second
)

// breakerProvider wraps a DatasetProvider with a circuit breaker so a
// flapping upstream gets room to recover instead of being hammered by every
// stale-cache query. Fetch errors are surfaced to the caller unchanged; the
// breaker only short-circuits while open.
type breakerProvider struct {
	inner    DatasetProvider
	name     string
	breaker  *gobreaker.CircuitBreaker
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewBreakerProvider wraps the given provider with a circuit breaker that
// trips once at least breakerMinRequests calls show a failure ratio of
// breakerFailureRatio or worse.
func NewBreakerProvider(inner DatasetProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) DatasetProvider {
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= breakerMinRequests && failureRatio >= breakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn("circuit breaker state change",
					slog.String("provider", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			}
		},
	}
	return &breakerProvider{
		inner:    inner,
		name:     name,
		breaker:  gobreaker.NewCircuitBreaker(settings),
		logger:   logger,
		recorder: recorder,
	}
}

func (b *breakerProvider) FetchDataset(ctx context.Context) (boxscore.Dataset, error) {
	if b == nil || b.inner == nil {
		return boxscore.Dataset{}, ErrProviderUnavailable
	}

	start := time.Now()
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.inner.FetchDataset(ctx)
	})
	if b.recorder != nil {
		b.recorder.RecordProviderAttempt(b.name, time.Since(start), err)
	}
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			logWithProvider(ctx, b.logger, slog.LevelWarn, b.name, "fetch rejected by open circuit breaker")
			return boxscore.Dataset{}, &FetchError{Provider: b.name, Cause: err}
		}
		return boxscore.Dataset{}, err
	}
	return result.(boxscore.Dataset), nil
}
