package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-player-stats-service/internal/domain/boxscore"
	"nba-player-stats-service/internal/logging"
)

// loggingProvider wraps a DatasetProvider with debug/warn logging around each
// fetch. It sits innermost in the decorator chain so only fetches that
// actually reach the upstream are logged.
type loggingProvider struct {
	next   DatasetProvider
	name   string
	logger *slog.Logger
}

// NewLoggingProvider returns a DatasetProvider that logs fetch outcomes.
func NewLoggingProvider(next DatasetProvider, name string, logger *slog.Logger) DatasetProvider {
	return &loggingProvider{next: next, name: name, logger: logger}
}

func (p *loggingProvider) FetchDataset(ctx context.Context) (boxscore.Dataset, error) {
	if p == nil || p.next == nil {
		return boxscore.Dataset{}, ErrProviderUnavailable
	}

	start := time.Now()
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "dataset fetch starting")

	dataset, err := p.next.FetchDataset(ctx)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "dataset fetch failed",
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
			"error", err,
		)
		return boxscore.Dataset{}, err
	}

	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "dataset fetch complete",
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		slog.Int("games", len(dataset.Games)),
		slog.Int("players", len(dataset.Players)),
	)
	return dataset, nil
}
