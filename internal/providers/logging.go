package providers

import (
	"context"
	"log/slog"

	"nba-player-stats-service/internal/logging"
)

// logWithProvider emits a log entry when logger is non-nil, always tagged
// with the provider name so wrapped providers stay distinguishable.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
