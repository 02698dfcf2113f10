package server

import (
	"log/slog"

	"nba-player-stats-service/internal/config"
	"nba-player-stats-service/internal/providers"
	"nba-player-stats-service/internal/providers/fixture"
	"nba-player-stats-service/internal/providers/kaggle"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DatasetProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "kaggle":
		return kaggle.NewClient(kaggle.Config{
			BaseURL:     cfg.Kaggle.BaseURL,
			Dataset:     cfg.Kaggle.Dataset,
			GamesFile:   cfg.Kaggle.GamesFile,
			PlayersFile: cfg.Kaggle.PlayersFile,
			Username:    cfg.Kaggle.Username,
			Key:         cfg.Kaggle.Key,
			HTTPTimeout: cfg.Kaggle.HTTPTimeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
