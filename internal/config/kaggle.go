package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const (
	envKaggleUsername = "KAGGLE_USERNAME"
	envKaggleKey      = "KAGGLE_KEY"
	envKaggleBaseURL  = "KAGGLE_BASE_URL"
	envKaggleDataset  = "KAGGLE_DATASET"
	envKaggleGames    = "KAGGLE_GAMES_FILE"
	envKagglePlayers  = "KAGGLE_PLAYERS_FILE"
	envKaggleTimeout  = "KAGGLE_HTTP_TIMEOUT"

	// Dataset downloads are tens of megabytes; allow slow links.
	defaultKaggleTimeout = 5 * time.Minute
)

// KaggleConfig controls how we talk to the Kaggle datasets API. Empty URL
// and file fields fall back to the client's defaults.
type KaggleConfig struct {
	BaseURL     string
	Dataset     string
	GamesFile   string
	PlayersFile string
	Username    string
	Key         string
	HTTPTimeout time.Duration
}

func loadKaggle() KaggleConfig {
	cfg := KaggleConfig{
		BaseURL:     envOrDefault(envKaggleBaseURL, ""),
		Dataset:     envOrDefault(envKaggleDataset, ""),
		GamesFile:   envOrDefault(envKaggleGames, ""),
		PlayersFile: envOrDefault(envKagglePlayers, ""),
		Username:    envOrDefault(envKaggleUsername, ""),
		Key:         envOrDefault(envKaggleKey, ""),
		HTTPTimeout: durationEnvOrDefault(envKaggleTimeout, defaultKaggleTimeout),
	}
	if cfg.Username == "" || cfg.Key == "" {
		if creds, ok := readKaggleCredentials(); ok {
			if cfg.Username == "" {
				cfg.Username = creds.Username
			}
			if cfg.Key == "" {
				cfg.Key = creds.Key
			}
		}
	}
	return cfg
}

type kaggleCredentials struct {
	Username string `json:"username"`
	Key      string `json:"key"`
}

// readKaggleCredentials loads ~/.kaggle/kaggle.json, the file the official
// Kaggle CLI writes.
func readKaggleCredentials() (kaggleCredentials, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return kaggleCredentials{}, false
	}
	data, err := os.ReadFile(filepath.Join(home, ".kaggle", "kaggle.json"))
	if err != nil {
		return kaggleCredentials{}, false
	}
	var creds kaggleCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return kaggleCredentials{}, false
	}
	return creds, true
}
