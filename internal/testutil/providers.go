package testutil

import (
	"context"

	"nba-player-stats-service/internal/domain/boxscore"
	"nba-player-stats-service/internal/providers"
)

// GoodProvider returns the provided dataset with no error.
type GoodProvider struct {
	Dataset boxscore.Dataset
}

func (p GoodProvider) FetchDataset(ctx context.Context) (boxscore.Dataset, error) {
	_ = ctx
	return p.Dataset, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchDataset(ctx context.Context) (boxscore.Dataset, error) {
	return boxscore.Dataset{}, p.Err
}

// EmptyProvider returns an empty dataset, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchDataset(ctx context.Context) (boxscore.Dataset, error) {
	return boxscore.Dataset{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchDataset(ctx context.Context) (boxscore.Dataset, error) {
	return boxscore.Dataset{}, providers.ErrProviderUnavailable
}
