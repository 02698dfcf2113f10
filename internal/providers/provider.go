package providers

import (
	"context"

	"nba-player-stats-service/internal/domain/boxscore"
)

// DatasetProvider defines how the raw stat tables are fetched from an
// upstream source. Implementations must be safe for concurrent use and
// should honor ctx cancellation. A failed fetch returns an error and no
// partial data; callers keep whatever they had before.
type DatasetProvider interface {
	FetchDataset(ctx context.Context) (boxscore.Dataset, error)
}
