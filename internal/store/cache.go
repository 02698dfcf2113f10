package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"nba-player-stats-service/internal/domain/stats"
	"nba-player-stats-service/internal/logging"
	"nba-player-stats-service/internal/metrics"
)

// DefaultTTL is how long a snapshot is served before a read triggers a reload.
const DefaultTTL = time.Hour

var errNoSnapshot = errors.New("store: no snapshot available")

// LoaderFunc produces a fresh snapshot from the upstream dataset.
type LoaderFunc func(ctx context.Context) (*stats.Snapshot, error)

// SnapshotCache holds the single shared snapshot and reloads it through the
// loader once it goes stale. Fresh reads are lock-free; stale readers coalesce
// onto one loader call. A failed reload keeps the previous snapshot in place
// but the caller still sees the error.
type SnapshotCache struct {
	loader  LoaderFunc
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	mu      sync.Mutex
	current atomic.Pointer[stats.Snapshot]
}

// New constructs a SnapshotCache with sane defaults.
func New(loader LoaderFunc, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *SnapshotCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SnapshotCache{
		loader:  loader,
		ttl:     ttl,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Snapshot returns the current snapshot, reloading it first when it is absent
// or older than the TTL.
func (c *SnapshotCache) Snapshot(ctx context.Context) (*stats.Snapshot, error) {
	if snap := c.current.Load(); c.fresh(snap) {
		return snap, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another reader may have reloaded while we waited on the mutex.
	if snap := c.current.Load(); c.fresh(snap) {
		return snap, nil
	}
	return c.reload(ctx)
}

// Refresh reloads the snapshot regardless of age.
func (c *SnapshotCache) Refresh(ctx context.Context) (*stats.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reload(ctx)
}

// Peek returns the current snapshot without triggering a reload. It may be nil.
func (c *SnapshotCache) Peek() *stats.Snapshot {
	return c.current.Load()
}

func (c *SnapshotCache) fresh(snap *stats.Snapshot) bool {
	return snap != nil && c.now().Sub(snap.FetchedAt) < c.ttl
}

// reload runs the loader and publishes the result. Callers must hold c.mu.
func (c *SnapshotCache) reload(ctx context.Context) (*stats.Snapshot, error) {
	logger := logging.FromContext(ctx, c.logger)
	if c.loader == nil {
		return nil, errNoSnapshot
	}

	start := time.Now()
	snap, err := c.loader(ctx)
	duration := time.Since(start)
	if err == nil && snap == nil {
		err = errNoSnapshot
	}
	if c.metrics != nil {
		c.metrics.RecordRefresh(duration, err)
	}
	if err != nil {
		logging.Error(logger, "snapshot refresh failed", err,
			logging.FieldDurationMS, duration.Milliseconds(),
		)
		return nil, err
	}

	stamped := *snap
	stamped.FetchedAt = c.now().UTC()
	stamped.ID = uuid.NewString()
	c.current.Store(&stamped)

	logging.Info(logger, "snapshot refreshed",
		logging.FieldSnapshotID, stamped.ID,
		"players", len(stamped.Aggregates),
		logging.FieldCount, len(stamped.Names),
		logging.FieldDurationMS, duration.Milliseconds(),
	)
	return &stamped, nil
}
