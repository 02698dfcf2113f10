package warmer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nba-player-stats-service/internal/domain/stats"
	"nba-player-stats-service/internal/logging"
)

const defaultInterval = 10 * time.Minute

// Cache is the guarded snapshot source the warmer keeps fresh.
type Cache interface {
	Snapshot(ctx context.Context) (*stats.Snapshot, error)
	Refresh(ctx context.Context) (*stats.Snapshot, error)
	Peek() *stats.Snapshot
}

// Warmer periodically touches the snapshot cache so interactive requests
// rarely pay the refresh latency. It rides the cache's own single-flight
// refresh path, so it cannot race interactive reloads.
type Warmer struct {
	cache    Cache
	logger   *slog.Logger
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the warm loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether data has been warmed and the loop is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Warmer with sane defaults.
func New(cache Cache, logger *slog.Logger, interval time.Duration) *Warmer {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Warmer{
		cache:    cache,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins warming until the context is cancelled or Stop is called.
func (w *Warmer) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.ticker = time.NewTicker(w.interval)

	go func() {
		w.logInfo("warmer started", slog.Duration("interval", w.interval))
		// Initial warm to populate the cache on boot.
		w.warmOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				w.stopTicker()
				w.logInfo("warmer stopped")
				return
			case <-w.done:
				w.stopTicker()
				w.logInfo("warmer stopped")
				return
			case <-w.ticker.C:
				w.warmOnce(ctx)
			}
		}
	}()
}

// Stop halts the warm loop.
func (w *Warmer) Stop(ctx context.Context) error {
	_ = ctx
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopTicker()
	})
	return nil
}

func (w *Warmer) warmOnce(ctx context.Context) {
	start := time.Now()
	w.recordAttempt(start)

	// An empty cache is warmed with a forced reload; otherwise the TTL decides.
	var err error
	if w.cache.Peek() == nil {
		_, err = w.cache.Refresh(ctx)
	} else {
		_, err = w.cache.Snapshot(ctx)
	}
	if err != nil {
		w.logError("cache warm failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		w.recordFailure(err, start)
		return
	}

	w.recordSuccess(start)
	w.logInfo("cache warmed",
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (w *Warmer) stopTicker() {
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *Warmer) logInfo(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Info(msg, args...)
	}
}

func (w *Warmer) logError(msg string, err error, attrs ...any) {
	if w.logger != nil {
		w.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (w *Warmer) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Warmer) recordSuccess(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
}

func (w *Warmer) recordFailure(err error, at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures++
	if err != nil {
		w.status.LastError = err.Error()
	}
	w.status.LastAttempt = at
}

// Status returns a snapshot of the warmer's recent health.
func (w *Warmer) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}
