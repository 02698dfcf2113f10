package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"nba-player-stats-service/internal/domain/stats"
)

type countingLoader struct {
	calls atomic.Int32
	err   error
	delay time.Duration
}

func (l *countingLoader) load(ctx context.Context) (*stats.Snapshot, error) {
	_ = ctx
	l.calls.Add(1)
	if l.delay > 0 {
		time.Sleep(l.delay)
	}
	if l.err != nil {
		return nil, l.err
	}
	return &stats.Snapshot{
		Collection: stats.Collection{
			Aggregates: map[string]stats.PlayerAggregate{"Jane Doe": {Name: "Jane Doe"}},
			Names:      []string{"Jane Doe"},
		},
	}, nil
}

func TestSnapshotServesCachedWithinTTL(t *testing.T) {
	loader := &countingLoader{}
	cache := New(loader.load, time.Hour, nil, nil)
	current := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	first, err := cache.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := cache.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if calls := loader.calls.Load(); calls != 1 {
		t.Fatalf("expected a single loader call, got %d", calls)
	}
	if first != second {
		t.Fatal("expected the same snapshot pointer while fresh")
	}
}

func TestSnapshotReloadsAfterTTL(t *testing.T) {
	loader := &countingLoader{}
	cache := New(loader.load, time.Hour, nil, nil)
	current := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	if _, err := cache.Snapshot(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	current = current.Add(61 * time.Minute)
	snap, err := cache.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if calls := loader.calls.Load(); calls != 2 {
		t.Fatalf("expected reload after ttl, got %d calls", calls)
	}
	if !snap.FetchedAt.Equal(current) {
		t.Fatalf("expected fetched at %s, got %s", current, snap.FetchedAt)
	}
}

func TestSnapshotStampsIdentity(t *testing.T) {
	loader := &countingLoader{}
	cache := New(loader.load, time.Hour, nil, nil)
	fixed := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return fixed }

	snap, err := cache.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := uuid.Parse(snap.ID); err != nil {
		t.Fatalf("expected uuid snapshot id, got %q", snap.ID)
	}
	if !snap.FetchedAt.Equal(fixed) {
		t.Fatalf("expected fetched at %s, got %s", fixed, snap.FetchedAt)
	}
}

func TestSnapshotKeepsPreviousOnFailure(t *testing.T) {
	loader := &countingLoader{}
	cache := New(loader.load, time.Hour, nil, nil)
	current := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	first, err := cache.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	loader.err = errors.New("upstream down")
	current = current.Add(2 * time.Hour)

	snap, err := cache.Snapshot(context.Background())
	if err == nil {
		t.Fatal("expected refresh error to propagate")
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot alongside error, got %+v", snap)
	}

	peeked := cache.Peek()
	if peeked == nil || peeked.ID != first.ID {
		t.Fatal("expected previous snapshot retained after failure")
	}
}

func TestSnapshotErrorWithEmptyCache(t *testing.T) {
	loader := &countingLoader{err: errors.New("boom")}
	cache := New(loader.load, time.Hour, nil, nil)

	if _, err := cache.Snapshot(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if cache.Peek() != nil {
		t.Fatal("expected cache to stay empty after failed load")
	}
}

func TestSnapshotCoalescesConcurrentReaders(t *testing.T) {
	loader := &countingLoader{delay: 20 * time.Millisecond}
	cache := New(loader.load, time.Hour, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Snapshot(context.Background()); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if calls := loader.calls.Load(); calls != 1 {
		t.Fatalf("expected a single loader call, got %d", calls)
	}
}

func TestRefreshForcesReload(t *testing.T) {
	loader := &countingLoader{}
	cache := New(loader.load, time.Hour, nil, nil)

	first, err := cache.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	snap, err := cache.Refresh(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if calls := loader.calls.Load(); calls != 2 {
		t.Fatalf("expected 2 loader calls, got %d", calls)
	}
	if snap.ID == first.ID {
		t.Fatal("expected a fresh snapshot identity")
	}
}

func TestPeekDoesNotLoad(t *testing.T) {
	loader := &countingLoader{}
	cache := New(loader.load, time.Hour, nil, nil)

	if cache.Peek() != nil {
		t.Fatal("expected nil before first load")
	}
	if calls := loader.calls.Load(); calls != 0 {
		t.Fatalf("expected no loader calls, got %d", calls)
	}
}

func TestNewDefaultsTTL(t *testing.T) {
	loader := &countingLoader{}
	cache := New(loader.load, 0, nil, nil)

	if cache.ttl != DefaultTTL {
		t.Fatalf("expected default ttl, got %s", cache.ttl)
	}
}

func TestSnapshotWithoutLoader(t *testing.T) {
	cache := New(nil, time.Hour, nil, nil)

	if _, err := cache.Snapshot(context.Background()); !errors.Is(err, errNoSnapshot) {
		t.Fatalf("expected errNoSnapshot, got %v", err)
	}
}
