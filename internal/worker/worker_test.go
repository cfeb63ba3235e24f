package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"league-postseason-service/internal/domain"
	"league-postseason-service/internal/store"
)

type stubResolver struct {
	mu    sync.Mutex
	calls []int
	fail  map[int]error
}

func (r *stubResolver) ResolveSeason(ctx context.Context, season int) (*domain.SeasonResult, error) {
	r.mu.Lock()
	r.calls = append(r.calls, season)
	r.mu.Unlock()
	if err, ok := r.fail[season]; ok {
		return nil, err
	}
	return &domain.SeasonResult{Season: season}, nil
}

func (r *stubResolver) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

type recordingWriter struct {
	mu      sync.Mutex
	seasons []int
	err     error
}

func (w *recordingWriter) WriteSeasonSnapshot(result domain.SeasonResult) error {
	w.mu.Lock()
	w.seasons = append(w.seasons, result.Season)
	w.mu.Unlock()
	return w.err
}

type recordingSink struct {
	mu      sync.Mutex
	seasons []int
	err     error
}

func (s *recordingSink) UpsertStandings(ctx context.Context, result domain.SeasonResult) error {
	s.mu.Lock()
	s.seasons = append(s.seasons, result.Season)
	s.mu.Unlock()
	return s.err
}

func TestRunCycleResolvesAllSeasons(t *testing.T) {
	resolver := &stubResolver{}
	memory := store.NewMemoryStore()
	w := New(Config{
		Resolver:    resolver,
		Store:       memory,
		Seasons:     []int{2019, 2020, 2021},
		Concurrency: 2,
	})

	w.runCycle(context.Background())

	if resolver.callCount() != 3 {
		t.Fatalf("expected 3 resolutions, got %d", resolver.callCount())
	}
	if memory.Len() != 3 {
		t.Fatalf("expected 3 stored seasons, got %d", memory.Len())
	}

	status := w.Status()
	if status.SeasonsResolved != 3 || status.SeasonsFailed != 0 {
		t.Fatalf("unexpected status: %+v", status)
	}
	if !status.IsReady() {
		t.Fatal("expected worker to be ready after a successful cycle")
	}
}

func TestRunCycleFailureDoesNotBlockOtherSeasons(t *testing.T) {
	resolver := &stubResolver{fail: map[int]error{2020: errors.New("upstream down")}}
	memory := store.NewMemoryStore()
	w := New(Config{
		Resolver: resolver,
		Store:    memory,
		Seasons:  []int{2019, 2020, 2021},
	})

	w.runCycle(context.Background())

	if memory.Len() != 2 {
		t.Fatalf("expected 2 stored seasons, got %d", memory.Len())
	}
	status := w.Status()
	if status.SeasonsResolved != 2 || status.SeasonsFailed != 1 {
		t.Fatalf("unexpected status: %+v", status)
	}
	if status.LastError != "upstream down" {
		t.Fatalf("unexpected last error: %q", status.LastError)
	}
	if !status.IsReady() {
		t.Fatal("partial success should still mark the worker ready")
	}
}

func TestStatusNotReadyWhenNothingResolved(t *testing.T) {
	resolver := &stubResolver{fail: map[int]error{2019: errors.New("boom")}}
	w := New(Config{Resolver: resolver, Store: store.NewMemoryStore(), Seasons: []int{2019}})

	w.runCycle(context.Background())

	if w.Status().IsReady() {
		t.Fatal("worker must not report ready with zero resolved seasons")
	}
}

func TestResolveOneWriterAndSinkFailuresAreNonFatal(t *testing.T) {
	resolver := &stubResolver{}
	writer := &recordingWriter{err: errors.New("disk full")}
	sink := &recordingSink{err: errors.New("db down")}
	w := New(Config{
		Resolver: resolver,
		Store:    store.NewMemoryStore(),
		Writer:   writer,
		Sink:     sink,
		Seasons:  []int{2019},
	})

	if err := w.resolveOne(context.Background(), 2019); err != nil {
		t.Fatalf("writer and sink failures must not fail the resolution: %v", err)
	}
	if len(writer.seasons) != 1 || writer.seasons[0] != 2019 {
		t.Fatalf("expected snapshot write for 2019, got %v", writer.seasons)
	}
	if len(sink.seasons) != 1 || sink.seasons[0] != 2019 {
		t.Fatalf("expected sink upsert for 2019, got %v", sink.seasons)
	}
}

func TestResolveSeasonOnDemand(t *testing.T) {
	resolver := &stubResolver{}
	memory := store.NewMemoryStore()
	w := New(Config{Resolver: resolver, Store: memory, Seasons: []int{2019}})

	if err := w.ResolveSeason(context.Background(), 2017); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := memory.Result(2017); !ok {
		t.Fatal("on-demand resolution should store the result")
	}
}

func TestResolveSeasonPropagatesError(t *testing.T) {
	wantErr := errors.New("bad season")
	resolver := &stubResolver{fail: map[int]error{2017: wantErr}}
	w := New(Config{Resolver: resolver, Store: store.NewMemoryStore()})

	if err := w.ResolveSeason(context.Background(), 2017); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestStartRunsInitialCycleAndStops(t *testing.T) {
	resolver := &stubResolver{}
	w := New(Config{
		Resolver: resolver,
		Store:    store.NewMemoryStore(),
		Seasons:  []int{2019},
		Interval: time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Start(ctx)

	deadline := time.After(2 * time.Second)
	for resolver.callCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("initial cycle never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
	// Stop is idempotent.
	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("second stop errored: %v", err)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	resolver := &stubResolver{}
	w := New(Config{Resolver: resolver, Store: store.NewMemoryStore(), Interval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Start(ctx)
	w.Start(ctx)

	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
}

func TestDefaultsApplied(t *testing.T) {
	w := New(Config{})
	if w.interval != defaultInterval {
		t.Fatalf("expected default interval, got %v", w.interval)
	}
	if w.concurrency != defaultConcurrency {
		t.Fatalf("expected default concurrency, got %d", w.concurrency)
	}
}
