package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

type sweepStub struct {
	mu      sync.Mutex
	batches []int64
	calls   int
	err     error
}

func (s *sweepStub) SweepAbandonedCarts(ctx context.Context, maxAge time.Duration, limit int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	if len(s.batches) == 0 {
		return 0, nil
	}
	removed := s.batches[0]
	s.batches = s.batches[1:]
	return removed, nil
}

func (s *sweepStub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewCartJanitorNormalizesArguments(t *testing.T) {
	j := NewCartJanitor(&sweepStub{}, time.Minute, time.Hour, 0, -1, discardLogger())
	if j.workers != 1 {
		t.Fatalf("expected 1 worker, got %d", j.workers)
	}
	if j.batchSize != 1 {
		t.Fatalf("expected batch size 1, got %d", j.batchSize)
	}
}

func TestCartJanitorSweepsUntilBacklogDrained(t *testing.T) {
	stub := &sweepStub{batches: []int64{2, 2, 1}}
	j := NewCartJanitor(stub, 5*time.Millisecond, time.Hour, 2, 1, discardLogger())

	j.Start(context.Background())
	deadline := time.Now().Add(time.Second)
	for stub.callCount() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	j.Stop()

	if calls := stub.callCount(); calls < 3 {
		t.Fatalf("expected at least 3 sweep calls, got %d", calls)
	}
}

func TestCartJanitorStopsOnError(t *testing.T) {
	stub := &sweepStub{err: errors.New("boom")}
	j := NewCartJanitor(stub, 5*time.Millisecond, time.Hour, 2, 2, discardLogger())

	j.Start(context.Background())
	deadline := time.Now().Add(time.Second)
	for stub.callCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	j.Stop()

	if stub.callCount() == 0 {
		t.Fatal("expected sweep to be attempted")
	}
}

func TestCartJanitorStopIsIdempotent(t *testing.T) {
	j := NewCartJanitor(&sweepStub{}, time.Minute, time.Hour, 1, 1, discardLogger())
	j.Start(context.Background())
	j.Stop()
	j.Stop()
}
