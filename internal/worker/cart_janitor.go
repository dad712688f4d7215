package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CartFacade exposes the subset of application functionality required by the janitor.
type CartFacade interface {
	SweepAbandonedCarts(ctx context.Context, maxAge time.Duration, limit int) (int64, error)
}

// CartJanitor periodically removes abandoned cart lines using a small worker
// pool. Batches are bounded so a sweep never holds locks on the whole table.
type CartJanitor struct {
	facade    CartFacade
	interval  time.Duration
	maxAge    time.Duration
	batchSize int
	workers   int
	logger    *slog.Logger

	jobs   chan struct{}
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCartJanitor constructs the janitor worker pool.
func NewCartJanitor(facade CartFacade, interval, maxAge time.Duration, batchSize, workers int, logger *slog.Logger) *CartJanitor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &CartJanitor{
		facade:    facade,
		interval:  interval,
		maxAge:    maxAge,
		batchSize: batchSize,
		workers:   workers,
		logger:    logger,
		jobs:      make(chan struct{}, workers),
	}
}

// Start launches background sweeping.
func (j *CartJanitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	for i := 0; i < j.workers; i++ {
		j.wg.Add(1)
		go j.worker(runCtx)
	}

	j.wg.Add(1)
	go j.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (j *CartJanitor) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}

func (j *CartJanitor) dispatch(ctx context.Context) {
	defer j.wg.Done()
	defer close(j.jobs)
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case j.jobs <- struct{}{}:
			default:
			}
		}
	}
}

func (j *CartJanitor) worker(ctx context.Context) {
	defer j.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-j.jobs:
			if !ok {
				return
			}
			j.sweep(ctx)
		}
	}
}

// sweep drains stale cart lines batch by batch until a partial batch signals
// the backlog is gone.
func (j *CartJanitor) sweep(ctx context.Context) {
	for {
		removed, err := j.facade.SweepAbandonedCarts(ctx, j.maxAge, j.batchSize)
		if err != nil {
			j.logger.Error("cart sweep failed", slog.String("error", err.Error()))
			return
		}
		if removed > 0 {
			j.logger.Info("abandoned cart lines removed", slog.Int64("count", removed))
		}
		if removed < int64(j.batchSize) {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
