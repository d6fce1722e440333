package catalog

import (
	"context"
	"sync"
	"time"
)

// SearchDebouncer coalesces rapid query input into one evaluation.
//
// Each Submit restarts the quiet window; when the window elapses without new
// input the last query is evaluated. A newer Submit cancels the pending
// evaluation (its context is cancelled and its result dropped), so at most one
// evaluation is current and superseded ones are never queued.
type SearchDebouncer[T any] struct {
	window   time.Duration
	evaluate func(ctx context.Context, query string) (T, error)
	onResult func(query string, result T)

	mu         sync.Mutex
	timer      *time.Timer
	cancel     context.CancelFunc
	generation uint64
	stopped    bool
}

// NewSearchDebouncer creates a debouncer. evaluate runs on its own goroutine;
// onResult is called only for the latest query and only when evaluate succeeds.
func NewSearchDebouncer[T any](window time.Duration, evaluate func(ctx context.Context, query string) (T, error), onResult func(query string, result T)) *SearchDebouncer[T] {
	if window <= 0 {
		window = DefaultSearchDebounce
	}
	return &SearchDebouncer[T]{
		window:   window,
		evaluate: evaluate,
		onResult: onResult,
	}
}

// Submit records query as the latest input and restarts the quiet window
func (d *SearchDebouncer[T]) Submit(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.supersedeLocked()
	gen := d.generation
	d.timer = time.AfterFunc(d.window, func() {
		d.run(gen, query)
	})
}

// Stop cancels any pending or running evaluation; later Submits are ignored
func (d *SearchDebouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.supersedeLocked()
	d.stopped = true
}

func (d *SearchDebouncer[T]) supersedeLocked() {
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *SearchDebouncer[T]) run(gen uint64, query string) {
	d.mu.Lock()
	if d.stopped || gen != d.generation {
		d.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.timer = nil
	d.mu.Unlock()

	result, err := d.evaluate(ctx, query)

	d.mu.Lock()
	current := !d.stopped && gen == d.generation && ctx.Err() == nil
	if current {
		d.cancel = nil
	}
	d.mu.Unlock()
	cancel()

	if current && err == nil {
		d.onResult(query, result)
	}
}
