package arr

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const (
	defaultBatchSize       = 64
	defaultSerialThreshold = 256
)

type parallelConfig struct {
	workers         int
	batchSize       int
	serialThreshold int
}

// ParallelOption tunes [PMap].
type ParallelOption func(*parallelConfig)

// WithWorkers bounds the number of goroutines running fn at once.
// Defaults to runtime.GOMAXPROCS(0); values below 1 are treated as 1.
func WithWorkers(count int) ParallelOption {
	return func(c *parallelConfig) {
		c.workers = max(count, 1)
	}
}

// WithBatchSize sets how many consecutive elements one goroutine handles
// per dispatch. Defaults to 64; values below 1 are treated as 1.
func WithBatchSize(size int) ParallelOption {
	return func(c *parallelConfig) {
		c.batchSize = max(size, 1)
	}
}

// WithSerialThreshold sets the input length below which [PMap] runs fn on the
// calling goroutine. Defaults to 256. Pass 0 to always fan out.
func WithSerialThreshold(n int) ParallelOption {
	return func(c *parallelConfig) {
		c.serialThreshold = max(n, 0)
	}
}

func newParallelConfig(opts []ParallelOption) parallelConfig {
	cfg := parallelConfig{
		workers:         runtime.GOMAXPROCS(0),
		batchSize:       defaultBatchSize,
		serialThreshold: defaultSerialThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// workerPanic carries a value recovered on a worker goroutine.
type workerPanic struct {
	value any
	stack []byte
}

func (p *workerPanic) String() string {
	return fmt.Sprintf("%v\n\nworker goroutine stack:\n%s", p.value, p.stack)
}

// PMap is [Map] with fn invoked concurrently on a bounded group of worker
// goroutines. The result keeps the order of items regardless of the order in
// which calls finish, and elements for which fn reports false are dropped
// exactly as in Map.
//
// fn must be safe for concurrent use; PMap does not serialise calls. PMap
// blocks until every call has returned. There is no cancellation, so a call
// that never returns stalls PMap forever.
//
// Fanning out costs goroutine scheduling and extra allocation, which
// outweighs the gain for short inputs or cheap callbacks. Inputs shorter than
// the serial threshold (see [WithSerialThreshold]) therefore run in place.
//
// A panic in fn is re-raised on the calling goroutine after the remaining
// workers finish.
func PMap[T, U any](items []T, fn func(T) (U, bool), opts ...ParallelOption) []U {
	cfg := newParallelConfig(opts)
	n := len(items)
	if n == 0 || n < cfg.serialThreshold || cfg.workers == 1 {
		return Map(items, fn)
	}

	// Each slot is written by exactly one goroutine, and Wait orders those
	// writes before the compaction below.
	slots := make([]U, n)
	keep := make([]bool, n)
	var panicked atomic.Pointer[workerPanic]

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for lo := 0; lo < n; lo += cfg.batchSize {
		lo := lo
		hi := min(lo+cfg.batchSize, n)
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, 64<<10)
					buf = buf[:runtime.Stack(buf, false)]
					panicked.CompareAndSwap(nil, &workerPanic{value: r, stack: buf})
				}
			}()
			for i := lo; i < hi; i++ {
				if panicked.Load() != nil {
					return nil
				}
				slots[i], keep[i] = fn(items[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	if p := panicked.Load(); p != nil {
		panic(p.String())
	}

	out := make([]U, 0, n)
	for i, ok := range keep {
		if ok {
			out = append(out, slots[i])
		}
	}
	return out
}
