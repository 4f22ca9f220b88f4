// Package batcher buffers items and hands them to a flush callback in batches,
// with the flush rate capped by a limiter.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher no longer accepts items.
var ErrStopped = errors.New("batcher stopped")

// Batcher collects items and flushes them when flushSize is reached, when
// flushInterval elapses, and once more on shutdown.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once

	// sendMu is held for reading by Add while it sends. The run loop takes it
	// for writing to seal the queue before the final drain.
	sendMu sync.RWMutex
	sealed bool

	mu       sync.Mutex
	flushErr error
	flushed  int
}

// New constructs a Batcher. rps caps flushes per second.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	if flushSize < 1 {
		flushSize = 1
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.New(rps),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop. Cancelling ctx ends the loop after
// a final flush of what is buffered.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop drains queued items, flushes them and waits for the loop to exit. It
// returns the first flush error seen during the batcher's lifetime.
func (b *Batcher[T]) Stop() error {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
	return b.Err()
}

// Err returns the first flush error, if any.
func (b *Batcher[T]) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushErr
}

// Flushed returns the number of items handed to successful flushes.
func (b *Batcher[T]) Flushed() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushed
}

// Add queues an item, blocking while the queue is full. An item accepted with a
// nil error is always handed to a flush.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	b.sendMu.RLock()
	defer b.sendMu.RUnlock()
	if b.sealed {
		return ErrStopped
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		err := b.flushCallback(ctx, buf)
		b.mu.Lock()
		if err != nil {
			if b.flushErr == nil {
				b.flushErr = err
			}
		} else {
			b.flushed += len(buf)
		}
		b.mu.Unlock()

		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	// drain empties the queue on shutdown. The final flushes run detached from
	// ctx so that cancellation does not discard buffered items. Senders already
	// inside Add finish before the queue is sealed, so nothing they queued is
	// left behind.
	drain := func() {
		final := context.WithoutCancel(ctx)
		take := func(item T) {
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(final)
			}
		}

		sealed := make(chan struct{})
		go func() {
			b.sendMu.Lock()
			b.sealed = true
			b.sendMu.Unlock()
			close(sealed)
		}()

		for {
			select {
			case item := <-b.itemsCh:
				take(item)
			case <-sealed:
				for {
					select {
					case item := <-b.itemsCh:
						take(item)
					default:
						flush(final)
						return
					}
				}
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
