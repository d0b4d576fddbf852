package synchrony

import (
	"context"

	"github.com/llxisdsh/synchrony/internal/opt"
)

// Waker is the continuation handle a pending operation registers so that it
// can be resumed later. Waking runs the function the scheduler supplied,
// which typically re-queues the task that owns the pending operation.
//
// Two wakers resume the same task iff they are the same *Waker; a scheduler
// should hand out one Waker per task and reuse it across polls.
type Waker struct {
	wake func()
}

// NewWaker returns a Waker that calls wake when woken.
func NewWaker(wake func()) *Waker {
	return &Waker{wake: wake}
}

// Wake resumes the task behind w. A nil Waker is a no-op.
func (w *Waker) Wake() {
	if w != nil && w.wake != nil {
		w.wake()
	}
}

// WillWake reports whether w and other resume the same task.
func (w *Waker) WillWake(other *Waker) bool {
	return w == other
}

// Future is an operation that completes over one or more polls.
//
// Poll returns (value, true) once the operation is complete. Otherwise it
// returns false after arranging for w to be woken when progress is possible;
// the caller should poll again only after that wake-up.
type Future[T any] interface {
	Poll(w *Waker) (T, bool)
}

// Await drives f to completion on the calling goroutine, parking between
// polls until f's registered Waker fires.
//
// Await is a convenience for code that runs outside a scheduler. With the
// Unsync flavor only the current goroutine may ever make progress, so
// awaiting a pending Unsync future parks forever.
func Await[T any](f Future[T]) T {
	sema := new(opt.Sema)
	w := NewWaker(sema.Release)
	for {
		if v, ok := f.Poll(w); ok {
			return v
		}
		// A wake left over from an earlier poll only costs an extra poll.
		sema.Acquire()
	}
}

// AwaitContext is like Await but gives up when ctx is done, returning
// ctx.Err(). The abandoned future may stay registered with whatever it was
// waiting on; a later wake of that stale registration is harmless.
func AwaitContext[T any](ctx context.Context, f Future[T]) (T, error) {
	ready := make(chan struct{}, 1)
	w := NewWaker(func() {
		select {
		case ready <- struct{}{}:
		default:
		}
	})
	for {
		if v, ok := f.Poll(w); ok {
			return v, nil
		}
		select {
		case <-ready:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}
