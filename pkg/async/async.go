package async

import (
	"context"
	"sync"
)

// Future holds the result of work running in the background.
type Future[U any] struct {
	once sync.Once
	done chan struct{}
	val  U
	err  error
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

func (f *Future[U]) resolve(v U, err error) {
	f.once.Do(func() {
		f.val, f.err = v, err
		close(f.done)
	})
}

// Await blocks until the future resolves.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.val, f.err
}

// AwaitContext is Await bounded by ctx. Giving up does not stop the work.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// Done is closed once the future resolved.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Async runs fn(ctx, arg) in a new goroutine. When ctx is already done fn is
// not called and the future carries ctx.Err().
func Async[T, U any](ctx context.Context, arg T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()
	go func() {
		if err := ctx.Err(); err != nil {
			var zero U
			f.resolve(zero, err)
			return
		}
		f.resolve(fn(ctx, arg))
	}()
	return f
}

// Then runs fn with the value of f once f resolved without error. An error
// from f skips fn and is passed on.
func Then[U, V any](ctx context.Context, f *Future[U], fn func(context.Context, U) (V, error)) *Future[V] {
	next := newFuture[V]()
	go func() {
		v, err := f.Await()
		if err != nil {
			var zero V
			next.resolve(zero, err)
			return
		}
		next.resolve(fn(ctx, v))
	}()
	return next
}

// Rejected returns a future that already failed with err. v is still
// returned by Await so callers can report an outcome alongside the error.
func Rejected[U any](v U, err error) *Future[U] {
	f := newFuture[U]()
	f.resolve(v, err)
	return f
}
