// Package deferred provides single-assignment values that settle later.
//
// A Deferred is settled exactly once, either with a value or with an error.
// Work that completes immediately is represented by an already settled
// Deferred, so callers handle synchronous and asynchronous results the same way.
package deferred

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Waiter is the type-erased view of a Deferred.
type Waiter interface {
	Done() <-chan struct{}
	Err() error
}

var _ Waiter = (*Deferred[int])(nil)

// Deferred is a value of type T that becomes available once Done is closed.
type Deferred[T any] struct {
	done chan struct{}
	once sync.Once
	val  T
	err  error
}

// New returns an unsettled Deferred and the function that settles it.
// Only the first call to settle has an effect.
func New[T any]() (*Deferred[T], func(T, error)) {
	d := &Deferred[T]{done: make(chan struct{})}
	return d, d.settle
}

// Resolved returns a Deferred already settled with v.
func Resolved[T any](v T) *Deferred[T] {
	d, settle := New[T]()
	settle(v, nil)
	return d
}

// Rejected returns a Deferred already settled with err.
func Rejected[T any](err error) *Deferred[T] {
	d, settle := New[T]()
	var zero T
	settle(zero, err)
	return d
}

// Go runs fn in its own goroutine and settles with its result.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Deferred[T] {
	d, settle := New[T]()
	go func() {
		settle(fn(ctx))
	}()
	return d
}

func (d *Deferred[T]) settle(v T, err error) {
	d.once.Do(func() {
		d.val = v
		d.err = err
		close(d.done)
	})
}

// Done is closed once the value is settled.
func (d *Deferred[T]) Done() <-chan struct{} { return d.done }

// Settled reports whether the value is available without blocking.
func (d *Deferred[T]) Settled() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Result blocks until settled and returns the outcome.
func (d *Deferred[T]) Result() (T, error) {
	<-d.done
	return d.val, d.err
}

// Err blocks until settled and returns the error, if any.
func (d *Deferred[T]) Err() error {
	<-d.done
	return d.err
}

// Await blocks until settled or ctx is done.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		return d.val, d.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then maps a successful value with fn. Errors pass through untouched.
// When d is already settled fn runs on the calling goroutine.
func Then[T, U any](d *Deferred[T], fn func(T) (U, error)) *Deferred[U] {
	return Chain(d, func(v T) *Deferred[U] {
		u, err := fn(v)
		if err != nil {
			return Rejected[U](err)
		}
		return Resolved(u)
	})
}

// Chain continues d with another deferred computation.
func Chain[T, U any](d *Deferred[T], fn func(T) *Deferred[U]) *Deferred[U] {
	if d.Settled() {
		if d.err != nil {
			return Rejected[U](d.err)
		}
		return fn(d.val)
	}
	out, settle := New[U]()
	go func() {
		v, err := d.Result()
		if err != nil {
			var zero U
			settle(zero, err)
			return
		}
		settle(fn(v).Result())
	}()
	return out
}

// Catch turns an error into a value produced by fn.
func Catch[T any](d *Deferred[T], fn func(error) T) *Deferred[T] {
	if d.Settled() {
		if d.err != nil {
			return Resolved(fn(d.err))
		}
		return d
	}
	out, settle := New[T]()
	go func() {
		v, err := d.Result()
		if err != nil {
			v = fn(err)
		}
		settle(v, nil)
	}()
	return out
}

// Join settles once every waiter has settled, with the first error in
// argument order.
func Join(ws ...Waiter) *Deferred[struct{}] {
	pending := false
	for _, w := range ws {
		select {
		case <-w.Done():
		default:
			pending = true
		}
	}
	if !pending {
		return Resolved(struct{}{}).withErr(firstErr(ws))
	}
	out, settle := New[struct{}]()
	go func() {
		for _, w := range ws {
			<-w.Done()
		}
		settle(struct{}{}, firstErr(ws))
	}()
	return out
}

func (d *Deferred[T]) withErr(err error) *Deferred[T] {
	if err == nil {
		return d
	}
	return Rejected[T](err)
}

func firstErr(ws []Waiter) error {
	for _, w := range ws {
		if err := w.Err(); err != nil {
			return err
		}
	}
	return nil
}

// All waits for every deferred and returns their values in order. It stops
// at the first error or when ctx is done.
func All[T any](ctx context.Context, ds []*Deferred[T]) ([]T, error) {
	out := make([]T, len(ds))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range ds {
		g.Go(func() error {
			v, err := d.Await(gctx)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
