package shape

import (
	"context"
	"fmt"
	"sync"
)

// Promise is a single-assignment future. The first settlement wins; later
// resolve or reject calls are ignored.
type Promise[T any] struct {
	mu       sync.Mutex
	result   Result[T]
	settled  chan struct{}
	handlers []func(value any, err error)
}

// NewPromise runs executor synchronously. A panicking executor rejects
// the promise unless it has already settled. Rejecting with a nil error
// rejects with ErrRejected.
func NewPromise[T any](executor func(resolve func(T), reject func(error))) *Promise[T] {
	p := &Promise[T]{settled: make(chan struct{})}

	func() {
		defer func() {
			if r := recover(); r != nil {
				p.settle(Fail[T](fmt.Errorf("promise executor panicked: %v", r)))
			}
		}()

		executor(
			func(v T) { p.settle(Success(v)) },
			func(err error) {
				if err == nil {
					err = ErrRejected
				}
				p.settle(Fail[T](err))
			},
		)
	}()

	return p
}

func Resolved[T any](v T) *Promise[T] {
	return NewPromise(func(resolve func(T), _ func(error)) { resolve(v) })
}

func Rejected[T any](err error) *Promise[T] {
	return NewPromise(func(_ func(T), reject func(error)) { reject(err) })
}

func (p *Promise[T]) settle(r Result[T]) {
	p.mu.Lock()
	if !p.result.IsEmpty() {
		p.mu.Unlock()
		return
	}
	p.result = r
	handlers := p.handlers
	p.handlers = nil
	close(p.settled)
	p.mu.Unlock()

	for _, h := range handlers {
		notify(r, h)
	}
}

func notify[T any](r Result[T], onSettled func(value any, err error)) {
	if r.IsSuccess() {
		onSettled(r.Value(), nil)
		return
	}
	onSettled(nil, r.Err())
}

// Then calls onSettled once: immediately when p has settled, otherwise on
// the goroutine that settles it.
func (p *Promise[T]) Then(onSettled func(value any, err error)) {
	if onSettled == nil {
		return
	}

	p.mu.Lock()
	if p.result.IsEmpty() {
		p.handlers = append(p.handlers, onSettled)
		p.mu.Unlock()
		return
	}
	r := p.result
	p.mu.Unlock()

	notify(r, onSettled)
}

// Await blocks until p settles or ctx is done.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.settled:
		return p.Result().Unwrap()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the settlement, or an empty Result while pending.
func (p *Promise[T]) Result() Result[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// Await blocks until any Thenable settles or ctx is done. Settlements after
// the first are dropped.
func Await(ctx context.Context, t Thenable) (any, error) {
	if IsNil(t) {
		return nil, fmt.Errorf("await: %w", ErrNilThenable)
	}

	ch := make(chan Result[any], 1)
	t.Then(func(value any, err error) {
		r := Success(value)
		if err != nil {
			r = Fail[any](err)
		}
		select {
		case ch <- r:
		default:
		}
	})

	select {
	case r := <-ch:
		return r.Unwrap()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
