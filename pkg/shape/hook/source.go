package hook

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"sync"

	"github.com/ib-77/gridshape/pkg/shape"
)

// Source is a per-file value provider. It holds exactly one of a hook, a
// generator (function or started instance) or a thenable.
type Source[T any] struct {
	mu       sync.Mutex
	hook     Hook[T]
	genFn    shape.GeneratorFunc[T]
	gen      *shape.Generator[T]
	thenable shape.Thenable
	closed   bool
}

func FromHook[T any](h Hook[T]) *Source[T] {
	return &Source[T]{hook: h}
}

// FromGenerator defers starting g until the first Resolve.
func FromGenerator[T any](g shape.GeneratorFunc[T]) *Source[T] {
	return &Source[T]{genFn: g}
}

func FromGeneratorInstance[T any](g *shape.Generator[T]) *Source[T] {
	return &Source[T]{gen: g}
}

// FromThenable resolves every file to the settlement of t.
func FromThenable[T any](t shape.Thenable) *Source[T] {
	return &Source[T]{thenable: t}
}

func FromValue[T any](v T) *Source[T] {
	return FromHook(ConstantValue(v))
}

// Wrap builds a Source from an arbitrary option value. A nil value falls
// back to fallback; generator functions, started generators, hooks,
// thenables and plain values of type T are accepted.
func Wrap[T any](v any, fallback Hook[T]) (*Source[T], error) {
	switch {
	case shape.IsNil(v):
		if fallback == nil {
			return nil, ErrEmptySource
		}
		return FromHook(fallback), nil

	case shape.IsGeneratorFunction(v):
		if g, ok := v.(shape.GeneratorFunc[T]); ok {
			return FromGenerator(g), nil
		}

	case shape.IsGenerator(v):
		if g, ok := v.(*shape.Generator[T]); ok {
			return FromGeneratorInstance(g), nil
		}

	case shape.IsCallable(v):
		switch h := v.(type) {
		case Hook[T]:
			return FromHook(h), nil
		case func(*http.Request, *multipart.FileHeader, Done[T]):
			return FromHook(Hook[T](h)), nil
		case func(*http.Request, *multipart.FileHeader, func(error, T)):
			return FromHook(func(r *http.Request, file *multipart.FileHeader, done Done[T]) {
				h(r, file, done)
			}), nil
		}

	case shape.IsPromise(v):
		return FromThenable[T](v.(shape.Thenable)), nil

	default:
		if t, ok := v.(T); ok {
			return FromValue(t), nil
		}
	}

	return nil, fmt.Errorf("%w: %s %T", ErrUnsupportedSource, shape.Classify(v), v)
}

// IsCoroutine reports whether s pulls values from a generator.
func (s *Source[T]) IsCoroutine() bool {
	return s.genFn != nil || s.gen != nil
}

// Resolve produces the value for one file. Hooks may call done from any
// goroutine; only the first call counts.
func (s *Source[T]) Resolve(ctx context.Context, r *http.Request, file *multipart.FileHeader) shape.Result[T] {
	if err := ctx.Err(); err != nil {
		return shape.Cancel[T](err)
	}

	switch {
	case s.hook != nil:
		return s.resolveHook(ctx, r, file)
	case s.IsCoroutine():
		return s.resolveNext()
	case s.thenable != nil:
		return s.resolveThenable(ctx)
	default:
		return shape.Fail[T](ErrEmptySource)
	}
}

// Call is the callback form of Resolve. Hooks are invoked directly.
func (s *Source[T]) Call(r *http.Request, file *multipart.FileHeader, done Done[T]) {
	if s.hook != nil {
		s.hook(r, file, done)
		return
	}

	res := s.Resolve(context.Background(), r, file)
	done(res.Err(), res.Value())
}

// Close stops a generator-backed source. Later resolutions fail with
// ErrGeneratorExhausted.
func (s *Source[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.gen != nil {
		s.gen.Stop()
	}
}

func (s *Source[T]) resolveHook(ctx context.Context, r *http.Request, file *multipart.FileHeader) shape.Result[T] {
	ch := make(chan shape.Result[T], 1)
	once := &sync.Once{}

	s.hook(r, file, func(err error, value T) {
		once.Do(func() {
			if err != nil {
				ch <- shape.Fail[T](err)
				return
			}
			ch <- shape.Success(value)
		})
	})

	select {
	case res := <-ch:
		return res
	case <-ctx.Done():
		return shape.Cancel[T](ctx.Err())
	}
}

func (s *Source[T]) resolveNext() shape.Result[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return shape.Fail[T](ErrGeneratorExhausted)
	}
	if s.gen == nil {
		s.gen = s.genFn.Start()
	}

	v, ok := s.gen.Next()
	if !ok {
		return shape.Fail[T](ErrGeneratorExhausted)
	}
	return shape.Success(v)
}

func (s *Source[T]) resolveThenable(ctx context.Context) shape.Result[T] {
	v, err := shape.Await(ctx, s.thenable)
	if err != nil {
		if shape.IsCancellationError(err) && ctx.Err() != nil {
			return shape.Cancel[T](err)
		}
		return shape.Fail[T](err)
	}

	typed, ok := as[T](v)
	if !ok {
		return shape.Fail[T](fmt.Errorf("%w: thenable settled with %T", ErrUnsupportedSource, v))
	}
	return shape.Success(typed)
}

func as[T any](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	var zero T
	return zero, v == nil && shape.IsNil(any(zero))
}
