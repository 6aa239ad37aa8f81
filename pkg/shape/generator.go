package shape

import (
	"iter"
	"sync"
)

// GeneratorFunc is a coroutine entry point. Calling Start yields a
// Generator; the function body runs only as values are pulled.
type GeneratorFunc[T any] func(yield func(T) bool)

// Start begins a new run of g.
func (g GeneratorFunc[T]) Start() *Generator[T] {
	next, stop := iter.Pull(iter.Seq[T](g))
	return &Generator[T]{next: next, stop: stop}
}

// Seq exposes g as a range-over-func iterator.
func (g GeneratorFunc[T]) Seq() iter.Seq[T] {
	return iter.Seq[T](g)
}

func (g GeneratorFunc[T]) startAny() Resumable {
	return g.Start()
}

// Generator is a started GeneratorFunc. It is safe for concurrent use.
type Generator[T any] struct {
	mu   sync.Mutex
	next func() (T, bool)
	stop func()
	done bool
}

// Next resumes the generator and returns the next yielded value.
// ok is false once the generator has returned or was stopped.
func (g *Generator[T]) Next() (v T, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.done {
		return v, false
	}

	v, ok = g.next()
	if !ok {
		g.done = true
		g.stop()
	}
	return v, ok
}

func (g *Generator[T]) resumeAny() {}

func (g *Generator[T]) Done() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.done
}

func (g *Generator[T]) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.done = true
	g.stop()
}
