package shape

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestResolved_ThenFiresImmediately(t *testing.T) {
	t.Parallel()
	p := Resolved(5)

	called := 0
	p.Then(func(value any, err error) {
		called++
		if err != nil || value != 5 {
			t.Fatalf("expected 5, got value=%v err=%v", value, err)
		}
	})

	if called != 1 {
		t.Fatalf("expected synchronous call, got %d calls", called)
	}
}

func TestRejected_ThenGetsError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	var gotErr error
	var gotValue any = "untouched"
	Rejected[int](boom).Then(func(value any, err error) {
		gotValue, gotErr = value, err
	})

	if !errors.Is(gotErr, boom) {
		t.Fatalf("expected boom, got %v", gotErr)
	}
	if gotValue != nil {
		t.Fatalf("expected nil value on rejection, got %v", gotValue)
	}
}

func TestPromise_FirstSettlementWins(t *testing.T) {
	t.Parallel()
	p := NewPromise(func(resolve func(string), reject func(error)) {
		resolve("first")
		resolve("second")
		reject(errors.New("late"))
	})

	v, err := p.Await(context.Background())
	if err != nil || v != "first" {
		t.Fatalf("expected first, got v=%q err=%v", v, err)
	}
}

func TestPromise_RejectWithNilError(t *testing.T) {
	t.Parallel()
	p := NewPromise(func(_ func(int), reject func(error)) {
		reject(nil)
	})

	res := p.Result()
	if !res.IsFailure() || !errors.Is(res.Err(), ErrRejected) {
		t.Fatalf("expected ErrRejected, got success=%v err=%v", res.IsSuccess(), res.Err())
	}
}

func TestPromise_ExecutorPanicRejects(t *testing.T) {
	t.Parallel()
	p := NewPromise(func(func(int), func(error)) {
		panic("bad executor")
	})

	_, err := p.Await(context.Background())
	if err == nil || err.Error() != "promise executor panicked: bad executor" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPromise_SettledFromAnotherGoroutine(t *testing.T) {
	t.Parallel()

	var resolve func(int)
	p := NewPromise(func(res func(int), _ func(error)) {
		resolve = res
	})

	if !p.Result().IsEmpty() {
		t.Fatalf("expected pending promise")
	}

	var mu sync.Mutex
	var seen []any
	for range 3 {
		p.Then(func(value any, err error) {
			mu.Lock()
			seen = append(seen, value)
			mu.Unlock()
		})
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		resolve(9)
	}()

	v, err := p.Await(context.Background())
	wg.Wait()

	if err != nil || v != 9 {
		t.Fatalf("expected 9, got v=%v err=%v", v, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 3 {
		t.Fatalf("expected 3 handler calls, got %d", len(seen))
	}
	for _, s := range seen {
		if s != 9 {
			t.Fatalf("expected 9 in handler, got %v", s)
		}
	}
}

func TestPromise_AwaitRespectsContext(t *testing.T) {
	t.Parallel()
	p := NewPromise(func(func(int), func(error)) {})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Await(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if !IsCancellationError(err) {
		t.Fatalf("expected cancellation error")
	}
}

func TestAwait_ForeignThenable(t *testing.T) {
	t.Parallel()

	v, err := Await(context.Background(), &customPromise{value: "ok"})
	if err != nil || v != "ok" {
		t.Fatalf("expected ok, got v=%v err=%v", v, err)
	}
}

func TestAwait_SettlesOnlyOnce(t *testing.T) {
	t.Parallel()
	twice := bareThenable{then: func(onSettled func(any, error)) {
		onSettled(1, nil)
		onSettled(2, nil)
	}}

	v, err := Await(context.Background(), twice)
	if err != nil || v != 1 {
		t.Fatalf("expected 1, got v=%v err=%v", v, err)
	}
}

func TestAwait_NilThenable(t *testing.T) {
	t.Parallel()

	var p *Promise[int]
	_, err := Await(context.Background(), p)
	if !errors.Is(err, ErrNilThenable) {
		t.Fatalf("expected ErrNilThenable, got %v", err)
	}
}
