package shape

import (
	"time"

	"github.com/google/uuid"
)

// Result is the settlement of a promise or of a resolved hook.
type Result[T any] struct {
	id        uuid.UUID
	settledAt time.Time
	value     T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		settledAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		settledAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		settledAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports a settled, non-successful result (cancellation included).
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && (r.err != nil || r.isCancel)
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

// IsEmpty reports the zero Result, which is never produced by a settlement.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) SettledAt() time.Time {
	return r.settledAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Unwrap returns the value and error in the usual Go order.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}
