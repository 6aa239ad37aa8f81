package shape

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports nil and typed nil values of nillable kinds.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan,
		reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func isFunc(i any) bool {
	return !IsNil(i) && reflect.TypeOf(i).Kind() == reflect.Func
}
