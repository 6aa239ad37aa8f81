package shape

import "errors"

var (
	ErrNilThenable = errors.New("nil thenable")
	ErrRejected    = errors.New("promise rejected")
)
