package hook

import "errors"

var (
	ErrGeneratorExhausted = errors.New("generator ended unexpectedly")
	ErrUnsupportedSource  = errors.New("unsupported source")
	ErrEmptySource        = errors.New("empty source")
)
