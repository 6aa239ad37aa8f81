package hook

import (
	"crypto/rand"
	"encoding/hex"
	"mime/multipart"
	"net/http"
)

// FilenameBytes is the number of random bytes behind a generated filename;
// the hex encoding is twice as long.
const FilenameBytes = 8

// Done receives the outcome of a hook.
type Done[T any] func(err error, value T)

// Hook computes a per-file value for an upload. The request and file
// header are passed through for hooks that need them.
type Hook[T any] func(r *http.Request, file *multipart.FileHeader, done Done[T])

// GenerateFilename reports a random lowercase hex name of FilenameBytes bytes.
func GenerateFilename(_ *http.Request, _ *multipart.FileHeader, done Done[string]) {
	buf := make([]byte, FilenameBytes)
	// crypto/rand.Read never returns an error
	_, _ = rand.Read(buf)
	done(nil, hex.EncodeToString(buf))
}

// ConstantValue returns a hook that always reports v as is.
func ConstantValue[T any](v T) Hook[T] {
	return func(_ *http.Request, _ *multipart.FileHeader, done Done[T]) {
		done(nil, v)
	}
}

// Noop reports the zero value of T.
func Noop[T any](_ *http.Request, _ *multipart.FileHeader, done Done[T]) {
	var zero T
	done(nil, zero)
}
