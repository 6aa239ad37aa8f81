package bucket

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ib-77/gridshape/pkg/shape"
)

// MaxDepth bounds how many promises Resolve follows before giving up.
const MaxDepth = 8

var _ shape.StreamHandle = (*gridfs.Bucket)(nil)

var (
	ErrNotHandle = errors.New("value is neither a stream handle, a database nor a promise")
	ErrTooDeep   = errors.New("promise chain too deep")
)

// Resolve turns a storage option into an open stream handle.
//
// Stream handles are returned as is, databases get a new GridFS bucket
// built from opts, and promises are awaited and their value resolved again.
func Resolve(ctx context.Context, v any, opts ...*options.BucketOptions) (shape.StreamHandle, error) {
	return resolve(ctx, v, 0, opts)
}

func resolve(ctx context.Context, v any, depth int, opts []*options.BucketOptions) (shape.StreamHandle, error) {
	if depth > MaxDepth {
		return nil, ErrTooDeep
	}

	if db, ok := v.(*mongo.Database); ok && db != nil {
		b, err := gridfs.NewBucket(db, opts...)
		if err != nil {
			return nil, fmt.Errorf("new bucket on %q: %w", db.Name(), err)
		}
		return b, nil
	}

	if !shape.IsHandleOrPromise(v) {
		return nil, fmt.Errorf("%w: %T", ErrNotHandle, v)
	}

	if shape.IsPromise(v) {
		settled, err := shape.Await(ctx, v.(shape.Thenable))
		if err != nil {
			return nil, fmt.Errorf("await handle: %w", err)
		}
		return resolve(ctx, settled, depth+1, opts)
	}

	return v.(shape.StreamHandle), nil
}

// CollectionNames returns the files and chunks collection names of h.
func CollectionNames(h shape.StreamHandle) (files, chunks string) {
	if fc := h.GetFilesCollection(); fc != nil {
		files = fc.Name()
	}
	if cc := h.GetChunksCollection(); cc != nil {
		chunks = cc.Name()
	}
	return files, chunks
}
