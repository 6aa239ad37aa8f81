package bucket

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ib-77/gridshape/internal/settings"
	"github.com/ib-77/gridshape/internal/testenv"
	"github.com/ib-77/gridshape/pkg/shape"
	"github.com/ib-77/gridshape/pkg/shape/hook"
)

func TestResolve_Database(t *testing.T) {
	cfg, err := settings.Load()
	require.NoError(t, err)
	env := testenv.Require(t, cfg.Mongo)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	h, err := Resolve(ctx, shape.Resolved(env.DB), options.GridFSBucket().SetName("uploads"))
	require.NoError(t, err)
	assert.True(t, shape.IsHandleOrPromise(h))
	assert.Equal(t, shape.KindStreamHandle, shape.Classify(h))

	files, chunks := CollectionNames(h)
	assert.Equal(t, "uploads.files", files)
	assert.Equal(t, "uploads.chunks", chunks)

	b, ok := h.(*gridfs.Bucket)
	require.True(t, ok)

	name, err := hook.FromHook(hook.GenerateFilename).Resolve(ctx, nil, nil).Unwrap()
	require.NoError(t, err)

	id, err := b.UploadFromStream(name, bytes.NewReader([]byte("hello gridfs")))
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = b.DownloadToStreamByName(name, &out)
	require.NoError(t, err)
	assert.Equal(t, "hello gridfs", out.String())

	require.NoError(t, b.DeleteContext(ctx, id))
}

func TestEnvBucket_IsHandle(t *testing.T) {
	cfg, err := settings.Load()
	require.NoError(t, err)
	env := testenv.Require(t, cfg.Mongo)

	b, err := env.Bucket()
	require.NoError(t, err)
	assert.True(t, shape.IsHandleOrPromise(b))
	assert.False(t, shape.IsPromise(b))

	got, err := Resolve(context.Background(), b)
	require.NoError(t, err)
	assert.Same(t, b, got)
}
