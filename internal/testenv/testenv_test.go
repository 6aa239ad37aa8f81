package testenv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/gridshape/internal/settings"
)

func TestOpen_Unreachable(t *testing.T) {
	cfg := settings.MongoConfig{Host: "127.0.0.1", Port: 1, Database: "grid_storage"}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	env, err := Open(ctx, cfg, 200*time.Millisecond, nil)
	assert.Error(t, err)
	assert.Nil(t, env)
}

func TestRequire_UniqueDatabase(t *testing.T) {
	cfg, err := settings.Load()
	require.NoError(t, err)

	env := Require(t, cfg.Mongo)

	assert.NotEqual(t, cfg.Mongo.Database, env.Config.Database)
	assert.Equal(t, env.Config.Database, env.DB.Name())

	b, err := env.Bucket()
	require.NoError(t, err)
	assert.NotNil(t, b)
}
