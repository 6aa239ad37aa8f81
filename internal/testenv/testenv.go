// Package testenv provisions an isolated MongoDB database per test.
package testenv

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/ib-77/gridshape/internal/mongodb"
	"github.com/ib-77/gridshape/internal/settings"
)

// ProbeTimeout is how long Require waits for a server before skipping.
const ProbeTimeout = 2 * time.Second

type Env struct {
	Client *mongo.Client
	DB     *mongo.Database
	Config settings.MongoConfig

	log *zap.Logger
}

// Open connects to the server described by cfg and selects a database with
// a random name derived from cfg.Database.
func Open(ctx context.Context, cfg settings.MongoConfig, timeout time.Duration, log *zap.Logger) (*Env, error) {
	if log == nil {
		log = zap.NewNop()
	}

	unique := cfg.Unique()
	client, err := mongodb.Connect(ctx, unique, timeout, log)
	if err != nil {
		return nil, err
	}

	return &Env{
		Client: client,
		DB:     client.Database(unique.Database),
		Config: unique,
		log:    log,
	}, nil
}

// Bucket opens a GridFS bucket on the test database.
func (e *Env) Bucket(opts ...*options.BucketOptions) (*gridfs.Bucket, error) {
	b, err := gridfs.NewBucket(e.DB, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket: %w", err)
	}
	return b, nil
}

// Close drops the test database and disconnects.
func (e *Env) Close(ctx context.Context) error {
	dropErr := e.DB.Drop(ctx)
	if dropErr != nil {
		e.log.Warn("Failed to drop test database", zap.String("database", e.Config.Database), zap.Error(dropErr))
	}

	if err := e.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect: %w", err)
	}
	if dropErr != nil {
		return fmt.Errorf("failed to drop %s: %w", e.Config.Database, dropErr)
	}
	return nil
}

// Require opens an Env for t, skipping the test when no server answers
// within ProbeTimeout. The database is dropped on cleanup.
func Require(t testing.TB, cfg settings.MongoConfig) *Env {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), ProbeTimeout)
	defer cancel()

	env, err := Open(ctx, cfg, ProbeTimeout, nil)
	if err != nil {
		t.Skipf("mongo not available at %s: %v", cfg.URL(), err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := env.Close(ctx); err != nil {
			t.Logf("testenv close: %v", err)
		}
	})

	return env
}
