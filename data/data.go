// Package data manages the MongoDB connection and exposes the collection
// repositories. A single client is shared across request goroutines; the
// store serializes per-document writes, so no in-process coordination is
// needed.
package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aigram-labs/aigram/config"
	"github.com/aigram-labs/aigram/data/repository"
	"github.com/aigram-labs/aigram/logging/logger"
)

// ErrNotConfigured reports that no database connection is available.
var ErrNotConfigured = errors.New("database not configured")

// Data encapsulates all data layer dependencies.
type Data struct {
	client *mongo.Client
	db     *mongo.Database

	UserRepo      repository.UserRepository
	CharacterRepo repository.CharacterRepository
	PostRepo      repository.PostRepository
	StoryRepo     repository.StoryRepository
}

// New creates a new Data instance with a MongoDB connection. An absent URI
// is reported as ErrNotConfigured so the caller can run without a store.
func New(cfg *config.Data, log *logger.Logger) (*Data, error) {
	if cfg == nil || cfg.MongoDB == nil || cfg.MongoDB.URI == "" {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info(ctx, "Connected to MongoDB successfully", "database", cfg.Database)

	db := client.Database(cfg.Database)

	return &Data{
		client:        client,
		db:            db,
		UserRepo:      repository.NewUserRepository(db, log),
		CharacterRepo: repository.NewCharacterRepository(db, log),
		PostRepo:      repository.NewPostRepository(db, log),
		StoryRepo:     repository.NewStoryRepository(db, log),
	}, nil
}

// Close closes the MongoDB connection.
func (d *Data) Close() error {
	if d == nil || d.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

// DB returns the MongoDB database instance.
func (d *Data) DB() *mongo.Database {
	if d == nil {
		return nil
	}
	return d.db
}

// Name returns the logical database name.
func (d *Data) Name() string {
	if d == nil || d.db == nil {
		return ""
	}
	return d.db.Name()
}

// Health verifies the connection is alive.
func (d *Data) Health(ctx context.Context) error {
	if d == nil || d.client == nil {
		return ErrNotConfigured
	}
	if err := d.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb health check failed: %w", err)
	}
	return nil
}

// ListCollections returns the collection names of the database.
func (d *Data) ListCollections(ctx context.Context) ([]string, error) {
	if d == nil || d.db == nil {
		return nil, ErrNotConfigured
	}
	names, err := d.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}
