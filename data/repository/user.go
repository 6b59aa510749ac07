package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/structs"
)

// UserRepository defines the interface for the singleton human user. The
// collection exists for schema completeness; no current flow references it.
type UserRepository interface {
	Create(ctx context.Context, user *structs.User) (*structs.User, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *mongo.Database, log *logger.Logger) UserRepository {
	return &userRepository{
		collection: db.Collection("user"),
		logger:     log,
	}
}

// Create validates and inserts a user.
func (r *userRepository) Create(ctx context.Context, user *structs.User) (*structs.User, error) {
	if err := structs.Validate(user); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		r.logger.Error(ctx, "failed to create user", "username", user.Username, "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Count returns the total number of users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error(ctx, "failed to count users", "error", err)
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
