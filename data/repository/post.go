package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/structs"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *structs.Post) (*structs.Post, error)
	// List retrieves up to limit posts ordered by creation time descending.
	List(ctx context.Context, limit int64) ([]*structs.Post, error)
	Count(ctx context.Context) (int64, error)
	// IncrementLikes atomically increments like_count by one and refreshes
	// updated_at, returning the updated post. It returns ErrInvalidID for a
	// malformed id and ErrNotFound when no document matched.
	IncrementLikes(ctx context.Context, id string) (*structs.Post, error)
}

type postRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewPostRepository creates a new post repository instance.
func NewPostRepository(db *mongo.Database, log *logger.Logger) PostRepository {
	return &postRepository{
		collection: db.Collection("post"),
		logger:     log,
	}
}

// Create validates and inserts a post.
func (r *postRepository) Create(ctx context.Context, post *structs.Post) (*structs.Post, error) {
	if err := structs.Validate(post); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}

	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now().UTC()
	post.UpdatedAt = post.CreatedAt

	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		r.logger.Error(ctx, "failed to create post", "author_id", post.AuthorID, "error", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// List retrieves the newest posts first.
func (r *postRepository) List(ctx context.Context, limit int64) ([]*structs.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error(ctx, "failed to list posts", "error", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*structs.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	return posts, nil
}

// Count returns the total number of posts.
func (r *postRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error(ctx, "failed to count posts", "error", err)
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// IncrementLikes bumps like_count on the matched post.
func (r *postRepository) IncrementLikes(ctx context.Context, id string) (*structs.Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	update := bson.M{
		"$inc": bson.M{"like_count": 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		r.logger.Error(ctx, "failed to like post", "id", id, "error", err)
		return nil, fmt.Errorf("failed to like post: %w", err)
	}

	var post structs.Post
	if err := result.Decode(&post); err != nil {
		return nil, fmt.Errorf("failed to decode updated post: %w", err)
	}

	r.logger.Info(ctx, "post liked", "id", id, "like_count", post.LikeCount)
	return &post, nil
}
