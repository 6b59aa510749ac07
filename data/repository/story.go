package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/structs"
)

// StoryRepository defines the interface for story data operations.
type StoryRepository interface {
	Create(ctx context.Context, story *structs.Story) (*structs.Story, error)
	// List retrieves up to limit stories ordered by creation time descending.
	List(ctx context.Context, limit int64) ([]*structs.Story, error)
	Count(ctx context.Context) (int64, error)
}

type storyRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewStoryRepository creates a new story repository instance.
func NewStoryRepository(db *mongo.Database, log *logger.Logger) StoryRepository {
	return &storyRepository{
		collection: db.Collection("story"),
		logger:     log,
	}
}

// Create validates and inserts a story.
func (r *storyRepository) Create(ctx context.Context, story *structs.Story) (*structs.Story, error) {
	if err := structs.Validate(story); err != nil {
		return nil, fmt.Errorf("invalid story: %w", err)
	}

	story.ID = primitive.NewObjectID()
	story.CreatedAt = time.Now().UTC()
	story.UpdatedAt = story.CreatedAt

	if _, err := r.collection.InsertOne(ctx, story); err != nil {
		r.logger.Error(ctx, "failed to create story", "author_id", story.AuthorID, "error", err)
		return nil, fmt.Errorf("failed to create story: %w", err)
	}

	return story, nil
}

// List retrieves the newest stories first.
func (r *storyRepository) List(ctx context.Context, limit int64) ([]*structs.Story, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error(ctx, "failed to list stories", "error", err)
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	defer cursor.Close(ctx)

	var stories []*structs.Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("failed to decode stories: %w", err)
	}

	return stories, nil
}

// Count returns the total number of stories.
func (r *storyRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error(ctx, "failed to count stories", "error", err)
		return 0, fmt.Errorf("failed to count stories: %w", err)
	}
	return count, nil
}
