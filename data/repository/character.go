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

// CharacterRepository defines the interface for character data operations.
type CharacterRepository interface {
	Create(ctx context.Context, ch *structs.Character) (*structs.Character, error)
	List(ctx context.Context, limit int64) ([]*structs.Character, error)
	Count(ctx context.Context) (int64, error)
	// MapByID scans the whole collection into an id-to-character map for the
	// read-time hydration join. Unbounded; acceptable only because the corpus
	// is small and bounded by the seeding policy.
	MapByID(ctx context.Context) (map[string]*structs.Character, error)
}

type characterRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewCharacterRepository creates a new character repository instance.
func NewCharacterRepository(db *mongo.Database, log *logger.Logger) CharacterRepository {
	return &characterRepository{
		collection: db.Collection("character"),
		logger:     log,
	}
}

// Create validates and inserts a character.
func (r *characterRepository) Create(ctx context.Context, ch *structs.Character) (*structs.Character, error) {
	if err := structs.Validate(ch); err != nil {
		return nil, fmt.Errorf("invalid character: %w", err)
	}

	ch.ID = primitive.NewObjectID()
	ch.CreatedAt = time.Now().UTC()
	ch.UpdatedAt = ch.CreatedAt

	if _, err := r.collection.InsertOne(ctx, ch); err != nil {
		r.logger.Error(ctx, "failed to create character", "username", ch.Username, "error", err)
		return nil, fmt.Errorf("failed to create character: %w", err)
	}

	return ch, nil
}

// List retrieves up to limit characters.
func (r *characterRepository) List(ctx context.Context, limit int64) ([]*structs.Character, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		r.logger.Error(ctx, "failed to list characters", "error", err)
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	defer cursor.Close(ctx)

	var characters []*structs.Character
	if err := cursor.All(ctx, &characters); err != nil {
		return nil, fmt.Errorf("failed to decode characters: %w", err)
	}

	return characters, nil
}

// Count returns the total number of characters.
func (r *characterRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error(ctx, "failed to count characters", "error", err)
		return 0, fmt.Errorf("failed to count characters: %w", err)
	}
	return count, nil
}

// MapByID builds the id-to-character map from a full collection scan.
func (r *characterRepository) MapByID(ctx context.Context) (map[string]*structs.Character, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error(ctx, "failed to scan characters", "error", err)
		return nil, fmt.Errorf("failed to scan characters: %w", err)
	}
	defer cursor.Close(ctx)

	characters := make(map[string]*structs.Character)
	for cursor.Next(ctx) {
		var ch structs.Character
		if err := cursor.Decode(&ch); err != nil {
			return nil, fmt.Errorf("failed to decode character: %w", err)
		}
		characters[ch.ID.Hex()] = &ch
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan characters: %w", err)
	}

	return characters, nil
}
