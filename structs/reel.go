package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reel is a short vertical video. Declared for schema completeness; no
// endpoint creates or serves reels yet.
type Reel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AuthorType   string             `bson:"author_type" json:"author_type" validate:"required,oneof=character user"`
	AuthorID     string             `bson:"author_id" json:"author_id" validate:"required"`
	MediaURL     string             `bson:"media_url" json:"media_url" validate:"required"`
	Caption      string             `bson:"caption,omitempty" json:"caption,omitempty"`
	LikeCount    int                `bson:"like_count" json:"like_count" validate:"min=0"`
	CommentCount int                `bson:"comment_count" json:"comment_count" validate:"min=0"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
