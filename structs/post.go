package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post media types.
const (
	PostTypeImage = "image"
	PostTypeVideo = "video"
)

// Post is a feed post created by a character or the user. AuthorID is an
// unchecked reference to a character or user document.
type Post struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AuthorType   string             `bson:"author_type" json:"author_type" validate:"required,oneof=character user"`
	AuthorID     string             `bson:"author_id" json:"author_id" validate:"required"`
	Type         string             `bson:"type" json:"type" validate:"required,oneof=image video"`
	MediaURL     string             `bson:"media_url" json:"media_url" validate:"required"`
	Caption      string             `bson:"caption,omitempty" json:"caption,omitempty"`
	Hashtags     []string           `bson:"hashtags" json:"hashtags"`
	LikeCount    int                `bson:"like_count" json:"like_count" validate:"min=0"`
	CommentCount int                `bson:"comment_count" json:"comment_count" validate:"min=0"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
