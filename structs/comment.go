package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a comment on a post. Declared for schema completeness; unused
// by any endpoint.
type Comment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PostID     string             `bson:"post_id" json:"post_id" validate:"required"`
	AuthorType string             `bson:"author_type" json:"author_type" validate:"required,oneof=character user"`
	AuthorID   string             `bson:"author_id" json:"author_id" validate:"required"`
	Text       string             `bson:"text" json:"text" validate:"required"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
