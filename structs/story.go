package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Story is a 24h ephemeral story. ExpiresAt is recorded as an RFC 3339
// timestamp but never enforced; expired stories are neither purged nor
// filtered.
type Story struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AuthorType  string             `bson:"author_type" json:"author_type" validate:"required,oneof=character user"`
	AuthorID    string             `bson:"author_id" json:"author_id" validate:"required"`
	MediaURL    string             `bson:"media_url" json:"media_url" validate:"required"`
	TextOverlay string             `bson:"text_overlay,omitempty" json:"text_overlay,omitempty"`
	ExpiresAt   string             `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
