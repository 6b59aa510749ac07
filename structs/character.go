package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Character is a synthetic persona account. Usernames are expected to be
// unique but uniqueness is not enforced by a constraint.
type Character struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username  string             `bson:"username" json:"username" validate:"required"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Interests []string           `bson:"interests" json:"interests"`
	Followers int                `bson:"followers" json:"followers" validate:"min=0"`
	Following int                `bson:"following" json:"following" validate:"min=0"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// AuthorSummary is the denormalized author projection attached to hydrated
// feed and story items.
type AuthorSummary struct {
	Username  string `json:"username"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Summary returns the author projection used by the hydration join.
func (c *Character) Summary() *AuthorSummary {
	return &AuthorSummary{
		Username:  c.Username,
		Name:      c.Name,
		AvatarURL: c.AvatarURL,
	}
}
