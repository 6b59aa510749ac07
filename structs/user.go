package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the single human user of the app.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username  string             `bson:"username" json:"username" validate:"required"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
