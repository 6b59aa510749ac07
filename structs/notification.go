package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types.
const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
	NotificationTypeFollow  = "follow"
)

// Notification is a basic engagement notification. Declared for schema
// completeness; notifications are modeled but never produced.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID    string             `bson:"user_id" json:"user_id" validate:"required"`
	Type      string             `bson:"type" json:"type" validate:"required,oneof=like comment follow"`
	ActorID   string             `bson:"actor_id" json:"actor_id" validate:"required"`
	ActorType string             `bson:"actor_type" json:"actor_type" validate:"required,oneof=character user"`
	PostID    string             `bson:"post_id,omitempty" json:"post_id,omitempty"`
	Message   string             `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
