package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conversation is a DM conversation. Declared for schema completeness;
// unused by any endpoint.
type Conversation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ParticipantIDs []string           `bson:"participant_ids" json:"participant_ids" validate:"required,min=1"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// Message is a message inside a conversation. Declared for schema
// completeness; unused by any endpoint.
type Message struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ConversationID string             `bson:"conversation_id" json:"conversation_id" validate:"required"`
	AuthorType     string             `bson:"author_type" json:"author_type" validate:"required,oneof=character user"`
	AuthorID       string             `bson:"author_id" json:"author_id" validate:"required"`
	Text           string             `bson:"text,omitempty" json:"text,omitempty"`
	MediaURL       string             `bson:"media_url,omitempty" json:"media_url,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
