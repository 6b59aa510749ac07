package structs

import (
	"testing"
)

// TestValidatePost verifies a complete post passes validation
func TestValidatePost(t *testing.T) {
	post := &Post{
		AuthorType: AuthorTypeCharacter,
		AuthorID:   "abc123",
		Type:       PostTypeImage,
		MediaURL:   "https://picsum.photos/seed/x/800/1000",
		Hashtags:   []string{"travel", "food"},
		LikeCount:  10,
	}
	if err := Validate(post); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

// TestValidatePostMissingMediaURL verifies required fields are enforced
func TestValidatePostMissingMediaURL(t *testing.T) {
	post := &Post{
		AuthorType: AuthorTypeCharacter,
		AuthorID:   "abc123",
		Type:       PostTypeImage,
	}
	if err := Validate(post); err == nil {
		t.Error("Validate() without media_url should return error")
	}
}

// TestValidatePostBadAuthorType verifies the author_type enum
func TestValidatePostBadAuthorType(t *testing.T) {
	post := &Post{
		AuthorType: "bot",
		AuthorID:   "abc123",
		Type:       PostTypeImage,
		MediaURL:   "https://example.com/x.jpg",
	}
	if err := Validate(post); err == nil {
		t.Error("Validate() with author_type=bot should return error")
	}
}

// TestValidatePostNegativeCount verifies counters cannot go below zero
func TestValidatePostNegativeCount(t *testing.T) {
	post := &Post{
		AuthorType: AuthorTypeCharacter,
		AuthorID:   "abc123",
		Type:       PostTypeImage,
		MediaURL:   "https://example.com/x.jpg",
		LikeCount:  -1,
	}
	if err := Validate(post); err == nil {
		t.Error("Validate() with negative like_count should return error")
	}
}

// TestValidateCharacterMissingUsername verifies required fields on characters
func TestValidateCharacterMissingUsername(t *testing.T) {
	ch := &Character{Name: "Ava Wilde"}
	if err := Validate(ch); err == nil {
		t.Error("Validate() without username should return error")
	}
}

// TestValidateNotificationBadType verifies the notification type enum
func TestValidateNotificationBadType(t *testing.T) {
	n := &Notification{
		UserID:    "u1",
		Type:      "poke",
		ActorID:   "c1",
		ActorType: AuthorTypeCharacter,
	}
	if err := Validate(n); err == nil {
		t.Error("Validate() with type=poke should return error")
	}
}

// TestValidateConversationEmpty verifies participant lists cannot be empty
func TestValidateConversationEmpty(t *testing.T) {
	conv := &Conversation{ParticipantIDs: []string{}}
	if err := Validate(conv); err == nil {
		t.Error("Validate() with no participants should return error")
	}
}

// TestCharacterSummary verifies the hydration projection
func TestCharacterSummary(t *testing.T) {
	ch := &Character{
		Username:  "ava123",
		Name:      "Ava Wilde",
		AvatarURL: "https://i.pravatar.cc/150?img=7",
	}
	s := ch.Summary()
	if s.Username != "ava123" || s.Name != "Ava Wilde" || s.AvatarURL != ch.AvatarURL {
		t.Errorf("Summary() = %+v", s)
	}
}
