package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/structs"
)

// TestSeedFromEmpty verifies seeding an empty store creates exactly the
// requested number of characters with the expected post fan-out
func TestSeedFromEmpty(t *testing.T) {
	d, chars, posts, stories := newMemData()
	svc := NewBootstrapService(d, testLogger())

	result, err := svc.Seed(context.Background(), BootstrapOptions{CharacterCount: 3, PostsPerCharacter: 1})
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if result.Characters != 3 {
		t.Errorf("characters = %d, want 3", result.Characters)
	}
	if result.Posts != 3 {
		t.Errorf("posts = %d, want 3", result.Posts)
	}
	if result.Stories < 0 || result.Stories > 3 {
		t.Errorf("stories = %d, want within [0,3]", result.Stories)
	}

	if len(chars.items) != 3 {
		t.Errorf("stored characters = %d, want 3", len(chars.items))
	}
	if len(posts.items) != 3 {
		t.Errorf("stored posts = %d, want 3", len(posts.items))
	}
	if int64(len(stories.items)) != result.Stories {
		t.Errorf("stored stories = %d, result says %d", len(stories.items), result.Stories)
	}
}

// TestSeedFanOut verifies posts_per_character multiplies out
func TestSeedFanOut(t *testing.T) {
	d, _, posts, _ := newMemData()
	svc := NewBootstrapService(d, testLogger())

	result, err := svc.Seed(context.Background(), BootstrapOptions{CharacterCount: 4, PostsPerCharacter: 2})
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if result.Posts != 8 || len(posts.items) != 8 {
		t.Errorf("posts = %d (stored %d), want 8", result.Posts, len(posts.items))
	}
}

// TestSeedThreshold verifies a store at the seeded threshold is left alone
// and live counts are returned
func TestSeedThreshold(t *testing.T) {
	d, chars, posts, _ := newMemData()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := chars.Create(ctx, &structs.Character{Username: "u", Name: "n"}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	svc := NewBootstrapService(d, testLogger())
	result, err := svc.Seed(ctx, BootstrapOptions{})
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if result.Characters != 5 {
		t.Errorf("characters = %d, want 5", result.Characters)
	}
	if result.Posts != 0 {
		t.Errorf("posts = %d, want 0", result.Posts)
	}
	if len(chars.items) != 5 {
		t.Errorf("stored characters = %d, want 5 (nothing created)", len(chars.items))
	}
	if len(posts.items) != 0 {
		t.Errorf("stored posts = %d, want 0", len(posts.items))
	}
}

// TestSeedDefaults verifies zero options fall back to the defaults
func TestSeedDefaults(t *testing.T) {
	d, chars, posts, _ := newMemData()
	svc := NewBootstrapService(d, testLogger())

	result, err := svc.Seed(context.Background(), BootstrapOptions{})
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if result.Characters != DefaultCharacterCount {
		t.Errorf("characters = %d, want %d", result.Characters, DefaultCharacterCount)
	}
	if len(posts.items) != len(chars.items)*DefaultPostsPerCharacter {
		t.Errorf("posts = %d, want %d", len(posts.items), len(chars.items)*DefaultPostsPerCharacter)
	}
}

// TestSeedRecordShape verifies the generated records satisfy the schema and
// reference stored character ids
func TestSeedRecordShape(t *testing.T) {
	d, chars, posts, stories := newMemData()
	svc := NewBootstrapService(d, testLogger())

	if _, err := svc.Seed(context.Background(), BootstrapOptions{CharacterCount: 6, PostsPerCharacter: 1}); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	ids := make(map[string]bool)
	for _, ch := range chars.items {
		ids[ch.ID.Hex()] = true
		if ch.Username != strings.ToLower(ch.Username) {
			t.Errorf("username %q not lower-cased", ch.Username)
		}
		if len(ch.Interests) < 2 || len(ch.Interests) > 4 {
			t.Errorf("interests = %d, want 2..4", len(ch.Interests))
		}
		if ch.Followers < 100 || ch.Followers > 9000 {
			t.Errorf("followers = %d, want within [100,9000]", ch.Followers)
		}
		if ch.Following < 50 || ch.Following > 900 {
			t.Errorf("following = %d, want within [50,900]", ch.Following)
		}
	}

	for _, p := range posts.items {
		if !ids[p.AuthorID] {
			t.Errorf("post author_id %q references no stored character", p.AuthorID)
		}
		if p.AuthorType != structs.AuthorTypeCharacter {
			t.Errorf("author_type = %q", p.AuthorType)
		}
		if p.LikeCount < 10 || p.LikeCount > 5000 {
			t.Errorf("like_count = %d, want within [10,5000]", p.LikeCount)
		}
		if p.CommentCount < 0 || p.CommentCount > 200 {
			t.Errorf("comment_count = %d, want within [0,200]", p.CommentCount)
		}
		if len(p.Hashtags) != 2 {
			t.Errorf("hashtags = %d, want 2", len(p.Hashtags))
		}
	}

	for _, st := range stories.items {
		if !ids[st.AuthorID] {
			t.Errorf("story author_id %q references no stored character", st.AuthorID)
		}
		if _, err := time.Parse(time.RFC3339, st.ExpiresAt); err != nil {
			t.Errorf("expires_at %q is not RFC 3339: %v", st.ExpiresAt, err)
		}
	}
}

// TestSeedNotConfigured verifies seeding without a store fails up front
func TestSeedNotConfigured(t *testing.T) {
	svc := NewBootstrapService(nil, testLogger())
	_, err := svc.Seed(context.Background(), BootstrapOptions{})
	if !errors.Is(err, data.ErrNotConfigured) {
		t.Errorf("Seed() error = %v, want ErrNotConfigured", err)
	}
}

// TestSampleInterests verifies samples are distinct and within the pool
func TestSampleInterests(t *testing.T) {
	pool := make(map[string]bool, len(interestsPool))
	for _, tag := range interestsPool {
		pool[tag] = true
	}

	for i := 0; i < 50; i++ {
		tags := sampleInterests(3)
		if len(tags) != 3 {
			t.Fatalf("len = %d, want 3", len(tags))
		}
		seen := make(map[string]bool)
		for _, tag := range tags {
			if !pool[tag] {
				t.Errorf("tag %q not in pool", tag)
			}
			if seen[tag] {
				t.Errorf("tag %q sampled twice", tag)
			}
			seen[tag] = true
		}
	}
}
