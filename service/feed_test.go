package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/structs"
)

func seedFeedFixture(t *testing.T) (*data.Data, *structs.Character) {
	t.Helper()
	d, chars, posts, stories := newMemData()
	ctx := context.Background()

	ch, err := chars.Create(ctx, &structs.Character{
		Username:  "ava123",
		Name:      "Ava Wilde",
		AvatarURL: "https://i.pravatar.cc/150?img=7",
	})
	if err != nil {
		t.Fatalf("Create(character) error = %v", err)
	}

	for i := 0; i < 3; i++ {
		_, err := posts.Create(ctx, &structs.Post{
			AuthorType: structs.AuthorTypeCharacter,
			AuthorID:   ch.ID.Hex(),
			Type:       structs.PostTypeImage,
			MediaURL:   "https://picsum.photos/seed/a/800/1000",
		})
		if err != nil {
			t.Fatalf("Create(post) error = %v", err)
		}
	}
	// Post with a dangling author reference.
	if _, err := posts.Create(ctx, &structs.Post{
		AuthorType: structs.AuthorTypeCharacter,
		AuthorID:   "ffffffffffffffffffffffff",
		Type:       structs.PostTypeImage,
		MediaURL:   "https://picsum.photos/seed/b/800/1000",
	}); err != nil {
		t.Fatalf("Create(post) error = %v", err)
	}

	if _, err := stories.Create(ctx, &structs.Story{
		AuthorType: structs.AuthorTypeCharacter,
		AuthorID:   ch.ID.Hex(),
		MediaURL:   "https://picsum.photos/seed/story-a/720/1280",
	}); err != nil {
		t.Fatalf("Create(story) error = %v", err)
	}

	return d, ch
}

// TestFeedHydration verifies matching posts carry the author summary and
// dangling references omit it
func TestFeedHydration(t *testing.T) {
	d, ch := seedFeedFixture(t)
	svc := NewFeedService(d, testLogger())

	items, err := svc.Feed(context.Background(), 25)
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("items = %d, want 4", len(items))
	}

	var hydrated, bare int
	for _, item := range items {
		if item.AuthorID == ch.ID.Hex() {
			if item.Author == nil {
				t.Fatal("matching post missing author")
			}
			if item.Author.Username != ch.Username {
				t.Errorf("author.username = %q, want %q", item.Author.Username, ch.Username)
			}
			hydrated++
		} else {
			if item.Author != nil {
				t.Error("dangling post should omit author")
			}
			bare++
		}
	}
	if hydrated != 3 || bare != 1 {
		t.Errorf("hydrated = %d, bare = %d, want 3/1", hydrated, bare)
	}
}

// TestFeedOrdering verifies posts come back newest first
func TestFeedOrdering(t *testing.T) {
	d, _ := seedFeedFixture(t)
	svc := NewFeedService(d, testLogger())

	items, err := svc.Feed(context.Background(), 25)
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	for i := 1; i < len(items); i++ {
		if items[i].CreatedAt.After(items[i-1].CreatedAt) {
			t.Errorf("items[%d] newer than items[%d]", i, i-1)
		}
	}
}

// TestFeedLimit verifies the limit is applied
func TestFeedLimit(t *testing.T) {
	d, _ := seedFeedFixture(t)
	svc := NewFeedService(d, testLogger())

	items, err := svc.Feed(context.Background(), 2)
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if len(items) != 2 {
		t.Errorf("items = %d, want 2", len(items))
	}
}

// TestFeedItemJSON verifies the author key is absent, not null, for
// unhydrated items
func TestFeedItemJSON(t *testing.T) {
	d, _ := seedFeedFixture(t)
	svc := NewFeedService(d, testLogger())

	items, err := svc.Feed(context.Background(), 25)
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		hasAuthorKey := strings.Contains(string(raw), `"author"`)
		if item.Author == nil && hasAuthorKey {
			t.Errorf("unhydrated item serialized an author key: %s", raw)
		}
		if item.Author != nil && !hasAuthorKey {
			t.Errorf("hydrated item lost its author key: %s", raw)
		}
	}
}

// TestStoriesHydration verifies the same join is applied to stories
func TestStoriesHydration(t *testing.T) {
	d, ch := seedFeedFixture(t)
	svc := NewFeedService(d, testLogger())

	items, err := svc.Stories(context.Background(), 20)
	if err != nil {
		t.Fatalf("Stories() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Author == nil || items[0].Author.Username != ch.Username {
		t.Errorf("story author = %+v, want username %q", items[0].Author, ch.Username)
	}
}

// TestFeedNotConfigured verifies the nil data precondition
func TestFeedNotConfigured(t *testing.T) {
	svc := NewFeedService(nil, testLogger())
	if _, err := svc.Feed(context.Background(), 25); !errors.Is(err, data.ErrNotConfigured) {
		t.Errorf("Feed() error = %v, want ErrNotConfigured", err)
	}
	if _, err := svc.Stories(context.Background(), 20); !errors.Is(err, data.ErrNotConfigured) {
		t.Errorf("Stories() error = %v, want ErrNotConfigured", err)
	}
}
