package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/data/repository"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/structs"
)

// The in-memory repositories mirror the Mongo-backed ones: Create validates
// and stamps ids/timestamps, List on posts and stories is newest-first.

type memCharacterRepo struct {
	items []*structs.Character
	clock *fakeClock
}

func (m *memCharacterRepo) Create(_ context.Context, ch *structs.Character) (*structs.Character, error) {
	if err := structs.Validate(ch); err != nil {
		return nil, err
	}
	ch.ID = primitive.NewObjectID()
	ch.CreatedAt = m.clock.next()
	ch.UpdatedAt = ch.CreatedAt
	m.items = append(m.items, ch)
	return ch, nil
}

func (m *memCharacterRepo) List(_ context.Context, limit int64) ([]*structs.Character, error) {
	n := len(m.items)
	if limit > 0 && int64(n) > limit {
		n = int(limit)
	}
	return m.items[:n], nil
}

func (m *memCharacterRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memCharacterRepo) MapByID(_ context.Context) (map[string]*structs.Character, error) {
	out := make(map[string]*structs.Character, len(m.items))
	for _, ch := range m.items {
		out[ch.ID.Hex()] = ch
	}
	return out, nil
}

type memPostRepo struct {
	items []*structs.Post
	clock *fakeClock
}

func (m *memPostRepo) Create(_ context.Context, post *structs.Post) (*structs.Post, error) {
	if err := structs.Validate(post); err != nil {
		return nil, err
	}
	post.ID = primitive.NewObjectID()
	post.CreatedAt = m.clock.next()
	post.UpdatedAt = post.CreatedAt
	m.items = append(m.items, post)
	return post, nil
}

func (m *memPostRepo) List(_ context.Context, limit int64) ([]*structs.Post, error) {
	var out []*structs.Post
	for i := len(m.items) - 1; i >= 0; i-- {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		out = append(out, m.items[i])
	}
	return out, nil
}

func (m *memPostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memPostRepo) IncrementLikes(_ context.Context, id string) (*structs.Post, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: %s", repository.ErrInvalidID, id)
	}
	for _, post := range m.items {
		if post.ID.Hex() == id {
			post.LikeCount++
			post.UpdatedAt = m.clock.next()
			return post, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memStoryRepo struct {
	items []*structs.Story
	clock *fakeClock
}

func (m *memStoryRepo) Create(_ context.Context, story *structs.Story) (*structs.Story, error) {
	if err := structs.Validate(story); err != nil {
		return nil, err
	}
	story.ID = primitive.NewObjectID()
	story.CreatedAt = m.clock.next()
	story.UpdatedAt = story.CreatedAt
	m.items = append(m.items, story)
	return story, nil
}

func (m *memStoryRepo) List(_ context.Context, limit int64) ([]*structs.Story, error) {
	var out []*structs.Story
	for i := len(m.items) - 1; i >= 0; i-- {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		out = append(out, m.items[i])
	}
	return out, nil
}

func (m *memStoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

// fakeClock hands out strictly increasing timestamps so creation order is
// unambiguous.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) next() time.Time {
	if c.now.IsZero() {
		c.now = time.Now().UTC()
	}
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

// newMemData builds a data layer backed by in-memory repositories.
func newMemData() (*data.Data, *memCharacterRepo, *memPostRepo, *memStoryRepo) {
	clock := &fakeClock{}
	chars := &memCharacterRepo{clock: clock}
	posts := &memPostRepo{clock: clock}
	stories := &memStoryRepo{clock: clock}
	d := &data.Data{
		CharacterRepo: chars,
		PostRepo:      posts,
		StoryRepo:     stories,
	}
	return d, chars, posts, stories
}

func testLogger() *logger.Logger {
	return logger.StdLogger()
}
