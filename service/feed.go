package service

import (
	"context"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/structs"
)

// FeedService serves the hydrated feed and story timelines.
type FeedService struct {
	data   *data.Data
	logger *logger.Logger
}

// NewFeedService creates a new feed service.
func NewFeedService(d *data.Data, log *logger.Logger) *FeedService {
	return &FeedService{
		data:   d,
		logger: log,
	}
}

// FeedItem is a post with its best-effort author projection attached. Items
// whose author_id matches no character carry no author field at all.
type FeedItem struct {
	*structs.Post
	Author *structs.AuthorSummary `json:"author,omitempty"`
}

// StoryItem is a story with its best-effort author projection attached.
type StoryItem struct {
	*structs.Story
	Author *structs.AuthorSummary `json:"author,omitempty"`
}

// Feed returns up to limit posts, newest first, hydrated with author
// summaries. The id-to-character map is rebuilt from a full collection scan
// on every call; nothing is cached.
func (s *FeedService) Feed(ctx context.Context, limit int64) ([]*FeedItem, error) {
	if s.data == nil {
		return nil, data.ErrNotConfigured
	}

	posts, err := s.data.PostRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	characters, err := s.data.CharacterRepo.MapByID(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*FeedItem, 0, len(posts))
	for _, p := range posts {
		item := &FeedItem{Post: p}
		if c, ok := characters[p.AuthorID]; ok {
			item.Author = c.Summary()
		}
		items = append(items, item)
	}

	return items, nil
}

// Stories returns up to limit stories, newest first, hydrated the same way
// as the feed.
func (s *FeedService) Stories(ctx context.Context, limit int64) ([]*StoryItem, error) {
	if s.data == nil {
		return nil, data.ErrNotConfigured
	}

	stories, err := s.data.StoryRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	characters, err := s.data.CharacterRepo.MapByID(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*StoryItem, 0, len(stories))
	for _, st := range stories {
		item := &StoryItem{Story: st}
		if c, ok := characters[st.AuthorID]; ok {
			item.Author = c.Summary()
		}
		items = append(items, item)
	}

	return items, nil
}
