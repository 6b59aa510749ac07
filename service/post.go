package service

import (
	"context"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/structs"
)

// PostService handles post mutations.
type PostService struct {
	data   *data.Data
	logger *logger.Logger
}

// NewPostService creates a new post service.
func NewPostService(d *data.Data, log *logger.Logger) *PostService {
	return &PostService{
		data:   d,
		logger: log,
	}
}

// Like increments the like count of a post by one and returns the updated
// post. Repository sentinels pass through: repository.ErrInvalidID for a
// malformed id, repository.ErrNotFound when no post matched.
func (s *PostService) Like(ctx context.Context, id string) (*structs.Post, error) {
	if s.data == nil {
		return nil, data.ErrNotConfigured
	}
	return s.data.PostRepo.IncrementLikes(ctx, id)
}
