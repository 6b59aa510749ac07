package service

import (
	"context"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/structs"
)

// CharacterService serves character listings.
type CharacterService struct {
	data   *data.Data
	logger *logger.Logger
}

// NewCharacterService creates a new character service.
func NewCharacterService(d *data.Data, log *logger.Logger) *CharacterService {
	return &CharacterService{
		data:   d,
		logger: log,
	}
}

// List returns up to limit characters, no hydration. An empty store yields
// an empty slice so the endpoint serializes as a JSON array.
func (s *CharacterService) List(ctx context.Context, limit int64) ([]*structs.Character, error) {
	if s.data == nil {
		return nil, data.ErrNotConfigured
	}
	characters, err := s.data.CharacterRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	if characters == nil {
		characters = []*structs.Character{}
	}
	return characters, nil
}
