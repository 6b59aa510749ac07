// Package service contains the business logic for the feed backend: the
// bootstrap seeder, the hydration join for feed and stories, and the like
// mutation.
package service

import (
	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/logging/logger"
)

// Service aggregates all business logic services.
type Service struct {
	Bootstrap *BootstrapService
	Feed      *FeedService
	Character *CharacterService
	Post      *PostService
}

// NewService creates a new service instance with all sub-services
// initialized. The data layer may be nil when no store is configured; every
// sub-service treats that as a hard precondition failure.
func NewService(d *data.Data, log *logger.Logger) *Service {
	return &Service{
		Bootstrap: NewBootstrapService(d, log),
		Feed:      NewFeedService(d, log),
		Character: NewCharacterService(d, log),
		Post:      NewPostService(d, log),
	}
}
