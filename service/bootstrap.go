package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/structs"
)

// Seeding defaults.
const (
	DefaultCharacterCount    = 24
	DefaultPostsPerCharacter = 2

	// seededThreshold is the character count at or above which the store is
	// treated as already seeded. This is a coarse check, not a true
	// idempotence guarantee: concurrent invocations below the threshold can
	// double-seed.
	seededThreshold = 5
)

var (
	firstNames = []string{
		"Ava", "Liam", "Noah", "Mia", "Zoe", "Kai", "Leo", "Ivy", "Nora", "Mila",
		"Aria", "Ezra", "Finn", "Luna", "Nova", "Zara", "Enzo", "Atlas", "Jade", "Ada",
	}
	lastNames = []string{
		"Wilde", "Rivera", "Okafor", "Nguyen", "Kim", "Singh", "Khan",
		"Garcia", "Silva", "Ivanov", "Sato", "Hernandez", "Smith", "Brown",
	}
	interestsPool = []string{
		"travel", "food", "art", "fitness", "tech", "gaming", "fashion", "music",
		"photo", "nature", "design", "books", "coffee", "pets", "memes",
	}
	bioAdjectives  = []string{"virtual", "creative", "digital", "urban", "cozy"}
	captionPhrases = []string{"Sunset vibes", "Daily snap", "Weekend mood", "New drop", "Behind the scenes"}
	// storyOverlays includes the empty string: some stories carry no overlay.
	storyOverlays = []string{"Out and about", "Work in progress", "New playlist", "Coffee time", ""}
)

// BootstrapService populates the store with a synthetic social graph.
type BootstrapService struct {
	data   *data.Data
	logger *logger.Logger
}

// NewBootstrapService creates a new bootstrap service.
func NewBootstrapService(d *data.Data, log *logger.Logger) *BootstrapService {
	return &BootstrapService{
		data:   d,
		logger: log,
	}
}

// BootstrapOptions controls the size of the seeded graph. Zero values fall
// back to the defaults.
type BootstrapOptions struct {
	CharacterCount    int
	PostsPerCharacter int
}

// BootstrapResult reports how many records a seed invocation produced, or
// the live store counts when seeding short-circuited.
type BootstrapResult struct {
	Characters int64 `json:"characters"`
	Posts      int64 `json:"posts"`
	Stories    int64 `json:"stories"`
}

// Seed populates the store with synthetic characters, posts and stories
// unless the character count is already at the seeded threshold. Inserts are
// individual; any persistence failure propagates to the caller with the
// seed partially applied.
func (s *BootstrapService) Seed(ctx context.Context, opts BootstrapOptions) (*BootstrapResult, error) {
	if s.data == nil {
		return nil, data.ErrNotConfigured
	}
	if opts.CharacterCount <= 0 {
		opts.CharacterCount = DefaultCharacterCount
	}
	if opts.PostsPerCharacter <= 0 {
		opts.PostsPerCharacter = DefaultPostsPerCharacter
	}

	existing, err := s.data.CharacterRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if existing >= seededThreshold {
		posts, err := s.data.PostRepo.Count(ctx)
		if err != nil {
			return nil, err
		}
		stories, err := s.data.StoryRepo.Count(ctx)
		if err != nil {
			return nil, err
		}
		s.logger.Info(ctx, "store already seeded", "characters", existing)
		return &BootstrapResult{Characters: existing, Posts: posts, Stories: stories}, nil
	}

	result := &BootstrapResult{}

	for i := 0; i < opts.CharacterCount; i++ {
		first := firstNames[rand.Intn(len(firstNames))]
		last := lastNames[rand.Intn(len(lastNames))]
		ch := &structs.Character{
			Username:  strings.ToLower(fmt.Sprintf("%s%d", first, 100+rand.Intn(900))),
			Name:      first + " " + last,
			Bio:       fmt.Sprintf("Exploring %s worlds 🌐", bioAdjectives[rand.Intn(len(bioAdjectives))]),
			AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?img=%d", 1+rand.Intn(70)),
			Interests: sampleInterests(2 + rand.Intn(3)),
			Followers: 100 + rand.Intn(8901),
			Following: 50 + rand.Intn(851),
		}
		if _, err := s.data.CharacterRepo.Create(ctx, ch); err != nil {
			return nil, err
		}
		result.Characters++
	}

	// Authors are re-queried rather than kept from the loop above so posts
	// reference the ids the store actually assigned.
	characters, err := s.data.CharacterRepo.List(ctx, int64(opts.CharacterCount))
	if err != nil {
		return nil, err
	}

	for _, c := range characters {
		for j := 0; j < opts.PostsPerCharacter; j++ {
			post := &structs.Post{
				AuthorType:   structs.AuthorTypeCharacter,
				AuthorID:     c.ID.Hex(),
				Type:         structs.PostTypeImage,
				MediaURL:     fmt.Sprintf("https://picsum.photos/seed/%s-%d/800/1000", c.Username, 1+rand.Intn(9999)),
				Caption:      fmt.Sprintf("%s #%s", captionPhrases[rand.Intn(len(captionPhrases))], interestsPool[rand.Intn(len(interestsPool))]),
				Hashtags:     []string{interestsPool[rand.Intn(len(interestsPool))], interestsPool[rand.Intn(len(interestsPool))]},
				LikeCount:    10 + rand.Intn(4991),
				CommentCount: rand.Intn(201),
			}
			if _, err := s.data.PostRepo.Create(ctx, post); err != nil {
				return nil, err
			}
			result.Posts++
		}

		// Roughly half the characters get one story.
		if rand.Intn(2) == 1 {
			story := &structs.Story{
				AuthorType:  structs.AuthorTypeCharacter,
				AuthorID:    c.ID.Hex(),
				MediaURL:    fmt.Sprintf("https://picsum.photos/seed/story-%s/720/1280", c.Username),
				TextOverlay: storyOverlays[rand.Intn(len(storyOverlays))],
				ExpiresAt:   time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
			}
			if _, err := s.data.StoryRepo.Create(ctx, story); err != nil {
				return nil, err
			}
			result.Stories++
		}
	}

	s.logger.Info(ctx, "store seeded",
		"characters", result.Characters,
		"posts", result.Posts,
		"stories", result.Stories,
	)
	return result, nil
}

// sampleInterests picks k distinct tags from the interest pool.
func sampleInterests(k int) []string {
	idx := rand.Perm(len(interestsPool))[:k]
	tags := make([]string, k)
	for i, j := range idx {
		tags[i] = interestsPool[j]
	}
	return tags
}
