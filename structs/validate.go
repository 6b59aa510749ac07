package structs

import (
	"github.com/go-playground/validator/v10"
)

// AuthorType values for posts, stories, reels, comments and messages.
const (
	AuthorTypeCharacter = "character"
	AuthorTypeUser      = "user"
)

var validate = validator.New()

// Validate checks a record against its schema tags. It rejects missing
// required fields, enum values outside their allowed set, and negative
// counters. No cross-field or cross-collection checks are performed.
func Validate(record any) error {
	return validate.Struct(record)
}
