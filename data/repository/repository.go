// Package repository provides MongoDB-backed persistence for the feed
// collections. Every Create validates the record against its schema, stamps
// created_at/updated_at (UTC) and returns the stored record with its
// generated id.
package repository

import (
	"errors"
)

var (
	// ErrInvalidID reports an identifier that is not a valid object id.
	ErrInvalidID = errors.New("invalid id")
	// ErrNotFound reports a lookup that matched no document.
	ErrNotFound = errors.New("not found")
)
