package domain

import "github.com/google/uuid"

// PostFilter selects the posts of one feed. Nil fields are not applied.
// Results are always ordered newest first.
type PostFilter struct {
	GroupSlug *string
	AuthorID  *uuid.UUID
	Limit     int
	Offset    int
}

// ByGroup returns a filter for the posts of a single group.
func ByGroup(slug string) PostFilter {
	return PostFilter{GroupSlug: &slug}
}

// ByAuthor returns a filter for the posts of a single author.
func ByAuthor(id uuid.UUID) PostFilter {
	return PostFilter{AuthorID: &id}
}

// PostUpdateParams holds the mutable fields of a post. Group nil clears the group.
type PostUpdateParams struct {
	Text  string
	Group *string
}
