package domain

import (
	"time"

	"github.com/google/uuid"
)

// postPreviewLen is how many characters of the text String shows.
const postPreviewLen = 15

// Group is a topic a post may belong to. Groups are created by an administrator.
type Group struct {
	Slug        string
	Title       string
	Description string
}

func (g Group) String() string { return g.Title }

// Post is a single authored text entry, optionally placed in a group.
type Post struct {
	ID             int64
	Text           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AuthorID       uuid.UUID
	AuthorUsername string // joined, read-only
	GroupSlug      *string
	GroupTitle     *string // joined, read-only
}

// String returns the first characters of the text.
func (p Post) String() string {
	r := []rune(p.Text)
	if len(r) > postPreviewLen {
		r = r[:postPreviewLen]
	}
	return string(r)
}

// HasGroup reports whether the post is placed in a group.
func (p Post) HasGroup() bool {
	return p.GroupSlug != nil && *p.GroupSlug != ""
}
