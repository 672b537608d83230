package post

import "github.com/heartmarshall/yatube-backend/internal/domain"

// CanCreate reports whether the identity may write new posts.
func CanCreate(id domain.Identity) bool {
	return id.IsAuthenticated()
}

// CanEdit reports whether the identity may change the post.
// Only the author can; ownership is compared by user id.
func CanEdit(id domain.Identity, p domain.Post) bool {
	return id.Is(p.AuthorID)
}
