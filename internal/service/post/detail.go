package post

import (
	"context"
	"fmt"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// PostDetail is a single post with its author's total post count.
type PostDetail struct {
	Post            domain.Post
	AuthorPostCount int
	CanEdit         bool
}

// GetDetail returns the post and how many posts its author has written.
// Returns domain.ErrNotFound if the post does not exist.
func (s *Service) GetDetail(ctx context.Context, id int64) (*PostDetail, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}

	count, err := s.posts.Count(ctx, domain.ByAuthor(post.AuthorID))
	if err != nil {
		return nil, fmt.Errorf("count author posts: %w", err)
	}

	return &PostDetail{
		Post:            *post,
		AuthorPostCount: count,
		CanEdit:         CanEdit(identityFromCtx(ctx), *post),
	}, nil
}
