package post

import (
	"context"
	"fmt"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/paginate"
)

// Feed is one page of the home feed.
type Feed struct {
	Page paginate.Page[domain.Post]
}

// GroupFeed is one page of a group's posts.
type GroupFeed struct {
	Group domain.Group
	Page  paginate.Page[domain.Post]
}

// ProfileFeed is one page of an author's posts.
type ProfileFeed struct {
	Author    domain.User
	PostCount int
	Page      paginate.Page[domain.Post]
}

// ListAll returns the requested page of every post, newest first.
func (s *Service) ListAll(ctx context.Context, page string) (*Feed, error) {
	p, err := s.feed(ctx, domain.PostFilter{}, page)
	if err != nil {
		return nil, err
	}
	return &Feed{Page: p}, nil
}

// ListByGroup returns the requested page of a group's posts.
// Returns domain.ErrNotFound if the group does not exist.
func (s *Service) ListByGroup(ctx context.Context, slug, page string) (*GroupFeed, error) {
	group, err := s.groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}

	p, err := s.feed(ctx, domain.ByGroup(group.Slug), page)
	if err != nil {
		return nil, err
	}

	return &GroupFeed{Group: *group, Page: p}, nil
}

// ListByAuthor returns the requested page of a user's posts with their total count.
// Returns domain.ErrNotFound if the user does not exist.
func (s *Service) ListByAuthor(ctx context.Context, username, page string) (*ProfileFeed, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}

	p, err := s.feed(ctx, domain.ByAuthor(author.ID), page)
	if err != nil {
		return nil, err
	}

	profile := *author
	profile.PasswordHash = ""

	return &ProfileFeed{Author: profile, PostCount: p.Count, Page: p}, nil
}

// feed counts the posts matching filter, then fetches only the rows of the
// requested page.
func (s *Service) feed(ctx context.Context, filter domain.PostFilter, page string) (paginate.Page[domain.Post], error) {
	count, err := s.posts.Count(ctx, filter)
	if err != nil {
		return paginate.Page[domain.Post]{}, fmt.Errorf("count posts: %w", err)
	}

	w := paginate.NewWindow(count, s.pageSize, page)
	if w.Limit == 0 {
		return paginate.WindowPage[domain.Post](w, nil), nil
	}

	filter.Limit, filter.Offset = w.Limit, w.Offset
	posts, err := s.posts.List(ctx, filter)
	if err != nil {
		return paginate.Page[domain.Post]{}, fmt.Errorf("list posts: %w", err)
	}

	return paginate.WindowPage(w, posts), nil
}
