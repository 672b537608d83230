package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// NewPostForm returns an empty form for a signed-in user.
func (s *Service) NewPostForm(ctx context.Context) (*Form, error) {
	if !CanCreate(identityFromCtx(ctx)) {
		return nil, domain.ErrUnauthorized
	}

	choices, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	return NewForm(choices), nil
}

// CreatePost stores a new post authored by the signed-in user.
// On invalid input it returns the bound form with errors and writes nothing.
func (s *Service) CreatePost(ctx context.Context, input PostInput) (*domain.Post, *Form, error) {
	id := identityFromCtx(ctx)
	if !CanCreate(id) {
		return nil, nil, domain.ErrUnauthorized
	}

	choices, err := s.groups.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list groups: %w", err)
	}

	form := BindForm(input, choices)
	if err := Validate(input, choices); err != nil {
		form.SetErrors(err)
		return nil, form, err
	}
	input = input.normalized()

	var post *domain.Post
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		post, createErr = s.posts.Create(txCtx, &domain.Post{
			Text:      input.Text,
			AuthorID:  id.UserID,
			GroupSlug: groupRef(input.Group),
		})
		if createErr != nil {
			return fmt.Errorf("create post: %w", createErr)
		}
		return nil
	})
	if err != nil {
		// The group was removed after the choices were loaded.
		if input.Group != "" && errors.Is(err, domain.ErrNotFound) {
			verr := domain.NewValidationError(FieldGroup, MsgInvalidChoice)
			form.SetErrors(verr)
			return nil, form, verr
		}
		return nil, nil, err
	}

	s.publish(ctx, "post.created", s.events.PostCreated, post)

	s.log.InfoContext(ctx, "post created",
		slog.String("user_id", id.UserID.String()),
		slog.Int64("post_id", post.ID),
	)

	return post, nil, nil
}
