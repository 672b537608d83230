package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// editable runs the edit checks in order: signed in, post exists, author.
// On ErrForbidden the post is still returned so callers can link back to it.
func (s *Service) editable(ctx context.Context, postID int64) (domain.Identity, *domain.Post, error) {
	id := identityFromCtx(ctx)
	if !id.IsAuthenticated() {
		return id, nil, domain.ErrUnauthorized
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return id, nil, fmt.Errorf("get post: %w", err)
	}

	if !CanEdit(id, *post) {
		return id, post, domain.ErrForbidden
	}

	return id, post, nil
}

// EditPostForm returns the form pre-filled with the post's current values.
func (s *Service) EditPostForm(ctx context.Context, postID int64) (*Form, *domain.Post, error) {
	_, post, err := s.editable(ctx, postID)
	if err != nil {
		return nil, post, err
	}

	choices, err := s.groups.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list groups: %w", err)
	}

	input := PostInput{Text: post.Text}
	if post.GroupSlug != nil {
		input.Group = *post.GroupSlug
	}

	form := BindForm(input, choices)
	form.IsEdit = true
	form.PostID = post.ID

	return form, post, nil
}

// UpdatePost replaces the text and group of a post owned by the signed-in user.
// On invalid input it returns the bound form with errors and writes nothing.
func (s *Service) UpdatePost(ctx context.Context, postID int64, input PostInput) (*domain.Post, *Form, error) {
	id, post, err := s.editable(ctx, postID)
	if err != nil {
		return post, nil, err
	}

	choices, err := s.groups.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list groups: %w", err)
	}

	form := BindForm(input, choices)
	form.IsEdit = true
	form.PostID = post.ID

	if err := Validate(input, choices); err != nil {
		form.SetErrors(err)
		return post, form, err
	}
	input = input.normalized()

	var updated *domain.Post
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.posts.Update(txCtx, post.ID, domain.PostUpdateParams{
			Text:  input.Text,
			Group: groupRef(input.Group),
		})
		if updateErr != nil {
			return fmt.Errorf("update post: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		if input.Group != "" && errors.Is(err, domain.ErrNotFound) {
			verr := domain.NewValidationError(FieldGroup, MsgInvalidChoice)
			form.SetErrors(verr)
			return post, form, verr
		}
		return nil, nil, err
	}

	s.publish(ctx, "post.updated", s.events.PostUpdated, updated)

	s.log.InfoContext(ctx, "post updated",
		slog.String("user_id", id.UserID.String()),
		slog.Int64("post_id", updated.ID),
	)

	return updated, nil, nil
}
