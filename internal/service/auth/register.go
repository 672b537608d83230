package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Register creates a new account and signs the user in.
// A taken username is reported as a validation error on the username field.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	input.Username = normalizeUsername(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Uniqueness is enforced by the users_username_key constraint.
	user, err := s.users.Create(ctx, input.Username, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError(FieldUsername, "a user with that username already exists")
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	session, err := s.issueSession(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	return session, nil
}
