package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// MsgInvalidCredentials is the form-level message for a failed login.
const MsgInvalidCredentials = "please enter a correct username and password"

// Login authenticates a user with username + password.
// Unknown users and wrong passwords give the same form-level validation error.
func (s *Service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	input.Username = normalizeUsername(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.log.DebugContext(ctx, "login rejected", slog.String("username", input.Username))
		return nil, invalidCredentials()
	}

	session, err := s.issueSession(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return session, nil
}

func invalidCredentials() error {
	return domain.NewValidationError(domain.NonFieldErrors, MsgInvalidCredentials)
}
