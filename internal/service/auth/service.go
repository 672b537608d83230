package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/yatube-backend/internal/config"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
}

// jwtManager defines the session token interface needed by auth service.
type jwtManager interface {
	GenerateSessionToken(userID uuid.UUID, username string) (string, error)
	ValidateSessionToken(token string) (uuid.UUID, string, error)
}

// Session is returned by Register and Login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// Service implements signup, login and session checks.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
	now   func() time.Time
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	if cfg.PasswordHashCost < bcrypt.MinCost {
		cfg.PasswordHashCost = bcrypt.DefaultCost
	}
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
		now:   time.Now,
	}
}

// issueSession signs a token for the user. The hash never leaves the service.
func (s *Service) issueSession(user *domain.User) (*Session, error) {
	token, err := s.jwt.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	out := *user
	out.PasswordHash = ""

	return &Session{
		Token:     token,
		ExpiresAt: s.now().Add(s.cfg.SessionTTL),
		User:      &out,
	}, nil
}
