package auth

import (
	"context"
	"fmt"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// ValidateToken resolves a session token into the request identity.
// Any token problem gives domain.ErrUnauthorized.
func (s *Service) ValidateToken(_ context.Context, token string) (domain.Identity, error) {
	userID, username, err := s.jwt.ValidateSessionToken(token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return domain.Identity{UserID: userID, Username: username}, nil
}
