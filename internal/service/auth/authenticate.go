package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Authenticate exchanges email + password for a signed access token.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, input AuthenticateInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Authenticate get user: %w", err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Authenticate: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Authenticate: %w", err)
	}

	s.log.InfoContext(ctx, "user authenticated", slog.String("user_id", user.ID.String()))

	return &AuthResult{Token: token, User: user}, nil
}

// ValidateToken returns the user id a bearer token was issued to.
func (s *Service) ValidateToken(_ context.Context, token string) (domain.ID, error) {
	id, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return "", fmt.Errorf("auth.ValidateToken: %w", err)
	}
	return id, nil
}
