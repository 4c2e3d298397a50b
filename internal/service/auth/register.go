package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Register creates a new user with the default permissions.
// Returns ErrEmailTaken if a live user already has the email.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		ID:           domain.NewID(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Permissions:  domain.DefaultPermissions(),
		CreatedAt:    s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))

	return user, nil
}
