package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/quiz-backend/internal/auth"
	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// passwordHasher hashes and verifies credentials.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// tokenManager issues and checks bearer tokens.
type tokenManager interface {
	GenerateAccessToken(userID domain.ID) (auth.Token, error)
	ValidateAccessToken(token string) (domain.ID, error)
}

// Service implements registration and token issuing.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher passwordHasher
	tokens tokenManager
	now    func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	hasher passwordHasher,
	tokens tokenManager,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
	}
}

// AuthResult is returned by a successful authentication.
type AuthResult struct {
	Token auth.Token
	User  *domain.User
}
