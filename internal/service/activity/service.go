// Package activity records an append-only feed of domain events and serves
// it to callers holding getActivities.
package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

type activityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error)
}

type entityProvider interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	Category(ctx context.Context, id domain.ID) (*domain.Category, error)
	Question(ctx context.Context, id domain.ID) (*domain.Question, error)
}

type verifier interface {
	VerifyAuthorization(user *domain.User, permission domain.Permission, target domain.Owned) error
}

// Service implements activity operations.
type Service struct {
	log        *slog.Logger
	activities activityRepo
	provider   entityProvider
	verifier   verifier
	now        func() time.Time
}

// NewService creates a new activity service instance.
func NewService(logger *slog.Logger, activities activityRepo, provider entityProvider, verifier verifier) *Service {
	return &Service{
		log:        logger.With("service", "activity"),
		activities: activities,
		provider:   provider,
		verifier:   verifier,
		now:        time.Now,
	}
}
