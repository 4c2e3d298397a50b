package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Create stores a new pending category owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, domain.PermissionCreateCategory, nil); err != nil {
		return nil, err
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.categories.Create(ctx, &domain.Category{
		ID:          domain.NewID(),
		CreatorID:   user.ID,
		Approval:    domain.Pending(user.ID),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("category.Create: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", user.ID.String()),
		slog.String("category_id", c.ID.String()),
	)
	s.dispatch(ctx, domain.CategoryCreated{Category: *c, UserID: user.ID})

	return c, nil
}
