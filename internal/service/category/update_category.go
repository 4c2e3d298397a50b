package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Update changes a category's name or description. Pending categories may
// be edited by their owner.
func (s *Service) Update(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.provider.CategoryByString(ctx, "categoryId", input.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, domain.PermissionUpdateCategory, c); err != nil {
		return nil, err
	}

	updated, err := s.categories.Update(ctx, c.ID, domain.CategoryUpdateParams{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("category.Update: %w", err)
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("user_id", user.ID.String()),
		slog.String("category_id", c.ID.String()),
	)
	s.dispatch(ctx, domain.CategoryUpdated{Category: *updated, UserID: user.ID})

	return updated, nil
}
