package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Delete soft-deletes a category and returns it as it was.
func (s *Service) Delete(ctx context.Context, rawID string) (*domain.Category, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.provider.CategoryByString(ctx, "categoryId", rawID)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, domain.PermissionDeleteCategory, c); err != nil {
		return nil, err
	}

	if err := s.categories.SoftDelete(ctx, c.ID); err != nil {
		return nil, fmt.Errorf("category.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", user.ID.String()),
		slog.String("category_id", c.ID.String()),
	)
	s.dispatch(ctx, domain.CategoryDeleted{Category: *c, UserID: user.ID})

	return c, nil
}
