package category

import (
	"context"
	"fmt"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Rate records the caller's mark for a category and returns the category
// with its refreshed rating.
func (s *Service) Rate(ctx context.Context, input RateCategoryInput) (*domain.Category, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.provider.CategoryByString(ctx, "categoryId", input.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, domain.PermissionRateCategory, c); err != nil {
		return nil, err
	}

	if _, err := s.rater.CreateMark(ctx, user, domain.RatingMark{
		CategoryID: &c.ID,
		Mark:       domain.Mark(input.Mark),
	}); err != nil {
		return nil, fmt.Errorf("category.Rate: %w", err)
	}

	return s.provider.Category(ctx, c.ID)
}
