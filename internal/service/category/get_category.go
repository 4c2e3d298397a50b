package category

import (
	"context"
	"fmt"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Get returns a live category by id.
func (s *Service) Get(ctx context.Context, rawID string) (*domain.Category, error) {
	return s.provider.CategoryByString(ctx, "categoryId", rawID)
}

// List returns live categories. Anonymous callers may list everything except
// their own pending categories.
func (s *Service) List(ctx context.Context, input ListCategoriesInput) ([]domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.CategoryFilter{
		Search:   input.Search,
		Approved: input.Approved,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}
	if input.Mine {
		user, err := s.provider.CurrentUser(ctx)
		if err != nil {
			return nil, err
		}
		filter.OwnerID = &user.ID
	}

	list, err := s.categories.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("category.List: %w", err)
	}
	return list, nil
}
