package rating

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// TopCategories returns up to limit rated, approved categories with the
// highest average first. The ranking store answers when configured;
// otherwise the categories are sorted in memory.
func (s *Service) TopCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	if limit <= 0 {
		return []domain.Category{}, nil
	}
	if s.ranking == nil {
		return s.topFromStore(ctx, limit)
	}

	entries, err := s.ranking.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("rating.TopCategories: %w", err)
	}
	ids := make([]domain.ID, len(entries))
	for i, e := range entries {
		ids[i] = e.CategoryID
	}

	categories, err := s.categories.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("rating.TopCategories: %w", err)
	}
	byID := make(map[domain.ID]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	out := make([]domain.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok && c.IsApproved() {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Service) topFromStore(ctx context.Context, limit int) ([]domain.Category, error) {
	approved := true
	categories, err := s.categories.List(ctx, domain.CategoryFilter{Approved: &approved})
	if err != nil {
		return nil, fmt.Errorf("rating.TopCategories: %w", err)
	}

	rated := slices.DeleteFunc(categories, func(c domain.Category) bool {
		return c.Rating == nil || c.Rating.MarkCount == 0
	})
	slices.SortStableFunc(rated, func(a, b domain.Category) int {
		return cmp.Compare(b.Rating.Average, a.Rating.Average)
	})
	if len(rated) > limit {
		rated = rated[:limit]
	}
	return rated, nil
}
