package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// SyncQuestionCounters recounts the live and approved questions of a
// category. A category deleted in the meantime is skipped.
func (s *Service) SyncQuestionCounters(ctx context.Context, categoryID domain.ID) error {
	total, approved, err := s.questions.CountByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("category.SyncQuestionCounters: %w", err)
	}

	_, err = s.categories.SetQuestionCounters(ctx, categoryID, total, approved)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("category.SyncQuestionCounters: %w", err)
	}
	return nil
}
