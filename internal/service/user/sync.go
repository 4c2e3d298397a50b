package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// SyncRatingMarks rebuilds the user's mark buckets for one target kind from
// every mark the user has given.
func (s *Service) SyncRatingMarks(ctx context.Context, userID domain.ID, target domain.RatingTarget) error {
	marks, err := s.marks.ListByCreator(ctx, userID)
	if err != nil {
		return fmt.Errorf("user.SyncRatingMarks: %w", err)
	}

	if err := s.users.SetRatingMarks(ctx, userID, target, domain.BucketRatingMarks(marks, target)); err != nil {
		return fmt.Errorf("user.SyncRatingMarks: %w", err)
	}
	return nil
}

// SyncCategoryExams recomputes the user's exam summary for one category.
func (s *Service) SyncCategoryExams(ctx context.Context, userID, categoryID domain.ID) error {
	exams, err := s.exams.ListByOwnerAndCategory(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("user.SyncCategoryExams: %w", err)
	}

	state := domain.SummarizeCategoryExams(exams)
	if err := s.users.SetCategoryExamState(ctx, userID, categoryID, state); err != nil {
		return fmt.Errorf("user.SyncCategoryExams: %w", err)
	}
	return nil
}
