package exam

import (
	"context"
	"fmt"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Get returns an exam to its owner or to a caller allowed to read any exam.
func (s *Service) Get(ctx context.Context, rawID string) (*domain.Exam, error) {
	_, exam, err := s.authorize(ctx, rawID, domain.PermissionGetExam)
	if err != nil {
		return nil, err
	}
	return exam, nil
}

// List returns exams. Listing anybody else's exams, or all of them,
// requires the getExams permission.
func (s *Service) List(ctx context.Context, input ListExamsInput) ([]domain.Exam, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ExamFilter{
		Completed: input.Completed,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}
	if input.CategoryID != nil {
		id, err := domain.ParseID("categoryId", *input.CategoryID)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = &id
	}

	switch {
	case input.OwnerID == nil:
		filter.OwnerID = &user.ID
	case *input.OwnerID == "":
		if err := s.verifier.VerifyAuthorization(user, domain.PermissionGetExams, nil); err != nil {
			return nil, err
		}
	default:
		id, err := domain.ParseID("ownerId", *input.OwnerID)
		if err != nil {
			return nil, err
		}
		if id != user.ID {
			if err := s.verifier.VerifyAuthorization(user, domain.PermissionGetExams, nil); err != nil {
				return nil, err
			}
		}
		filter.OwnerID = &id
	}

	exams, err := s.exams.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("exam.List: %w", err)
	}
	return exams, nil
}
