package question

import (
	"context"
	"fmt"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Rate records the caller's mark for a question and returns the question
// with its refreshed rating.
func (s *Service) Rate(ctx context.Context, input RateQuestionInput) (*domain.Question, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	q, err := s.provider.QuestionByString(ctx, "questionId", input.QuestionID)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, domain.PermissionRateQuestion, q); err != nil {
		return nil, err
	}

	if _, err := s.rater.CreateMark(ctx, user, domain.RatingMark{
		QuestionID: &q.ID,
		Mark:       domain.Mark(input.Mark),
	}); err != nil {
		return nil, fmt.Errorf("question.Rate: %w", err)
	}

	rated, err := s.provider.Question(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	visible := s.reveal(user, *rated)
	return &visible, nil
}
