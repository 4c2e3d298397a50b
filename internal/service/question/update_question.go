package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Update changes a question. Pending questions may be edited by their owner.
func (s *Service) Update(ctx context.Context, input UpdateQuestionInput) (*domain.Question, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	q, err := s.provider.QuestionByString(ctx, "questionId", input.QuestionID)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, domain.PermissionUpdateQuestion, q); err != nil {
		return nil, err
	}

	input.normalize(q.Type)
	if err := input.Validate(q.Type); err != nil {
		return nil, err
	}

	updated, err := s.questions.Update(ctx, q.ID, domain.QuestionUpdateParams{
		Type:       input.Type,
		Difficulty: input.Difficulty,
		Title:      input.Title,
		Choices:    input.Choices,
	})
	if err != nil {
		return nil, fmt.Errorf("question.Update: %w", err)
	}

	s.log.InfoContext(ctx, "question updated",
		slog.String("user_id", user.ID.String()),
		slog.String("question_id", q.ID.String()),
	)
	s.dispatch(ctx, domain.QuestionUpdated{Question: *updated, UserID: user.ID})

	return updated, nil
}
