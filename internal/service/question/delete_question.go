package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Delete soft-deletes a question and returns it as it was.
func (s *Service) Delete(ctx context.Context, rawID string) (*domain.Question, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	q, err := s.provider.QuestionByString(ctx, "questionId", rawID)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, domain.PermissionDeleteQuestion, q); err != nil {
		return nil, err
	}

	if err := s.questions.SoftDelete(ctx, q.ID); err != nil {
		return nil, fmt.Errorf("question.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "question deleted",
		slog.String("user_id", user.ID.String()),
		slog.String("question_id", q.ID.String()),
	)
	s.dispatch(ctx, domain.QuestionDeleted{Question: *q, UserID: user.ID})

	return q, nil
}
