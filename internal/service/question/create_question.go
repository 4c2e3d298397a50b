package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Create stores a new pending question owned by the caller.
func (s *Service) Create(ctx context.Context, input CreateQuestionInput) (*domain.Question, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, domain.PermissionCreateQuestion, nil); err != nil {
		return nil, err
	}

	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.provider.CategoryByString(ctx, "categoryId", input.CategoryID)
	if err != nil {
		return nil, err
	}

	q, err := s.questions.Create(ctx, &domain.Question{
		ID:         domain.NewID(),
		CategoryID: c.ID,
		CreatorID:  user.ID,
		Approval:   domain.Pending(user.ID),
		Type:       input.Type,
		Difficulty: input.Difficulty,
		Title:      input.Title,
		Choices:    input.Choices,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("question.Create: %w", err)
	}

	s.log.InfoContext(ctx, "question created",
		slog.String("user_id", user.ID.String()),
		slog.String("question_id", q.ID.String()),
		slog.String("category_id", c.ID.String()),
	)
	s.dispatch(ctx, domain.QuestionCreated{Question: *q, UserID: user.ID})

	return q, nil
}
