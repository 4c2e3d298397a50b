package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// ToggleApprove flips a question between pending and approved. Only
// approveQuestion counts; owners cannot approve their own questions.
func (s *Service) ToggleApprove(ctx context.Context, rawID string) (*domain.Question, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, domain.PermissionApproveQuestion, nil); err != nil {
		return nil, err
	}

	q, err := s.provider.QuestionByString(ctx, "questionId", rawID)
	if err != nil {
		return nil, err
	}

	updated, err := s.questions.SetApproval(ctx, q.ID, q.Approval.Toggle(q.CreatorID))
	if err != nil {
		return nil, fmt.Errorf("question.ToggleApprove: %w", err)
	}

	s.log.InfoContext(ctx, "question approval toggled",
		slog.String("user_id", user.ID.String()),
		slog.String("question_id", q.ID.String()),
		slog.Bool("approved", updated.IsApproved()),
	)
	s.dispatch(ctx, domain.QuestionApproved{Question: *updated, UserID: user.ID, Approved: updated.IsApproved()})

	return updated, nil
}
