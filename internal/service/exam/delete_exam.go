package exam

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Delete soft-deletes an exam, which frees the category for a new attempt.
func (s *Service) Delete(ctx context.Context, rawID string) (*domain.Exam, error) {
	user, exam, err := s.authorize(ctx, rawID, domain.PermissionDeleteExam)
	if err != nil {
		return nil, err
	}

	deleted, err := s.exams.SoftDelete(ctx, exam.ID)
	if err != nil {
		return nil, fmt.Errorf("exam.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "exam deleted",
		slog.String("user_id", user.ID.String()),
		slog.String("exam_id", exam.ID.String()),
	)
	s.dispatch(ctx, domain.ExamDeleted{Exam: *deleted, UserID: user.ID})

	return deleted, nil
}
