package exam

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Complete finishes the exam and stores its score. Snapshot questions that
// were deleted in the meantime count as wrong.
func (s *Service) Complete(ctx context.Context, rawID string) (*domain.Exam, error) {
	user, exam, err := s.authorize(ctx, rawID, domain.PermissionCreateExamCompletion)
	if err != nil {
		return nil, err
	}
	if exam.IsCompleted() {
		return nil, domain.ErrExamCompleted
	}

	ids := make([]domain.ID, len(exam.Questions))
	for i, eq := range exam.Questions {
		ids[i] = eq.QuestionID
	}
	questions, err := s.questions.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("exam.Complete: %w", err)
	}
	byID := make(map[domain.ID]*domain.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	correct := exam.CountCorrectAnswers(byID)
	completed, err := s.exams.Complete(ctx, exam.ID, correct, s.now())
	if err != nil {
		return nil, fmt.Errorf("exam.Complete: %w", err)
	}

	s.log.InfoContext(ctx, "exam completed",
		slog.String("user_id", user.ID.String()),
		slog.String("exam_id", exam.ID.String()),
		slog.Int("correct_answers", correct),
		slog.Int("questions", len(exam.Questions)),
	)
	s.dispatch(ctx, domain.ExamCompleted{Exam: *completed, UserID: user.ID})

	return completed, nil
}
