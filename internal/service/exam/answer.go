package exam

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Answer records the caller's answer for one snapshot entry, replacing any
// earlier answer.
func (s *Service) Answer(ctx context.Context, input AnswerInput) (*domain.Exam, error) {
	user, exam, err := s.authorize(ctx, input.ExamID, domain.PermissionCreateExamQuestionAnswer)
	if err != nil {
		return nil, err
	}
	if exam.IsCompleted() {
		return nil, domain.ErrExamCompleted
	}

	entry, err := exam.QuestionAt(input.QuestionNumber)
	if err != nil {
		return nil, err
	}

	q, err := s.provider.Question(ctx, entry.QuestionID)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(q); err != nil {
		return nil, err
	}

	updated, err := s.exams.SetAnswer(ctx, exam.ID, input.QuestionNumber, domain.ExamQuestion{
		QuestionID: entry.QuestionID,
		Choice:     input.Choice,
		Answer:     input.Answer,
	})
	if err != nil {
		return nil, fmt.Errorf("exam.Answer: %w", err)
	}

	s.log.InfoContext(ctx, "exam question answered",
		slog.String("user_id", user.ID.String()),
		slog.String("exam_id", exam.ID.String()),
		slog.Int("question_number", input.QuestionNumber),
	)
	return updated, nil
}
