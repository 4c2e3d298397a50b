package exam

import (
	"context"
	"fmt"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// QuestionView is one snapshot entry together with the question it refers
// to. Solutions stay hidden until the exam is completed.
type QuestionView struct {
	Exam     *domain.Exam
	Number   int
	Entry    domain.ExamQuestion
	Question domain.Question
}

// GetQuestion returns the question at number and moves the exam cursor
// there.
func (s *Service) GetQuestion(ctx context.Context, input GetExamQuestionInput) (*QuestionView, error) {
	_, exam, err := s.authorize(ctx, input.ExamID, domain.PermissionGetExamQuestion)
	if err != nil {
		return nil, err
	}

	entry, err := exam.QuestionAt(input.QuestionNumber)
	if err != nil {
		return nil, err
	}

	q, err := s.provider.Question(ctx, entry.QuestionID)
	if err != nil {
		return nil, err
	}

	if !exam.IsCompleted() && exam.QuestionNumber != input.QuestionNumber {
		exam, err = s.exams.SetQuestionNumber(ctx, exam.ID, input.QuestionNumber)
		if err != nil {
			return nil, fmt.Errorf("exam.GetQuestion: %w", err)
		}
	}

	question := *q
	if !exam.IsCompleted() {
		question = q.WithoutSolutions()
	}

	return &QuestionView{
		Exam:     exam,
		Number:   input.QuestionNumber,
		Entry:    entry,
		Question: question,
	}, nil
}
