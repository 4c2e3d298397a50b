package exam

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// CreateExamInput starts an exam. A nil QuestionCount takes every approved
// question of the category, up to the configured maximum.
type CreateExamInput struct {
	CategoryID    string
	QuestionCount *int
}

// Validate checks all fields and collects all errors.
func (i CreateExamInput) Validate(maxQuestions int) error {
	if i.QuestionCount == nil {
		return nil
	}
	if *i.QuestionCount < 1 || *i.QuestionCount > maxQuestions {
		return domain.NewValidationError("questionCount", fmt.Sprintf("must be between 1 and %d", maxQuestions))
	}
	return nil
}

// ListExamsInput narrows an exam listing. A nil OwnerID lists the caller's
// own exams and an empty one lists every owner.
type ListExamsInput struct {
	OwnerID    *string
	CategoryID *string
	Completed  *bool
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListExamsInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetExamQuestionInput addresses one snapshot entry of an exam.
type GetExamQuestionInput struct {
	ExamID         string
	QuestionNumber int
}

// AnswerInput records an answer. CHOICE questions take Choice, TYPE
// questions take Answer.
type AnswerInput struct {
	ExamID         string
	QuestionNumber int
	Choice         *int
	Answer         *string
}

func (i *AnswerInput) normalize() {
	if i.Answer != nil {
		a := strings.TrimSpace(*i.Answer)
		i.Answer = &a
	}
}

// Validate checks the answer shape against the question it answers.
func (i AnswerInput) Validate(q *domain.Question) error {
	var errs []domain.FieldError

	switch q.Type {
	case domain.QuestionTypeChoice:
		if i.Answer != nil {
			errs = append(errs, domain.FieldError{Field: "answer", Message: "not allowed for CHOICE questions"})
		}
		switch {
		case i.Choice == nil:
			errs = append(errs, domain.FieldError{Field: "choice", Message: "required"})
		case *i.Choice < 0 || *i.Choice >= len(q.Choices):
			errs = append(errs, domain.FieldError{Field: "choice", Message: fmt.Sprintf("must be between 0 and %d", len(q.Choices)-1)})
		}
	case domain.QuestionTypeType:
		if i.Choice != nil {
			errs = append(errs, domain.FieldError{Field: "choice", Message: "not allowed for TYPE questions"})
		}
		switch {
		case i.Answer == nil || *i.Answer == "":
			errs = append(errs, domain.FieldError{Field: "answer", Message: "required"})
		case utf8.RuneCountInString(*i.Answer) > domain.MaxTitleLength:
			errs = append(errs, domain.FieldError{Field: "answer", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
