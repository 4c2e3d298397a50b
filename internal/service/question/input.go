package question

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Choice count limits of a question.
const (
	MinChoices = 2
	MaxChoices = 10
)

// CreateQuestionInput holds the parameters for creating a question. For
// TYPE questions every choice is an accepted answer.
type CreateQuestionInput struct {
	CategoryID string
	Type       domain.QuestionType
	Difficulty domain.Difficulty
	Title      string
	Choices    []domain.QuestionChoice
}

// Normalize trims and canonicalizes the fields before validation.
func (i *CreateQuestionInput) Normalize() {
	i.Title = strings.TrimSpace(i.Title)
	if i.Difficulty == "" {
		i.Difficulty = domain.DifficultyNormal
	}
	i.Choices = normalizeChoices(i.Type, i.Choices)
}

// Validate checks all fields and collects all errors.
func (i CreateQuestionInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be CHOICE or TYPE"})
	}
	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be EASY, NORMAL or HARD"})
	}
	errs = append(errs, checkTitle(i.Title)...)
	if i.Type.IsValid() {
		errs = append(errs, checkChoices(i.Type, i.Choices)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateQuestionInput holds the parameters for updating a question. Nil
// fields are left unchanged.
type UpdateQuestionInput struct {
	QuestionID string
	Type       *domain.QuestionType
	Difficulty *domain.Difficulty
	Title      *string
	Choices    []domain.QuestionChoice
}

func (i *UpdateQuestionInput) normalize(current domain.QuestionType) {
	if i.Title != nil {
		t := strings.TrimSpace(*i.Title)
		i.Title = &t
	}
	if i.Choices != nil {
		i.Choices = normalizeChoices(i.effectiveType(current), i.Choices)
	}
}

func (i UpdateQuestionInput) effectiveType(current domain.QuestionType) domain.QuestionType {
	if i.Type != nil {
		return *i.Type
	}
	return current
}

// Validate checks all fields against the question's current type.
func (i UpdateQuestionInput) Validate(current domain.QuestionType) error {
	var errs []domain.FieldError

	if i.Type == nil && i.Difficulty == nil && i.Title == nil && i.Choices == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be CHOICE or TYPE"})
	}
	if i.Type != nil && *i.Type != current && i.Choices == nil {
		errs = append(errs, domain.FieldError{Field: "choices", Message: "required when type changes"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be EASY, NORMAL or HARD"})
	}
	if i.Title != nil {
		errs = append(errs, checkTitle(*i.Title)...)
	}
	if i.Choices != nil && i.effectiveType(current).IsValid() {
		errs = append(errs, checkChoices(i.effectiveType(current), i.Choices)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListQuestionsInput narrows a question listing.
type ListQuestionsInput struct {
	CategoryID *string
	Search     *string
	Approved   *bool
	Mine       bool
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListQuestionsInput) Validate() error {
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

// RateQuestionInput holds a mark for a question.
type RateQuestionInput struct {
	QuestionID string
	Mark       int
}

// Validate checks all fields and collects all errors.
func (i RateQuestionInput) Validate() error {
	if !domain.Mark(i.Mark).IsValid() {
		return domain.NewValidationError("mark", "must be between 1 and 5")
	}
	return nil
}

func checkTitle(title string) []domain.FieldError {
	switch {
	case title == "":
		return []domain.FieldError{{Field: "title", Message: "required"}}
	case utf8.RuneCountInString(title) > domain.MaxTitleLength:
		return []domain.FieldError{{Field: "title", Message: "too long"}}
	}
	return nil
}

func checkChoices(t domain.QuestionType, choices []domain.QuestionChoice) []domain.FieldError {
	var errs []domain.FieldError

	least := MinChoices
	if t == domain.QuestionTypeType {
		least = 1
	}
	if len(choices) < least {
		errs = append(errs, domain.FieldError{Field: "choices", Message: fmt.Sprintf("at least %d required", least)})
	}
	if len(choices) > MaxChoices {
		errs = append(errs, domain.FieldError{Field: "choices", Message: fmt.Sprintf("at most %d allowed", MaxChoices)})
	}

	seen := make(map[string]struct{}, len(choices))
	for n, c := range choices {
		field := fmt.Sprintf("choices[%d].title", n)
		if c.Title == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
			continue
		}
		if utf8.RuneCountInString(c.Title) > domain.MaxTitleLength {
			errs = append(errs, domain.FieldError{Field: field, Message: "too long"})
		}
		key := domain.NormalizeAnswer(c.Title)
		if _, dup := seen[key]; dup {
			errs = append(errs, domain.FieldError{Field: field, Message: "duplicate choice"})
		}
		seen[key] = struct{}{}
	}

	if len(choices) >= least && !domain.HasCorrectChoice(choices) {
		errs = append(errs, domain.FieldError{Field: "choices", Message: "at least one correct choice required"})
	}
	return errs
}

// normalizeChoices trims titles and marks every TYPE answer as accepted.
func normalizeChoices(t domain.QuestionType, choices []domain.QuestionChoice) []domain.QuestionChoice {
	out := make([]domain.QuestionChoice, len(choices))
	for n, c := range choices {
		c.Title = strings.TrimSpace(c.Title)
		if c.Explanation != nil {
			e := strings.TrimSpace(*c.Explanation)
			c.Explanation = &e
			if e == "" {
				c.Explanation = nil
			}
		}
		if t == domain.QuestionTypeType {
			c.Correct = true
		}
		out[n] = c
	}
	return out
}
