package domain

import (
	"strings"
	"time"
)

// QuestionChoice is one option of a CHOICE question, or one accepted answer
// of a TYPE question.
type QuestionChoice struct {
	Title       string  `json:"title"`
	Correct     bool    `json:"correct,omitempty"`
	Explanation *string `json:"explanation,omitempty"`
}

// Question belongs to a category and follows the same approval rules.
type Question struct {
	ID         ID
	CategoryID ID
	CreatorID  ID
	Approval   Approval
	Type       QuestionType
	Difficulty Difficulty
	Title      string
	Choices    []QuestionChoice
	Rating     *Rating
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}

func (q *Question) Owner() (ID, bool) { return q.Approval.Owner() }

func (q *Question) IsApproved() bool { return q.Approval.IsApproved() }

// IsCorrect scores a recorded answer against the question. CHOICE answers
// are correct when the chosen option is flagged correct; TYPE answers match
// any correct option title ignoring case and surrounding whitespace.
func (q *Question) IsCorrect(a ExamQuestion) bool {
	switch q.Type {
	case QuestionTypeChoice:
		if a.Choice == nil || *a.Choice < 0 || *a.Choice >= len(q.Choices) {
			return false
		}
		return q.Choices[*a.Choice].Correct
	case QuestionTypeType:
		if a.Answer == nil {
			return false
		}
		given := NormalizeAnswer(*a.Answer)
		if given == "" {
			return false
		}
		for _, c := range q.Choices {
			if c.Correct && NormalizeAnswer(c.Title) == given {
				return true
			}
		}
	}
	return false
}

// WithoutSolutions returns a copy with correct flags and explanations
// removed, for display while an exam is still running.
func (q Question) WithoutSolutions() Question {
	choices := make([]QuestionChoice, len(q.Choices))
	for i, c := range q.Choices {
		choices[i] = QuestionChoice{Title: c.Title}
	}
	if q.Type == QuestionTypeType {
		choices = []QuestionChoice{}
	}
	q.Choices = choices
	return q
}

// HasCorrectChoice reports whether at least one option is marked correct.
func HasCorrectChoice(choices []QuestionChoice) bool {
	for _, c := range choices {
		if c.Correct && strings.TrimSpace(c.Title) != "" {
			return true
		}
	}
	return false
}

// QuestionUpdateParams holds optional fields for a question update.
type QuestionUpdateParams struct {
	Type       *QuestionType
	Difficulty *Difficulty
	Title      *string
	Choices    []QuestionChoice
}

// QuestionFilter narrows a question listing.
type QuestionFilter struct {
	CategoryID *ID
	Search     *string
	Approved   *bool
	OwnerID    *ID
	Limit      int
	Offset     int
}
