package domain

import "time"

// ExamQuestion is one entry of an exam snapshot: the referenced question and
// whatever the owner answered so far.
type ExamQuestion struct {
	QuestionID ID      `json:"questionId"`
	Choice     *int    `json:"choice,omitempty"`
	Answer     *string `json:"answer,omitempty"`
}

// IsAnswered reports whether any answer was recorded.
func (q ExamQuestion) IsAnswered() bool {
	return q.Choice != nil || q.Answer != nil
}

// Exam is one attempt of a user at a category. The question list is fixed
// at creation time.
type Exam struct {
	ID                 ID
	CategoryID         ID
	CreatorID          ID
	OwnerID            ID
	Questions          []ExamQuestion
	QuestionNumber     int
	CorrectAnswerCount *int
	CompletedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	DeletedAt          *time.Time
}

func (e *Exam) Owner() (ID, bool) { return e.OwnerID, true }

func (e *Exam) IsCompleted() bool { return e.CompletedAt != nil }

// VisibleCorrectAnswerCount hides the score until the exam is completed.
func (e *Exam) VisibleCorrectAnswerCount() *int {
	if !e.IsCompleted() {
		return nil
	}
	return e.CorrectAnswerCount
}

// QuestionAt returns the snapshot entry at number.
func (e *Exam) QuestionAt(number int) (ExamQuestion, error) {
	if number < 0 || number >= len(e.Questions) {
		return ExamQuestion{}, NewExamQuestionNumberNotFoundError(e.ID, number)
	}
	return e.Questions[number], nil
}

// AnsweredCount is the number of snapshot entries with a recorded answer.
func (e *Exam) AnsweredCount() int {
	n := 0
	for _, q := range e.Questions {
		if q.IsAnswered() {
			n++
		}
	}
	return n
}

// CountCorrectAnswers scores every snapshot entry against the referenced
// questions. Entries whose question is missing count as wrong.
func (e *Exam) CountCorrectAnswers(questions map[ID]*Question) int {
	n := 0
	for _, eq := range e.Questions {
		q, ok := questions[eq.QuestionID]
		if !ok || q == nil {
			continue
		}
		if q.IsCorrect(eq) {
			n++
		}
	}
	return n
}

// ExamFilter narrows an exam listing.
type ExamFilter struct {
	OwnerID    *ID
	CategoryID *ID
	Completed  *bool
	Limit      int
	Offset     int
}
