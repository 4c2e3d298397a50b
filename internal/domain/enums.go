package domain

// QuestionType distinguishes multiple-choice questions from free-text ones.
type QuestionType string

const (
	QuestionTypeChoice QuestionType = "CHOICE"
	QuestionTypeType   QuestionType = "TYPE"
)

func (t QuestionType) String() string { return string(t) }

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeChoice, QuestionTypeType:
		return true
	}
	return false
}

// Difficulty is the author-assigned difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyNormal Difficulty = "NORMAL"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// Mark is a single 1..5 rating value.
type Mark int

const (
	MarkMin Mark = 1
	MarkMax Mark = 5
)

func (m Mark) IsValid() bool { return m >= MarkMin && m <= MarkMax }

// AllMarks lists every valid mark in ascending order.
func AllMarks() []Mark {
	return []Mark{1, 2, 3, 4, 5}
}

// RatingTarget names the kind of entity a rating mark points at.
type RatingTarget string

const (
	RatingTargetCategory RatingTarget = "CATEGORY"
	RatingTargetQuestion RatingTarget = "QUESTION"
)

func (t RatingTarget) String() string { return string(t) }

// ActivityEvent is the kind of domain event an Activity records.
type ActivityEvent string

const (
	ActivityCategoryCreated  ActivityEvent = "categoryCreated"
	ActivityCategoryApproved ActivityEvent = "categoryApproved"
	ActivityCategoryRated    ActivityEvent = "categoryRated"
	ActivityQuestionCreated  ActivityEvent = "questionCreated"
	ActivityQuestionApproved ActivityEvent = "questionApproved"
	ActivityQuestionRated    ActivityEvent = "questionRated"
	ActivityExamCreated      ActivityEvent = "examCreated"
	ActivityExamCompleted    ActivityEvent = "examCompleted"
)

func (e ActivityEvent) String() string { return string(e) }

func (e ActivityEvent) IsValid() bool {
	switch e {
	case ActivityCategoryCreated, ActivityCategoryApproved, ActivityCategoryRated,
		ActivityQuestionCreated, ActivityQuestionApproved, ActivityQuestionRated,
		ActivityExamCreated, ActivityExamCompleted:
		return true
	}
	return false
}
