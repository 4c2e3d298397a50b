package domain

// Event names.
const (
	EventCategoryCreated  = "categoryCreated"
	EventCategoryUpdated  = "categoryUpdated"
	EventCategoryApproved = "categoryApproved"
	EventCategoryDeleted  = "categoryDeleted"

	EventQuestionCreated  = "questionCreated"
	EventQuestionUpdated  = "questionUpdated"
	EventQuestionApproved = "questionApproved"
	EventQuestionDeleted  = "questionDeleted"

	EventExamCreated   = "examCreated"
	EventExamCompleted = "examCompleted"
	EventExamDeleted   = "examDeleted"

	EventRated = "rated"
)

// CategoryCreated is dispatched after a category is stored.
type CategoryCreated struct {
	Category Category
	UserID   ID
}

func (CategoryCreated) Name() string { return EventCategoryCreated }

// CategoryUpdated is dispatched after a category changed.
type CategoryUpdated struct {
	Category Category
	UserID   ID
}

func (CategoryUpdated) Name() string { return EventCategoryUpdated }

// CategoryApproved is dispatched when approval is toggled on a category.
// Approved tells the direction of the toggle.
type CategoryApproved struct {
	Category Category
	UserID   ID
	Approved bool
}

func (CategoryApproved) Name() string { return EventCategoryApproved }

// CategoryDeleted is dispatched after a category is soft-deleted.
type CategoryDeleted struct {
	Category Category
	UserID   ID
}

func (CategoryDeleted) Name() string { return EventCategoryDeleted }

// QuestionCreated is dispatched after a question is stored.
type QuestionCreated struct {
	Question Question
	UserID   ID
}

func (QuestionCreated) Name() string { return EventQuestionCreated }

// QuestionUpdated is dispatched after a question changed.
type QuestionUpdated struct {
	Question Question
	UserID   ID
}

func (QuestionUpdated) Name() string { return EventQuestionUpdated }

// QuestionApproved is dispatched when approval is toggled on a question.
type QuestionApproved struct {
	Question Question
	UserID   ID
	Approved bool
}

func (QuestionApproved) Name() string { return EventQuestionApproved }

// QuestionDeleted is dispatched after a question is soft-deleted.
type QuestionDeleted struct {
	Question Question
	UserID   ID
}

func (QuestionDeleted) Name() string { return EventQuestionDeleted }

// ExamCreated is dispatched after an exam is stored.
type ExamCreated struct {
	Exam   Exam
	UserID ID
}

func (ExamCreated) Name() string { return EventExamCreated }

// ExamCompleted is dispatched after an exam is finished.
type ExamCompleted struct {
	Exam   Exam
	UserID ID
}

func (ExamCompleted) Name() string { return EventExamCompleted }

// ExamDeleted is dispatched after an exam is soft-deleted.
type ExamDeleted struct {
	Exam   Exam
	UserID ID
}

func (ExamDeleted) Name() string { return EventExamDeleted }

// Rated is dispatched after a rating mark is stored.
type Rated struct {
	Mark RatingMark
}

func (Rated) Name() string { return EventRated }
