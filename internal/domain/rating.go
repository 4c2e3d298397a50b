package domain

import "time"

// RatingMark is one user's mark for exactly one category or question.
type RatingMark struct {
	ID         ID
	CreatorID  ID
	CategoryID *ID
	QuestionID *ID
	Mark       Mark
	CreatedAt  time.Time
}

// Target returns the kind and id of the rated entity.
func (m RatingMark) Target() (RatingTarget, ID) {
	if m.CategoryID != nil {
		return RatingTargetCategory, *m.CategoryID
	}
	if m.QuestionID != nil {
		return RatingTargetQuestion, *m.QuestionID
	}
	return "", ""
}

// Activity is an append-only record of something that happened, with the
// target name copied in for display.
type Activity struct {
	ID         ID
	Event      ActivityEvent
	CreatorID  ID
	CategoryID *ID
	QuestionID *ID
	ExamID     *ID
	TargetName string
	CreatedAt  time.Time
}

// ActivityFilter narrows an activity listing.
type ActivityFilter struct {
	CreatorID *ID
	Event     *ActivityEvent
	Limit     int
	Offset    int
}
