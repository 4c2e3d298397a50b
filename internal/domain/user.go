package domain

import (
	"slices"
	"time"
)

// User is an account holder. Rating buckets and per-category exam state are
// denormalized onto the user and kept in sync by event subscribers.
type User struct {
	ID                  ID
	Email               string
	Name                string
	PasswordHash        string
	Permissions         []Permission
	CategoryRatingMarks RatingMarkBuckets
	QuestionRatingMarks RatingMarkBuckets
	CategoryExams       map[ID]CategoryExamState
	CreatedAt           time.Time
	UpdatedAt           *time.Time
	DeletedAt           *time.Time
}

// Owner makes a user the owner of their own account.
func (u *User) Owner() (ID, bool) { return u.ID, true }

// InProgressExam returns the active exam the user holds for a category.
func (u *User) InProgressExam(categoryID ID) (ID, bool) {
	st, ok := u.CategoryExams[categoryID]
	if !ok || st.InProgressExamID == nil {
		return "", false
	}
	return *st.InProgressExamID, true
}

// DefaultPermissions is what a freshly registered user receives.
func DefaultPermissions() []Permission {
	return []Permission{RoleRegular}
}

// RatingMarkBuckets groups target ids by the mark the user gave them.
type RatingMarkBuckets map[Mark][]ID

// NewRatingMarkBuckets returns buckets with an empty slice for every mark.
func NewRatingMarkBuckets() RatingMarkBuckets {
	b := make(RatingMarkBuckets, len(AllMarks()))
	for _, m := range AllMarks() {
		b[m] = []ID{}
	}
	return b
}

// BucketRatingMarks rebuilds buckets from every mark a user created for the
// given target kind.
func BucketRatingMarks(marks []RatingMark, target RatingTarget) RatingMarkBuckets {
	b := NewRatingMarkBuckets()
	for _, m := range marks {
		kind, id := m.Target()
		if kind != target || !m.Mark.IsValid() {
			continue
		}
		b[m.Mark] = append(b[m.Mark], id)
	}
	for _, m := range AllMarks() {
		slices.Sort(b[m])
	}
	return b
}

// MarkFor returns the mark recorded for id, if any.
func (b RatingMarkBuckets) MarkFor(id ID) (Mark, bool) {
	for m, ids := range b {
		if slices.Contains(ids, id) {
			return m, true
		}
	}
	return 0, false
}

// CategoryExamState is the per-category exam summary kept on the user.
type CategoryExamState struct {
	InProgressExamID *ID `json:"inProgressExamId,omitempty"`
	CompletedCount   int `json:"completedCount"`
}

// SummarizeCategoryExams rebuilds a CategoryExamState from a user's live
// exams in one category.
func SummarizeCategoryExams(exams []Exam) CategoryExamState {
	var st CategoryExamState
	for i := range exams {
		e := &exams[i]
		if e.IsCompleted() {
			st.CompletedCount++
			continue
		}
		id := e.ID
		st.InProgressExamID = &id
	}
	return st
}

// UserUpdateParams holds optional fields for a profile update.
type UserUpdateParams struct {
	Name         *string
	Email        *string
	PasswordHash *string
}
