package domain

import "time"

// Rating is the aggregate of every mark given to a target.
type Rating struct {
	MarkCount int     `json:"markCount"`
	Average   float64 `json:"average"`
}

// Category groups questions. Newly created categories are pending and owned
// by their creator until someone with approveCategory approves them.
type Category struct {
	ID                    ID
	CreatorID             ID
	Approval              Approval
	Name                  string
	Description           *string
	QuestionCount         int
	ApprovedQuestionCount int
	Rating                *Rating
	CreatedAt             time.Time
	UpdatedAt             *time.Time
	DeletedAt             *time.Time
}

func (c *Category) Owner() (ID, bool) { return c.Approval.Owner() }

func (c *Category) IsApproved() bool { return c.Approval.IsApproved() }

// CategoryUpdateParams holds optional fields for a category update.
type CategoryUpdateParams struct {
	Name        *string
	Description *string
}

// CategoryFilter narrows a category listing.
type CategoryFilter struct {
	Search   *string
	Approved *bool
	OwnerID  *ID
	Limit    int
	Offset   int
}
