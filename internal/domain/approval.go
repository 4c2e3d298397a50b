package domain

// ApprovalState is the publication state of a category or question.
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "PENDING"
	ApprovalApproved ApprovalState = "APPROVED"
)

// Approval is either Pending with the owner who may still manage the entity,
// or Approved with no owner.
type Approval struct {
	state   ApprovalState
	ownerID ID
}

// Pending returns an unapproved state owned by owner.
func Pending(owner ID) Approval {
	return Approval{state: ApprovalPending, ownerID: owner}
}

// Approved returns the approved state.
func Approved() Approval {
	return Approval{state: ApprovalApproved}
}

// ApprovalFromOwner maps the stored nullable owner column to an Approval.
func ApprovalFromOwner(owner *ID) Approval {
	if owner == nil || owner.IsZero() {
		return Approved()
	}
	return Pending(*owner)
}

func (a Approval) State() ApprovalState {
	if a.state == "" {
		return ApprovalApproved
	}
	return a.state
}

func (a Approval) IsApproved() bool { return a.State() == ApprovalApproved }

// Owner returns the owner of a pending entity.
func (a Approval) Owner() (ID, bool) {
	if a.IsApproved() {
		return "", false
	}
	return a.ownerID, true
}

// OwnerPtr returns the owner as a nullable value for storage.
func (a Approval) OwnerPtr() *ID {
	if id, ok := a.Owner(); ok {
		return &id
	}
	return nil
}

// Toggle flips the state. Approving drops the owner; un-approving hands
// ownership back to creator.
func (a Approval) Toggle(creator ID) Approval {
	if a.IsApproved() {
		return Pending(creator)
	}
	return Approved()
}
