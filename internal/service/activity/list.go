package activity

import (
	"context"
	"fmt"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// ListActivitiesInput narrows the activity feed.
type ListActivitiesInput struct {
	CreatorID *string
	Event     *string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListActivitiesInput) Validate() error {
	var errs []domain.FieldError
	if i.CreatorID != nil && !domain.IsValidID(*i.CreatorID) {
		errs = append(errs, domain.FieldError{Field: "creatorId", Message: "must be a 24 character hex id"})
	}
	if i.Event != nil && !domain.ActivityEvent(*i.Event).IsValid() {
		errs = append(errs, domain.FieldError{Field: "event", Message: "unknown event"})
	}
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

// List returns activities newest first.
func (s *Service) List(ctx context.Context, input ListActivitiesInput) ([]domain.Activity, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, domain.PermissionGetActivities, nil); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ActivityFilter{Limit: input.Limit, Offset: input.Offset}
	if input.CreatorID != nil {
		id := domain.ID(*input.CreatorID)
		filter.CreatorID = &id
	}
	if input.Event != nil {
		e := domain.ActivityEvent(*input.Event)
		filter.Event = &e
	}

	out, err := s.activities.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("activity.List: %w", err)
	}
	return out, nil
}
