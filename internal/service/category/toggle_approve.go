package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// ToggleApprove flips a category between pending and approved. Owners
// cannot approve their own categories; only approveCategory counts.
func (s *Service) ToggleApprove(ctx context.Context, rawID string) (*domain.Category, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, domain.PermissionApproveCategory, nil); err != nil {
		return nil, err
	}

	c, err := s.provider.CategoryByString(ctx, "categoryId", rawID)
	if err != nil {
		return nil, err
	}

	updated, err := s.categories.SetApproval(ctx, c.ID, c.Approval.Toggle(c.CreatorID))
	if err != nil {
		return nil, fmt.Errorf("category.ToggleApprove: %w", err)
	}

	s.log.InfoContext(ctx, "category approval toggled",
		slog.String("user_id", user.ID.String()),
		slog.String("category_id", c.ID.String()),
		slog.Bool("approved", updated.IsApproved()),
	)
	s.dispatch(ctx, domain.CategoryApproved{Category: *updated, UserID: user.ID, Approved: updated.IsApproved()})

	return updated, nil
}
