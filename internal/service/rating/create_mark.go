package rating

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// CreateMark stores user's mark for exactly one category or question.
// Authorization is the caller's job; a second mark for the same target is
// rejected by the store with ErrRatedAlready.
func (s *Service) CreateMark(ctx context.Context, user *domain.User, mark domain.RatingMark) (*domain.RatingMark, error) {
	if !mark.Mark.IsValid() {
		return nil, domain.NewValidationError("mark", fmt.Sprintf("must be between %d and %d", domain.MarkMin, domain.MarkMax))
	}
	if (mark.CategoryID == nil) == (mark.QuestionID == nil) {
		return nil, domain.NewValidationError("target", "exactly one of category and question is required")
	}

	mark.ID = domain.NewID()
	mark.CreatorID = user.ID
	mark.CreatedAt = s.now()

	created, err := s.marks.Create(ctx, &mark)
	if err != nil {
		return nil, fmt.Errorf("rating.CreateMark: %w", err)
	}

	target, id := created.Target()
	s.log.InfoContext(ctx, "rating mark created",
		slog.String("user_id", user.ID.String()),
		slog.String("target", target.String()),
		slog.String("target_id", id.String()),
		slog.Int("mark", int(created.Mark)),
	)
	s.dispatch(ctx, domain.Rated{Mark: *created})

	return created, nil
}
