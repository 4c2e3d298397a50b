package rating

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// meanPrecision is the number of decimal places carried into the float64
// conversion, far beyond what a double can hold.
const meanPrecision = 32

// Aggregate turns a mark count and sum into a Rating. The average is the
// plain mean sum/count, unrounded.
func Aggregate(count, sum int) domain.Rating {
	if count == 0 {
		return domain.Rating{}
	}
	avg := decimal.NewFromInt(int64(sum)).DivRound(decimal.NewFromInt(int64(count)), meanPrecision)
	return domain.Rating{MarkCount: count, Average: avg.InexactFloat64()}
}

// SyncTargetRating recomputes the rating of one target from its marks. A
// target deleted in the meantime is skipped.
func (s *Service) SyncTargetRating(ctx context.Context, target domain.RatingTarget, id domain.ID) error {
	count, sum, err := s.marks.Stats(ctx, target, id)
	if err != nil {
		return fmt.Errorf("rating.SyncTargetRating: %w", err)
	}
	rating := Aggregate(count, sum)

	switch target {
	case domain.RatingTargetCategory:
		_, err = s.categories.SetRating(ctx, id, rating)
	case domain.RatingTargetQuestion:
		_, err = s.questions.SetRating(ctx, id, rating)
	default:
		return fmt.Errorf("rating.SyncTargetRating: unknown target %q", target)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("rating.SyncTargetRating: %w", err)
	}

	if target == domain.RatingTargetCategory && s.ranking != nil {
		if err := s.ranking.SetCategoryRating(ctx, id, rating); err != nil {
			return fmt.Errorf("rating.SyncTargetRating: %w", err)
		}
	}
	return nil
}
