package postgres

import (
	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// OptionalID converts a nullable id column.
func OptionalID(s *string) *domain.ID {
	if s == nil || *s == "" {
		return nil
	}
	id := domain.ID(*s)
	return &id
}

// RatingFrom builds the aggregate rating from its stored columns. A target
// without marks has no rating.
func RatingFrom(count int, average float64) *domain.Rating {
	if count == 0 {
		return nil
	}
	return &domain.Rating{MarkCount: count, Average: average}
}

// IDStrings converts ids to plain strings for ANY($1) array arguments.
func IDStrings(ids []domain.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
