// Package ranking keeps a Redis sorted set of categories ordered by their
// average rating.
package ranking

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Entry is one ranked category.
type Entry struct {
	CategoryID domain.ID
	Average    float64
}

// Store is the ranking read model.
type Store struct {
	redis redis.UniversalClient
	key   string
}

// New creates a store keeping its sorted set under "<prefix>:categories:rating".
func New(client redis.UniversalClient, prefix string) *Store {
	return &Store{redis: client, key: fmt.Sprintf("%s:categories:rating", prefix)}
}

// SetCategoryRating overwrites the score of a category. Categories without
// marks are removed.
func (s *Store) SetCategoryRating(ctx context.Context, id domain.ID, rating domain.Rating) error {
	if rating.MarkCount == 0 {
		return s.RemoveCategory(ctx, id)
	}

	if err := s.redis.ZAdd(ctx, s.key, redis.Z{
		Score:  rating.Average,
		Member: id.String(),
	}).Err(); err != nil {
		return fmt.Errorf("ranking: set %s: %w", id, err)
	}
	return nil
}

// RemoveCategory drops a category from the ranking.
func (s *Store) RemoveCategory(ctx context.Context, id domain.ID) error {
	if err := s.redis.ZRem(ctx, s.key, id.String()).Err(); err != nil {
		return fmt.Errorf("ranking: remove %s: %w", id, err)
	}
	return nil
}

// Top returns up to limit categories with the highest average first.
func (s *Store) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return []Entry{}, nil
	}

	res, err := s.redis.ZRevRangeWithScores(ctx, s.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("ranking: top: %w", err)
	}

	entries := make([]Entry, 0, len(res))
	for _, z := range res {
		member, _ := z.Member.(string)
		entries = append(entries, Entry{CategoryID: domain.ID(member), Average: z.Score})
	}
	return entries, nil
}

// Ping checks the Redis connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}
