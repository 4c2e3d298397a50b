// Package dataloader batches the nested lookups of GraphQL resolvers into one
// repository call per entity type and request. Loaders read repositories
// directly, so they only serve data any caller may see.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type categoryRepo interface {
	ListByIDs(ctx context.Context, ids []domain.ID) ([]domain.Category, error)
}

type userRepo interface {
	ListByIDs(ctx context.Context, ids []domain.ID) ([]domain.User, error)
}

// Repos are the sources the loaders batch into.
type Repos struct {
	Category categoryRepo
	User     userRepo
}

// Loaders are built once per request. Missing or soft-deleted entities load
// as nil without an error.
type Loaders struct {
	CategoryByID *dataloader.Loader[domain.ID, *domain.Category]
	UserByID     *dataloader.Loader[domain.ID, *domain.User]
}

// NewLoaders builds a fresh, empty set of loaders.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		CategoryByID: newLoader(byID(repos.Category.ListByIDs, func(c *domain.Category) domain.ID { return c.ID })),
		UserByID:     newLoader(byID(repos.User.ListByIDs, func(u *domain.User) domain.ID { return u.ID })),
	}
}

func newLoader[T any](fn dataloader.BatchFunc[domain.ID, *T]) *dataloader.Loader[domain.ID, *T] {
	return dataloader.NewBatchedLoader(fn,
		dataloader.WithWait[domain.ID, *T](wait),
		dataloader.WithBatchCapacity[domain.ID, *T](maxBatch),
	)
}

// byID adapts a ListByIDs call to a batch function. Results come back in
// key order; a failed call fails every key of the batch.
func byID[T any](
	list func(ctx context.Context, ids []domain.ID) ([]T, error),
	idOf func(*T) domain.ID,
) dataloader.BatchFunc[domain.ID, *T] {
	return func(ctx context.Context, keys []domain.ID) []*dataloader.Result[*T] {
		results := make([]*dataloader.Result[*T], len(keys))

		items, err := list(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*T]{Error: err}
			}
			return results
		}

		found := make(map[domain.ID]*T, len(items))
		for i := range items {
			found[idOf(&items[i])] = &items[i]
		}
		for i, key := range keys {
			results[i] = &dataloader.Result[*T]{Data: found[key]}
		}
		return results
	}
}
