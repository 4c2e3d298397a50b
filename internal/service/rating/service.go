// Package rating stores rating marks and keeps the aggregated rating of
// categories and questions up to date.
package rating

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/quiz-backend/internal/adapter/redis/ranking"
	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/event"
)

type markRepo interface {
	Create(ctx context.Context, m *domain.RatingMark) (*domain.RatingMark, error)
	Stats(ctx context.Context, target domain.RatingTarget, id domain.ID) (count, sum int, err error)
}

type categoryRepo interface {
	List(ctx context.Context, f domain.CategoryFilter) ([]domain.Category, error)
	ListByIDs(ctx context.Context, ids []domain.ID) ([]domain.Category, error)
	SetRating(ctx context.Context, id domain.ID, rating domain.Rating) (*domain.Category, error)
}

type questionRepo interface {
	SetRating(ctx context.Context, id domain.ID, rating domain.Rating) (*domain.Question, error)
}

// rankingStore is the optional sorted read model of category ratings.
type rankingStore interface {
	SetCategoryRating(ctx context.Context, id domain.ID, rating domain.Rating) error
	RemoveCategory(ctx context.Context, id domain.ID) error
	Top(ctx context.Context, limit int) ([]ranking.Entry, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, e event.Event) error
}

// Service implements rating operations.
type Service struct {
	log        *slog.Logger
	marks      markRepo
	categories categoryRepo
	questions  questionRepo
	ranking    rankingStore
	events     dispatcher
	now        func() time.Time
}

// NewService creates a new rating service instance. ranking may be nil.
func NewService(
	logger *slog.Logger,
	marks markRepo,
	categories categoryRepo,
	questions questionRepo,
	ranking rankingStore,
	events dispatcher,
) *Service {
	return &Service{
		log:        logger.With("service", "rating"),
		marks:      marks,
		categories: categories,
		questions:  questions,
		ranking:    ranking,
		events:     events,
		now:        time.Now,
	}
}

// Subscribe keeps aggregates and the ranking in step with new marks and
// deleted categories.
func (s *Service) Subscribe(b *event.Bus) {
	event.On(b, func(ctx context.Context, e domain.Rated) error {
		target, id := e.Mark.Target()
		return s.SyncTargetRating(ctx, target, id)
	})
	event.On(b, func(ctx context.Context, e domain.CategoryDeleted) error {
		if s.ranking == nil {
			return nil
		}
		return s.ranking.RemoveCategory(ctx, e.Category.ID)
	})
}

func (s *Service) dispatch(ctx context.Context, e event.Event) {
	if err := s.events.Dispatch(ctx, e); err != nil {
		s.log.WarnContext(ctx, "event subscriber failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()),
		)
	}
}
