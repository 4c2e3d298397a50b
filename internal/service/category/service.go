package category

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/event"
)

type categoryRepo interface {
	List(ctx context.Context, f domain.CategoryFilter) ([]domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id domain.ID, params domain.CategoryUpdateParams) (*domain.Category, error)
	SetApproval(ctx context.Context, id domain.ID, approval domain.Approval) (*domain.Category, error)
	SetQuestionCounters(ctx context.Context, id domain.ID, total, approved int) (*domain.Category, error)
	SoftDelete(ctx context.Context, id domain.ID) error
}

type questionCounter interface {
	CountByCategory(ctx context.Context, categoryID domain.ID) (total, approved int, err error)
}

type entityProvider interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	Category(ctx context.Context, id domain.ID) (*domain.Category, error)
	CategoryByString(ctx context.Context, field, raw string) (*domain.Category, error)
}

type verifier interface {
	VerifyAuthorization(user *domain.User, permission domain.Permission, target domain.Owned) error
}

type dispatcher interface {
	Dispatch(ctx context.Context, e event.Event) error
}

type rater interface {
	CreateMark(ctx context.Context, user *domain.User, mark domain.RatingMark) (*domain.RatingMark, error)
}

// Service implements category management.
type Service struct {
	log        *slog.Logger
	categories categoryRepo
	questions  questionCounter
	provider   entityProvider
	verifier   verifier
	events     dispatcher
	rater      rater
	now        func() time.Time
}

// NewService creates a new category service instance.
func NewService(
	logger *slog.Logger,
	categories categoryRepo,
	questions questionCounter,
	provider entityProvider,
	verifier verifier,
	events dispatcher,
	rater rater,
) *Service {
	return &Service{
		log:        logger.With("service", "category"),
		categories: categories,
		questions:  questions,
		provider:   provider,
		verifier:   verifier,
		events:     events,
		rater:      rater,
		now:        time.Now,
	}
}

// dispatch publishes e. Subscriber failures do not undo the write that
// triggered them.
func (s *Service) dispatch(ctx context.Context, e event.Event) {
	if err := s.events.Dispatch(ctx, e); err != nil {
		s.log.WarnContext(ctx, "event subscriber failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()),
		)
	}
}

// Subscribe registers the question counter handlers on b.
func (s *Service) Subscribe(b *event.Bus) {
	event.On(b, func(ctx context.Context, e domain.QuestionCreated) error {
		return s.SyncQuestionCounters(ctx, e.Question.CategoryID)
	})
	event.On(b, func(ctx context.Context, e domain.QuestionApproved) error {
		return s.SyncQuestionCounters(ctx, e.Question.CategoryID)
	})
	event.On(b, func(ctx context.Context, e domain.QuestionDeleted) error {
		return s.SyncQuestionCounters(ctx, e.Question.CategoryID)
	})
}
