package question

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/event"
)

type questionRepo interface {
	List(ctx context.Context, f domain.QuestionFilter) ([]domain.Question, error)
	Create(ctx context.Context, q *domain.Question) (*domain.Question, error)
	Update(ctx context.Context, id domain.ID, params domain.QuestionUpdateParams) (*domain.Question, error)
	SetApproval(ctx context.Context, id domain.ID, approval domain.Approval) (*domain.Question, error)
	SoftDelete(ctx context.Context, id domain.ID) error
}

type entityProvider interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	OptionalUser(ctx context.Context) (*domain.User, error)
	CategoryByString(ctx context.Context, field, raw string) (*domain.Category, error)
	Question(ctx context.Context, id domain.ID) (*domain.Question, error)
	QuestionByString(ctx context.Context, field, raw string) (*domain.Question, error)
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

// Service implements question management.
type Service struct {
	log       *slog.Logger
	questions questionRepo
	provider  entityProvider
	verifier  verifier
	events    dispatcher
	rater     rater
	now       func() time.Time
}

// NewService creates a new question service instance.
func NewService(
	logger *slog.Logger,
	questions questionRepo,
	provider entityProvider,
	verifier verifier,
	events dispatcher,
	rater rater,
) *Service {
	return &Service{
		log:       logger.With("service", "question"),
		questions: questions,
		provider:  provider,
		verifier:  verifier,
		events:    events,
		rater:     rater,
		now:       time.Now,
	}
}

func (s *Service) dispatch(ctx context.Context, e event.Event) {
	if err := s.events.Dispatch(ctx, e); err != nil {
		s.log.WarnContext(ctx, "event subscriber failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()),
		)
	}
}

// reveal strips correct flags and explanations unless user may edit q.
func (s *Service) reveal(user *domain.User, q domain.Question) domain.Question {
	if user != nil && s.verifier.VerifyAuthorization(user, domain.PermissionUpdateQuestion, &q) == nil {
		return q
	}
	return q.WithoutSolutions()
}
