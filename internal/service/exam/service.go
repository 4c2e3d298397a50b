// Package exam implements the exam workflow: starting an attempt over a
// snapshot of approved questions, reading and answering questions one by
// one, and completing the attempt with a score.
package exam

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/heartmarshall/quiz-backend/internal/config"
	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/event"
)

type examRepo interface {
	List(ctx context.Context, f domain.ExamFilter) ([]domain.Exam, error)
	Create(ctx context.Context, e *domain.Exam) (*domain.Exam, error)
	SetQuestionNumber(ctx context.Context, id domain.ID, number int) (*domain.Exam, error)
	SetAnswer(ctx context.Context, id domain.ID, number int, answer domain.ExamQuestion) (*domain.Exam, error)
	Complete(ctx context.Context, id domain.ID, correctAnswerCount int, at time.Time) (*domain.Exam, error)
	SoftDelete(ctx context.Context, id domain.ID) (*domain.Exam, error)
}

type questionRepo interface {
	ApprovedIDs(ctx context.Context, categoryID domain.ID) ([]domain.ID, error)
	ListByIDs(ctx context.Context, ids []domain.ID) ([]domain.Question, error)
}

type entityProvider interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	CategoryByString(ctx context.Context, field, raw string) (*domain.Category, error)
	Question(ctx context.Context, id domain.ID) (*domain.Question, error)
	ExamByString(ctx context.Context, field, raw string) (*domain.Exam, error)
}

type verifier interface {
	VerifyAuthorization(user *domain.User, permission domain.Permission, target domain.Owned) error
}

type dispatcher interface {
	Dispatch(ctx context.Context, e event.Event) error
}

// Service implements the exam workflow.
type Service struct {
	log       *slog.Logger
	exams     examRepo
	questions questionRepo
	provider  entityProvider
	verifier  verifier
	events    dispatcher
	cfg       config.ExamConfig
	now       func() time.Time
	shuffle   func(n int, swap func(i, j int))
}

// NewService creates a new exam service instance.
func NewService(
	logger *slog.Logger,
	exams examRepo,
	questions questionRepo,
	provider entityProvider,
	verifier verifier,
	events dispatcher,
	cfg config.ExamConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "exam"),
		exams:     exams,
		questions: questions,
		provider:  provider,
		verifier:  verifier,
		events:    events,
		cfg:       cfg,
		now:       time.Now,
		shuffle:   rand.Shuffle,
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

// authorize loads the exam named by rawID and checks permission or
// ownership of it.
func (s *Service) authorize(ctx context.Context, rawID string, permission domain.Permission) (*domain.User, *domain.Exam, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, nil, err
	}

	exam, err := s.provider.ExamByString(ctx, "examId", rawID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, permission, exam); err != nil {
		return nil, nil, err
	}
	return user, exam, nil
}
