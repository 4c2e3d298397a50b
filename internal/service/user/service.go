package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/event"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Update(ctx context.Context, id domain.ID, params domain.UserUpdateParams) (*domain.User, error)
	SetRatingMarks(ctx context.Context, id domain.ID, target domain.RatingTarget, buckets domain.RatingMarkBuckets) error
	SetCategoryExamState(ctx context.Context, id, categoryID domain.ID, state domain.CategoryExamState) error
	SoftDelete(ctx context.Context, id domain.ID) error
}

type ratingMarkRepo interface {
	ListByCreator(ctx context.Context, creatorID domain.ID) ([]domain.RatingMark, error)
}

type examRepo interface {
	ListByOwnerAndCategory(ctx context.Context, ownerID, categoryID domain.ID) ([]domain.Exam, error)
}

type entityProvider interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	UserByString(ctx context.Context, field, raw string) (*domain.User, error)
}

type verifier interface {
	VerifyAuthorization(user *domain.User, permission domain.Permission, target domain.Owned) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

// Service implements profile operations and keeps the denormalized maps on
// users in sync with ratings and exams.
type Service struct {
	log      *slog.Logger
	users    userRepo
	marks    ratingMarkRepo
	exams    examRepo
	provider entityProvider
	verifier verifier
	hasher   passwordHasher
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	marks ratingMarkRepo,
	exams examRepo,
	provider entityProvider,
	verifier verifier,
	hasher passwordHasher,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		marks:    marks,
		exams:    exams,
		provider: provider,
		verifier: verifier,
		hasher:   hasher,
	}
}

// Subscribe registers the user map resync handlers on b.
func (s *Service) Subscribe(b *event.Bus) {
	event.On(b, func(ctx context.Context, e domain.Rated) error {
		target, _ := e.Mark.Target()
		return s.SyncRatingMarks(ctx, e.Mark.CreatorID, target)
	})
	event.On(b, func(ctx context.Context, e domain.ExamCreated) error {
		return s.SyncCategoryExams(ctx, e.Exam.OwnerID, e.Exam.CategoryID)
	})
	event.On(b, func(ctx context.Context, e domain.ExamCompleted) error {
		return s.SyncCategoryExams(ctx, e.Exam.OwnerID, e.Exam.CategoryID)
	})
	event.On(b, func(ctx context.Context, e domain.ExamDeleted) error {
		return s.SyncCategoryExams(ctx, e.Exam.OwnerID, e.Exam.CategoryID)
	})
}
