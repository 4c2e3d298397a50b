package exam

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Create starts an exam over a snapshot of the category's approved
// questions. A user can have only one running exam per category.
func (s *Service) Create(ctx context.Context, input CreateExamInput) (*domain.Exam, error) {
	user, err := s.provider.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.verifier.VerifyAuthorization(user, domain.PermissionCreateExam, nil); err != nil {
		return nil, err
	}
	if err := input.Validate(s.cfg.MaxQuestions); err != nil {
		return nil, err
	}

	c, err := s.provider.CategoryByString(ctx, "categoryId", input.CategoryID)
	if err != nil {
		return nil, err
	}
	if !c.IsApproved() {
		return nil, domain.ErrCategoryNotApproved
	}

	ids, err := s.questions.ApprovedIDs(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("exam.Create: %w", err)
	}
	if len(ids) == 0 {
		return nil, domain.ErrCategoryWithoutApprovedQuestions
	}

	snapshot := s.pick(ids, input.QuestionCount)
	questions := make([]domain.ExamQuestion, len(snapshot))
	for i, id := range snapshot {
		questions[i] = domain.ExamQuestion{QuestionID: id}
	}

	exam, err := s.exams.Create(ctx, &domain.Exam{
		ID:         domain.NewID(),
		CategoryID: c.ID,
		CreatorID:  user.ID,
		OwnerID:    user.ID,
		Questions:  questions,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("exam.Create: %w", err)
	}

	s.log.InfoContext(ctx, "exam created",
		slog.String("user_id", user.ID.String()),
		slog.String("exam_id", exam.ID.String()),
		slog.String("category_id", c.ID.String()),
		slog.Int("questions", len(questions)),
	)
	s.dispatch(ctx, domain.ExamCreated{Exam: *exam, UserID: user.ID})

	return exam, nil
}

// pick returns the snapshot ids. Without a count every id is used in
// stored order; otherwise a random subset is drawn. The result never
// exceeds the configured maximum.
func (s *Service) pick(ids []domain.ID, count *int) []domain.ID {
	limit := len(ids)
	if count != nil && *count < limit {
		limit = *count
	}
	if s.cfg.MaxQuestions > 0 && limit > s.cfg.MaxQuestions {
		limit = s.cfg.MaxQuestions
	}
	if limit == len(ids) {
		return ids
	}

	shuffled := make([]domain.ID, len(ids))
	copy(shuffled, ids)
	s.shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:limit]
}
