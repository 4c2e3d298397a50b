package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/event"
)

// Subscribe turns domain events into activity records. Approval events are
// recorded only when the entity became approved.
func (s *Service) Subscribe(b *event.Bus) {
	event.On(b, func(ctx context.Context, e domain.CategoryCreated) error {
		return s.record(ctx, domain.ActivityCategoryCreated, e.UserID, categoryTarget(e.Category))
	})
	event.On(b, func(ctx context.Context, e domain.CategoryApproved) error {
		if !e.Approved {
			return nil
		}
		return s.record(ctx, domain.ActivityCategoryApproved, e.UserID, categoryTarget(e.Category))
	})
	event.On(b, func(ctx context.Context, e domain.QuestionCreated) error {
		return s.record(ctx, domain.ActivityQuestionCreated, e.UserID, questionTarget(e.Question))
	})
	event.On(b, func(ctx context.Context, e domain.QuestionApproved) error {
		if !e.Approved {
			return nil
		}
		return s.record(ctx, domain.ActivityQuestionApproved, e.UserID, questionTarget(e.Question))
	})
	event.On(b, func(ctx context.Context, e domain.ExamCreated) error {
		return s.recordExam(ctx, domain.ActivityExamCreated, e.UserID, e.Exam)
	})
	event.On(b, func(ctx context.Context, e domain.ExamCompleted) error {
		return s.recordExam(ctx, domain.ActivityExamCompleted, e.UserID, e.Exam)
	})
	event.On(b, s.recordRated)
}

// target is the entity an activity points at.
type target struct {
	categoryID *domain.ID
	questionID *domain.ID
	examID     *domain.ID
	name       string
}

func categoryTarget(c domain.Category) target {
	return target{categoryID: &c.ID, name: c.Name}
}

func questionTarget(q domain.Question) target {
	return target{categoryID: &q.CategoryID, questionID: &q.ID, name: q.Title}
}

func (s *Service) recordExam(ctx context.Context, ev domain.ActivityEvent, userID domain.ID, e domain.Exam) error {
	name, err := s.categoryName(ctx, e.CategoryID)
	if err != nil {
		return err
	}
	return s.record(ctx, ev, userID, target{categoryID: &e.CategoryID, examID: &e.ID, name: name})
}

func (s *Service) recordRated(ctx context.Context, e domain.Rated) error {
	kind, id := e.Mark.Target()
	switch kind {
	case domain.RatingTargetCategory:
		name, err := s.categoryName(ctx, id)
		if err != nil {
			return err
		}
		return s.record(ctx, domain.ActivityCategoryRated, e.Mark.CreatorID, target{categoryID: &id, name: name})
	case domain.RatingTargetQuestion:
		q, err := s.provider.Question(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return s.record(ctx, domain.ActivityQuestionRated, e.Mark.CreatorID, target{questionID: &id})
		}
		if err != nil {
			return fmt.Errorf("activity: load question %s: %w", id, err)
		}
		return s.record(ctx, domain.ActivityQuestionRated, e.Mark.CreatorID, questionTarget(*q))
	}
	return nil
}

// categoryName looks up a display name. A category deleted in the meantime
// leaves the name empty.
func (s *Service) categoryName(ctx context.Context, id domain.ID) (string, error) {
	c, err := s.provider.Category(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("activity: load category %s: %w", id, err)
	}
	return c.Name, nil
}

func (s *Service) record(ctx context.Context, ev domain.ActivityEvent, userID domain.ID, t target) error {
	a := &domain.Activity{
		ID:         domain.NewID(),
		Event:      ev,
		CreatorID:  userID,
		CategoryID: t.categoryID,
		QuestionID: t.questionID,
		ExamID:     t.examID,
		TargetName: t.name,
		CreatedAt:  s.now(),
	}
	if err := s.activities.Create(ctx, a); err != nil {
		return fmt.Errorf("activity: record %s: %w", ev, err)
	}

	s.log.DebugContext(ctx, "activity recorded",
		slog.String("event", ev.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}
