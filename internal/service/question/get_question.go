package question

import (
	"context"
	"fmt"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Get returns a live question. Correct flags and explanations are only
// shown to callers who may edit the question.
func (s *Service) Get(ctx context.Context, rawID string) (*domain.Question, error) {
	user, err := s.provider.OptionalUser(ctx)
	if err != nil {
		return nil, err
	}

	q, err := s.provider.QuestionByString(ctx, "questionId", rawID)
	if err != nil {
		return nil, err
	}

	visible := s.reveal(user, *q)
	return &visible, nil
}

// List returns live questions, solutions hidden as in Get.
func (s *Service) List(ctx context.Context, input ListQuestionsInput) ([]domain.Question, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.provider.OptionalUser(ctx)
	if err != nil {
		return nil, err
	}

	filter := domain.QuestionFilter{
		Search:   input.Search,
		Approved: input.Approved,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}
	if input.CategoryID != nil {
		id, err := domain.ParseID("categoryId", *input.CategoryID)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = &id
	}
	if input.Mine {
		if user == nil {
			return nil, domain.ErrAuthorizationRequired
		}
		filter.OwnerID = &user.ID
	}

	list, err := s.questions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("question.List: %w", err)
	}
	for n := range list {
		list[n] = s.reveal(user, list[n])
	}
	return list, nil
}
