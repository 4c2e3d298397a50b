package category

import (
	"context"
	"sync"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

var _ rater = &raterMock{}

type raterMock struct {
	CreateMarkFunc func(ctx context.Context, user *domain.User, mark domain.RatingMark) (*domain.RatingMark, error)

	calls struct {
		CreateMark []struct {
			Ctx  context.Context
			User *domain.User
			Mark domain.RatingMark
		}
	}
	lockCreateMark sync.RWMutex
}

func (mock *raterMock) CreateMark(ctx context.Context, user *domain.User, mark domain.RatingMark) (*domain.RatingMark, error) {
	if mock.CreateMarkFunc == nil {
		panic("raterMock.CreateMarkFunc: method is nil but rater.CreateMark was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
		Mark domain.RatingMark
	}{
		Ctx:  ctx,
		User: user,
		Mark: mark,
	}
	mock.lockCreateMark.Lock()
	mock.calls.CreateMark = append(mock.calls.CreateMark, callInfo)
	mock.lockCreateMark.Unlock()
	return mock.CreateMarkFunc(ctx, user, mark)
}

func (mock *raterMock) CreateMarkCalls() []struct {
	Ctx  context.Context
	User *domain.User
	Mark domain.RatingMark
} {
	var calls []struct {
		Ctx  context.Context
		User *domain.User
		Mark domain.RatingMark
	}
	mock.lockCreateMark.RLock()
	calls = mock.calls.CreateMark
	mock.lockCreateMark.RUnlock()
	return calls
}
