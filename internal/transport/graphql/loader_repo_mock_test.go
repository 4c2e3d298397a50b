package graphql

import (
	"context"
	"sync"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

type categoryRepoMock struct {
	ListByIDsFunc func(ctx context.Context, ids []domain.ID) ([]domain.Category, error)

	calls struct {
		ListByIDs []struct {
			Ctx context.Context
			IDs []domain.ID
		}
	}
	lockListByIDs sync.RWMutex
}

func (mock *categoryRepoMock) ListByIDs(ctx context.Context, ids []domain.ID) ([]domain.Category, error) {
	if mock.ListByIDsFunc == nil {
		panic("categoryRepoMock.ListByIDsFunc: method is nil but categoryRepo.ListByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []domain.ID
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockListByIDs.Lock()
	mock.calls.ListByIDs = append(mock.calls.ListByIDs, callInfo)
	mock.lockListByIDs.Unlock()
	return mock.ListByIDsFunc(ctx, ids)
}

func (mock *categoryRepoMock) ListByIDsCalls() []struct {
	Ctx context.Context
	IDs []domain.ID
} {
	var calls []struct {
		Ctx context.Context
		IDs []domain.ID
	}
	mock.lockListByIDs.RLock()
	calls = mock.calls.ListByIDs
	mock.lockListByIDs.RUnlock()
	return calls
}

type userRepoMock struct {
	ListByIDsFunc func(ctx context.Context, ids []domain.ID) ([]domain.User, error)

	calls struct {
		ListByIDs []struct {
			Ctx context.Context
			IDs []domain.ID
		}
	}
	lockListByIDs sync.RWMutex
}

func (mock *userRepoMock) ListByIDs(ctx context.Context, ids []domain.ID) ([]domain.User, error) {
	if mock.ListByIDsFunc == nil {
		panic("userRepoMock.ListByIDsFunc: method is nil but userRepo.ListByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []domain.ID
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockListByIDs.Lock()
	mock.calls.ListByIDs = append(mock.calls.ListByIDs, callInfo)
	mock.lockListByIDs.Unlock()
	return mock.ListByIDsFunc(ctx, ids)
}

func (mock *userRepoMock) ListByIDsCalls() []struct {
	Ctx context.Context
	IDs []domain.ID
} {
	var calls []struct {
		Ctx context.Context
		IDs []domain.ID
	}
	mock.lockListByIDs.RLock()
	calls = mock.calls.ListByIDs
	mock.lockListByIDs.RUnlock()
	return calls
}
