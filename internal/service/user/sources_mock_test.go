package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

var _ ratingMarkRepo = &ratingMarkRepoMock{}

type ratingMarkRepoMock struct {
	ListByCreatorFunc func(ctx context.Context, creatorID domain.ID) ([]domain.RatingMark, error)

	calls struct {
		ListByCreator []struct {
			Ctx       context.Context
			CreatorID domain.ID
		}
	}
	lockListByCreator sync.RWMutex
}

func (mock *ratingMarkRepoMock) ListByCreator(ctx context.Context, creatorID domain.ID) ([]domain.RatingMark, error) {
	if mock.ListByCreatorFunc == nil {
		panic("ratingMarkRepoMock.ListByCreatorFunc: method is nil but ratingMarkRepo.ListByCreator was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CreatorID domain.ID
	}{
		Ctx:       ctx,
		CreatorID: creatorID,
	}
	mock.lockListByCreator.Lock()
	mock.calls.ListByCreator = append(mock.calls.ListByCreator, callInfo)
	mock.lockListByCreator.Unlock()
	return mock.ListByCreatorFunc(ctx, creatorID)
}

func (mock *ratingMarkRepoMock) ListByCreatorCalls() []struct {
	Ctx       context.Context
	CreatorID domain.ID
} {
	var calls []struct {
		Ctx       context.Context
		CreatorID domain.ID
	}
	mock.lockListByCreator.RLock()
	calls = mock.calls.ListByCreator
	mock.lockListByCreator.RUnlock()
	return calls
}

var _ examRepo = &examRepoMock{}

type examRepoMock struct {
	ListByOwnerAndCategoryFunc func(ctx context.Context, ownerID domain.ID, categoryID domain.ID) ([]domain.Exam, error)

	calls struct {
		ListByOwnerAndCategory []struct {
			Ctx        context.Context
			OwnerID    domain.ID
			CategoryID domain.ID
		}
	}
	lockListByOwnerAndCategory sync.RWMutex
}

func (mock *examRepoMock) ListByOwnerAndCategory(ctx context.Context, ownerID domain.ID, categoryID domain.ID) ([]domain.Exam, error) {
	if mock.ListByOwnerAndCategoryFunc == nil {
		panic("examRepoMock.ListByOwnerAndCategoryFunc: method is nil but examRepo.ListByOwnerAndCategory was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OwnerID    domain.ID
		CategoryID domain.ID
	}{
		Ctx:        ctx,
		OwnerID:    ownerID,
		CategoryID: categoryID,
	}
	mock.lockListByOwnerAndCategory.Lock()
	mock.calls.ListByOwnerAndCategory = append(mock.calls.ListByOwnerAndCategory, callInfo)
	mock.lockListByOwnerAndCategory.Unlock()
	return mock.ListByOwnerAndCategoryFunc(ctx, ownerID, categoryID)
}

func (mock *examRepoMock) ListByOwnerAndCategoryCalls() []struct {
	Ctx        context.Context
	OwnerID    domain.ID
	CategoryID domain.ID
} {
	var calls []struct {
		Ctx        context.Context
		OwnerID    domain.ID
		CategoryID domain.ID
	}
	mock.lockListByOwnerAndCategory.RLock()
	calls = mock.calls.ListByOwnerAndCategory
	mock.lockListByOwnerAndCategory.RUnlock()
	return calls
}
