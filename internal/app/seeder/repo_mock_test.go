package seeder

import (
	"context"
	"sync"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockGetByEmail sync.RWMutex
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	CreateFunc              func(ctx context.Context, c *domain.Category) (*domain.Category, error)
	SetQuestionCountersFunc func(ctx context.Context, id domain.ID, total int, approved int) (*domain.Category, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Category
		}
		SetQuestionCounters []struct {
			Ctx      context.Context
			ID       domain.ID
			Total    int
			Approved int
		}
	}
	lockCreate              sync.RWMutex
	lockSetQuestionCounters sync.RWMutex
}

func (mock *categoryRepoMock) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryRepoMock.CreateFunc: method is nil but categoryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Category
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *categoryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Category
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Category
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) SetQuestionCounters(ctx context.Context, id domain.ID, total int, approved int) (*domain.Category, error) {
	if mock.SetQuestionCountersFunc == nil {
		panic("categoryRepoMock.SetQuestionCountersFunc: method is nil but categoryRepo.SetQuestionCounters was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       domain.ID
		Total    int
		Approved int
	}{
		Ctx:      ctx,
		ID:       id,
		Total:    total,
		Approved: approved,
	}
	mock.lockSetQuestionCounters.Lock()
	mock.calls.SetQuestionCounters = append(mock.calls.SetQuestionCounters, callInfo)
	mock.lockSetQuestionCounters.Unlock()
	return mock.SetQuestionCountersFunc(ctx, id, total, approved)
}

func (mock *categoryRepoMock) SetQuestionCountersCalls() []struct {
	Ctx      context.Context
	ID       domain.ID
	Total    int
	Approved int
} {
	var calls []struct {
		Ctx      context.Context
		ID       domain.ID
		Total    int
		Approved int
	}
	mock.lockSetQuestionCounters.RLock()
	calls = mock.calls.SetQuestionCounters
	mock.lockSetQuestionCounters.RUnlock()
	return calls
}

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	CreateFunc func(ctx context.Context, q *domain.Question) (*domain.Question, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Q   *domain.Question
		}
	}
	lockCreate sync.RWMutex
}

func (mock *questionRepoMock) Create(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	if mock.CreateFunc == nil {
		panic("questionRepoMock.CreateFunc: method is nil but questionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   *domain.Question
	}{
		Ctx: ctx,
		Q:   q,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, q)
}

func (mock *questionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Q   *domain.Question
} {
	var calls []struct {
		Ctx context.Context
		Q   *domain.Question
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
