package question

import (
	"context"
	"sync"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

var _ entityProvider = &entityProviderMock{}

type entityProviderMock struct {
	CurrentUserFunc      func(ctx context.Context) (*domain.User, error)
	OptionalUserFunc     func(ctx context.Context) (*domain.User, error)
	CategoryByStringFunc func(ctx context.Context, field string, raw string) (*domain.Category, error)
	QuestionFunc         func(ctx context.Context, id domain.ID) (*domain.Question, error)
	QuestionByStringFunc func(ctx context.Context, field string, raw string) (*domain.Question, error)

	calls struct {
		CurrentUser []struct {
			Ctx context.Context
		}
		OptionalUser []struct {
			Ctx context.Context
		}
		CategoryByString []struct {
			Ctx   context.Context
			Field string
			Raw   string
		}
		Question []struct {
			Ctx context.Context
			ID  domain.ID
		}
		QuestionByString []struct {
			Ctx   context.Context
			Field string
			Raw   string
		}
	}
	lockCurrentUser      sync.RWMutex
	lockOptionalUser     sync.RWMutex
	lockCategoryByString sync.RWMutex
	lockQuestion         sync.RWMutex
	lockQuestionByString sync.RWMutex
}

func (mock *entityProviderMock) CurrentUser(ctx context.Context) (*domain.User, error) {
	if mock.CurrentUserFunc == nil {
		panic("entityProviderMock.CurrentUserFunc: method is nil but entityProvider.CurrentUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCurrentUser.Lock()
	mock.calls.CurrentUser = append(mock.calls.CurrentUser, callInfo)
	mock.lockCurrentUser.Unlock()
	return mock.CurrentUserFunc(ctx)
}

func (mock *entityProviderMock) CurrentUserCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCurrentUser.RLock()
	calls = mock.calls.CurrentUser
	mock.lockCurrentUser.RUnlock()
	return calls
}

func (mock *entityProviderMock) OptionalUser(ctx context.Context) (*domain.User, error) {
	if mock.OptionalUserFunc == nil {
		panic("entityProviderMock.OptionalUserFunc: method is nil but entityProvider.OptionalUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockOptionalUser.Lock()
	mock.calls.OptionalUser = append(mock.calls.OptionalUser, callInfo)
	mock.lockOptionalUser.Unlock()
	return mock.OptionalUserFunc(ctx)
}

func (mock *entityProviderMock) OptionalUserCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockOptionalUser.RLock()
	calls = mock.calls.OptionalUser
	mock.lockOptionalUser.RUnlock()
	return calls
}

func (mock *entityProviderMock) CategoryByString(ctx context.Context, field string, raw string) (*domain.Category, error) {
	if mock.CategoryByStringFunc == nil {
		panic("entityProviderMock.CategoryByStringFunc: method is nil but entityProvider.CategoryByString was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Field string
		Raw   string
	}{
		Ctx:   ctx,
		Field: field,
		Raw:   raw,
	}
	mock.lockCategoryByString.Lock()
	mock.calls.CategoryByString = append(mock.calls.CategoryByString, callInfo)
	mock.lockCategoryByString.Unlock()
	return mock.CategoryByStringFunc(ctx, field, raw)
}

func (mock *entityProviderMock) CategoryByStringCalls() []struct {
	Ctx   context.Context
	Field string
	Raw   string
} {
	var calls []struct {
		Ctx   context.Context
		Field string
		Raw   string
	}
	mock.lockCategoryByString.RLock()
	calls = mock.calls.CategoryByString
	mock.lockCategoryByString.RUnlock()
	return calls
}

func (mock *entityProviderMock) Question(ctx context.Context, id domain.ID) (*domain.Question, error) {
	if mock.QuestionFunc == nil {
		panic("entityProviderMock.QuestionFunc: method is nil but entityProvider.Question was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.ID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockQuestion.Lock()
	mock.calls.Question = append(mock.calls.Question, callInfo)
	mock.lockQuestion.Unlock()
	return mock.QuestionFunc(ctx, id)
}

func (mock *entityProviderMock) QuestionCalls() []struct {
	Ctx context.Context
	ID  domain.ID
} {
	var calls []struct {
		Ctx context.Context
		ID  domain.ID
	}
	mock.lockQuestion.RLock()
	calls = mock.calls.Question
	mock.lockQuestion.RUnlock()
	return calls
}

func (mock *entityProviderMock) QuestionByString(ctx context.Context, field string, raw string) (*domain.Question, error) {
	if mock.QuestionByStringFunc == nil {
		panic("entityProviderMock.QuestionByStringFunc: method is nil but entityProvider.QuestionByString was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Field string
		Raw   string
	}{
		Ctx:   ctx,
		Field: field,
		Raw:   raw,
	}
	mock.lockQuestionByString.Lock()
	mock.calls.QuestionByString = append(mock.calls.QuestionByString, callInfo)
	mock.lockQuestionByString.Unlock()
	return mock.QuestionByStringFunc(ctx, field, raw)
}

func (mock *entityProviderMock) QuestionByStringCalls() []struct {
	Ctx   context.Context
	Field string
	Raw   string
} {
	var calls []struct {
		Ctx   context.Context
		Field string
		Raw   string
	}
	mock.lockQuestionByString.RLock()
	calls = mock.calls.QuestionByString
	mock.lockQuestionByString.RUnlock()
	return calls
}
