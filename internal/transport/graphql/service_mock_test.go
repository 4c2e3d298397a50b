package graphql

import (
	"context"
	"sync"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/service/activity"
	"github.com/heartmarshall/quiz-backend/internal/service/auth"
	"github.com/heartmarshall/quiz-backend/internal/service/category"
	"github.com/heartmarshall/quiz-backend/internal/service/exam"
	"github.com/heartmarshall/quiz-backend/internal/service/question"
	"github.com/heartmarshall/quiz-backend/internal/service/user"
)

type userServiceMock struct {
	GetMeFunc    func(ctx context.Context) (*domain.User, error)
	GetUserFunc  func(ctx context.Context, rawID string) (*domain.User, error)
	UpdateMeFunc func(ctx context.Context, input user.UpdateMeInput) (*domain.User, error)
	DeleteMeFunc func(ctx context.Context) (*domain.User, error)

	calls struct {
		GetMe []struct {
			Ctx context.Context
		}
		GetUser []struct {
			Ctx   context.Context
			RawID string
		}
		UpdateMe []struct {
			Ctx   context.Context
			Input user.UpdateMeInput
		}
		DeleteMe []struct {
			Ctx context.Context
		}
	}
	lockGetMe    sync.RWMutex
	lockGetUser  sync.RWMutex
	lockUpdateMe sync.RWMutex
	lockDeleteMe sync.RWMutex
}

func (mock *userServiceMock) GetMe(ctx context.Context) (*domain.User, error) {
	if mock.GetMeFunc == nil {
		panic("userServiceMock.GetMeFunc: method is nil but userService.GetMe was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetMe.Lock()
	mock.calls.GetMe = append(mock.calls.GetMe, callInfo)
	mock.lockGetMe.Unlock()
	return mock.GetMeFunc(ctx)
}

func (mock *userServiceMock) GetMeCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetMe.RLock()
	calls = mock.calls.GetMe
	mock.lockGetMe.RUnlock()
	return calls
}

func (mock *userServiceMock) GetUser(ctx context.Context, rawID string) (*domain.User, error) {
	if mock.GetUserFunc == nil {
		panic("userServiceMock.GetUserFunc: method is nil but userService.GetUser was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{
		Ctx:   ctx,
		RawID: rawID,
	}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, rawID)
}

func (mock *userServiceMock) GetUserCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	var calls []struct {
		Ctx   context.Context
		RawID string
	}
	mock.lockGetUser.RLock()
	calls = mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateMe(ctx context.Context, input user.UpdateMeInput) (*domain.User, error) {
	if mock.UpdateMeFunc == nil {
		panic("userServiceMock.UpdateMeFunc: method is nil but userService.UpdateMe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateMeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateMe.Lock()
	mock.calls.UpdateMe = append(mock.calls.UpdateMe, callInfo)
	mock.lockUpdateMe.Unlock()
	return mock.UpdateMeFunc(ctx, input)
}

func (mock *userServiceMock) UpdateMeCalls() []struct {
	Ctx   context.Context
	Input user.UpdateMeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input user.UpdateMeInput
	}
	mock.lockUpdateMe.RLock()
	calls = mock.calls.UpdateMe
	mock.lockUpdateMe.RUnlock()
	return calls
}

func (mock *userServiceMock) DeleteMe(ctx context.Context) (*domain.User, error) {
	if mock.DeleteMeFunc == nil {
		panic("userServiceMock.DeleteMeFunc: method is nil but userService.DeleteMe was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDeleteMe.Lock()
	mock.calls.DeleteMe = append(mock.calls.DeleteMe, callInfo)
	mock.lockDeleteMe.Unlock()
	return mock.DeleteMeFunc(ctx)
}

func (mock *userServiceMock) DeleteMeCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockDeleteMe.RLock()
	calls = mock.calls.DeleteMe
	mock.lockDeleteMe.RUnlock()
	return calls
}

type authServiceMock struct {
	RegisterFunc     func(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	AuthenticateFunc func(ctx context.Context, input auth.AuthenticateInput) (*auth.AuthResult, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		Authenticate []struct {
			Ctx   context.Context
			Input auth.AuthenticateInput
		}
	}
	lockRegister     sync.RWMutex
	lockAuthenticate sync.RWMutex
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}
	mock.lockRegister.RLock()
	calls = mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) Authenticate(ctx context.Context, input auth.AuthenticateInput) (*auth.AuthResult, error) {
	if mock.AuthenticateFunc == nil {
		panic("authServiceMock.AuthenticateFunc: method is nil but authService.Authenticate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.AuthenticateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAuthenticate.Lock()
	mock.calls.Authenticate = append(mock.calls.Authenticate, callInfo)
	mock.lockAuthenticate.Unlock()
	return mock.AuthenticateFunc(ctx, input)
}

func (mock *authServiceMock) AuthenticateCalls() []struct {
	Ctx   context.Context
	Input auth.AuthenticateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.AuthenticateInput
	}
	mock.lockAuthenticate.RLock()
	calls = mock.calls.Authenticate
	mock.lockAuthenticate.RUnlock()
	return calls
}

type categoryServiceMock struct {
	GetFunc           func(ctx context.Context, rawID string) (*domain.Category, error)
	ListFunc          func(ctx context.Context, input category.ListCategoriesInput) ([]domain.Category, error)
	CreateFunc        func(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	UpdateFunc        func(ctx context.Context, input category.UpdateCategoryInput) (*domain.Category, error)
	DeleteFunc        func(ctx context.Context, rawID string) (*domain.Category, error)
	ToggleApproveFunc func(ctx context.Context, rawID string) (*domain.Category, error)
	RateFunc          func(ctx context.Context, input category.RateCategoryInput) (*domain.Category, error)

	calls struct {
		Get []struct {
			Ctx   context.Context
			RawID string
		}
		List []struct {
			Ctx   context.Context
			Input category.ListCategoriesInput
		}
		Create []struct {
			Ctx   context.Context
			Input category.CreateCategoryInput
		}
		Update []struct {
			Ctx   context.Context
			Input category.UpdateCategoryInput
		}
		Delete []struct {
			Ctx   context.Context
			RawID string
		}
		ToggleApprove []struct {
			Ctx   context.Context
			RawID string
		}
		Rate []struct {
			Ctx   context.Context
			Input category.RateCategoryInput
		}
	}
	lockGet           sync.RWMutex
	lockList          sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockToggleApprove sync.RWMutex
	lockRate          sync.RWMutex
}

func (mock *categoryServiceMock) Get(ctx context.Context, rawID string) (*domain.Category, error) {
	if mock.GetFunc == nil {
		panic("categoryServiceMock.GetFunc: method is nil but categoryService.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{
		Ctx:   ctx,
		RawID: rawID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, rawID)
}

func (mock *categoryServiceMock) GetCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	var calls []struct {
		Ctx   context.Context
		RawID string
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *categoryServiceMock) List(ctx context.Context, input category.ListCategoriesInput) ([]domain.Category, error) {
	if mock.ListFunc == nil {
		panic("categoryServiceMock.ListFunc: method is nil but categoryService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.ListCategoriesInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *categoryServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input category.ListCategoriesInput
} {
	var calls []struct {
		Ctx   context.Context
		Input category.ListCategoriesInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Create(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryServiceMock.CreateFunc: method is nil but categoryService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.CreateCategoryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *categoryServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input category.CreateCategoryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input category.CreateCategoryInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Update(ctx context.Context, input category.UpdateCategoryInput) (*domain.Category, error) {
	if mock.UpdateFunc == nil {
		panic("categoryServiceMock.UpdateFunc: method is nil but categoryService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.UpdateCategoryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *categoryServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input category.UpdateCategoryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input category.UpdateCategoryInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Delete(ctx context.Context, rawID string) (*domain.Category, error) {
	if mock.DeleteFunc == nil {
		panic("categoryServiceMock.DeleteFunc: method is nil but categoryService.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{
		Ctx:   ctx,
		RawID: rawID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, rawID)
}

func (mock *categoryServiceMock) DeleteCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	var calls []struct {
		Ctx   context.Context
		RawID string
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *categoryServiceMock) ToggleApprove(ctx context.Context, rawID string) (*domain.Category, error) {
	if mock.ToggleApproveFunc == nil {
		panic("categoryServiceMock.ToggleApproveFunc: method is nil but categoryService.ToggleApprove was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{
		Ctx:   ctx,
		RawID: rawID,
	}
	mock.lockToggleApprove.Lock()
	mock.calls.ToggleApprove = append(mock.calls.ToggleApprove, callInfo)
	mock.lockToggleApprove.Unlock()
	return mock.ToggleApproveFunc(ctx, rawID)
}

func (mock *categoryServiceMock) ToggleApproveCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	var calls []struct {
		Ctx   context.Context
		RawID string
	}
	mock.lockToggleApprove.RLock()
	calls = mock.calls.ToggleApprove
	mock.lockToggleApprove.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Rate(ctx context.Context, input category.RateCategoryInput) (*domain.Category, error) {
	if mock.RateFunc == nil {
		panic("categoryServiceMock.RateFunc: method is nil but categoryService.Rate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.RateCategoryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRate.Lock()
	mock.calls.Rate = append(mock.calls.Rate, callInfo)
	mock.lockRate.Unlock()
	return mock.RateFunc(ctx, input)
}

func (mock *categoryServiceMock) RateCalls() []struct {
	Ctx   context.Context
	Input category.RateCategoryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input category.RateCategoryInput
	}
	mock.lockRate.RLock()
	calls = mock.calls.Rate
	mock.lockRate.RUnlock()
	return calls
}

type questionServiceMock struct {
	GetFunc           func(ctx context.Context, rawID string) (*domain.Question, error)
	ListFunc          func(ctx context.Context, input question.ListQuestionsInput) ([]domain.Question, error)
	CreateFunc        func(ctx context.Context, input question.CreateQuestionInput) (*domain.Question, error)
	UpdateFunc        func(ctx context.Context, input question.UpdateQuestionInput) (*domain.Question, error)
	DeleteFunc        func(ctx context.Context, rawID string) (*domain.Question, error)
	ToggleApproveFunc func(ctx context.Context, rawID string) (*domain.Question, error)
	RateFunc          func(ctx context.Context, input question.RateQuestionInput) (*domain.Question, error)

	calls struct {
		Get []struct {
			Ctx   context.Context
			RawID string
		}
		List []struct {
			Ctx   context.Context
			Input question.ListQuestionsInput
		}
		Create []struct {
			Ctx   context.Context
			Input question.CreateQuestionInput
		}
		Update []struct {
			Ctx   context.Context
			Input question.UpdateQuestionInput
		}
		Delete []struct {
			Ctx   context.Context
			RawID string
		}
		ToggleApprove []struct {
			Ctx   context.Context
			RawID string
		}
		Rate []struct {
			Ctx   context.Context
			Input question.RateQuestionInput
		}
	}
	lockGet           sync.RWMutex
	lockList          sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockToggleApprove sync.RWMutex
	lockRate          sync.RWMutex
}

func (mock *questionServiceMock) Get(ctx context.Context, rawID string) (*domain.Question, error) {
	if mock.GetFunc == nil {
		panic("questionServiceMock.GetFunc: method is nil but questionService.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{
		Ctx:   ctx,
		RawID: rawID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, rawID)
}

func (mock *questionServiceMock) GetCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	var calls []struct {
		Ctx   context.Context
		RawID string
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *questionServiceMock) List(ctx context.Context, input question.ListQuestionsInput) ([]domain.Question, error) {
	if mock.ListFunc == nil {
		panic("questionServiceMock.ListFunc: method is nil but questionService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input question.ListQuestionsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *questionServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input question.ListQuestionsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input question.ListQuestionsInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *questionServiceMock) Create(ctx context.Context, input question.CreateQuestionInput) (*domain.Question, error) {
	if mock.CreateFunc == nil {
		panic("questionServiceMock.CreateFunc: method is nil but questionService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input question.CreateQuestionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *questionServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input question.CreateQuestionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input question.CreateQuestionInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *questionServiceMock) Update(ctx context.Context, input question.UpdateQuestionInput) (*domain.Question, error) {
	if mock.UpdateFunc == nil {
		panic("questionServiceMock.UpdateFunc: method is nil but questionService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input question.UpdateQuestionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *questionServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input question.UpdateQuestionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input question.UpdateQuestionInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *questionServiceMock) Delete(ctx context.Context, rawID string) (*domain.Question, error) {
	if mock.DeleteFunc == nil {
		panic("questionServiceMock.DeleteFunc: method is nil but questionService.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{
		Ctx:   ctx,
		RawID: rawID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, rawID)
}

func (mock *questionServiceMock) DeleteCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	var calls []struct {
		Ctx   context.Context
		RawID string
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *questionServiceMock) ToggleApprove(ctx context.Context, rawID string) (*domain.Question, error) {
	if mock.ToggleApproveFunc == nil {
		panic("questionServiceMock.ToggleApproveFunc: method is nil but questionService.ToggleApprove was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{
		Ctx:   ctx,
		RawID: rawID,
	}
	mock.lockToggleApprove.Lock()
	mock.calls.ToggleApprove = append(mock.calls.ToggleApprove, callInfo)
	mock.lockToggleApprove.Unlock()
	return mock.ToggleApproveFunc(ctx, rawID)
}

func (mock *questionServiceMock) ToggleApproveCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	var calls []struct {
		Ctx   context.Context
		RawID string
	}
	mock.lockToggleApprove.RLock()
	calls = mock.calls.ToggleApprove
	mock.lockToggleApprove.RUnlock()
	return calls
}

func (mock *questionServiceMock) Rate(ctx context.Context, input question.RateQuestionInput) (*domain.Question, error) {
	if mock.RateFunc == nil {
		panic("questionServiceMock.RateFunc: method is nil but questionService.Rate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input question.RateQuestionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRate.Lock()
	mock.calls.Rate = append(mock.calls.Rate, callInfo)
	mock.lockRate.Unlock()
	return mock.RateFunc(ctx, input)
}

func (mock *questionServiceMock) RateCalls() []struct {
	Ctx   context.Context
	Input question.RateQuestionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input question.RateQuestionInput
	}
	mock.lockRate.RLock()
	calls = mock.calls.Rate
	mock.lockRate.RUnlock()
	return calls
}

type examServiceMock struct {
	GetFunc         func(ctx context.Context, rawID string) (*domain.Exam, error)
	ListFunc        func(ctx context.Context, input exam.ListExamsInput) ([]domain.Exam, error)
	GetQuestionFunc func(ctx context.Context, input exam.GetExamQuestionInput) (*exam.QuestionView, error)
	CreateFunc      func(ctx context.Context, input exam.CreateExamInput) (*domain.Exam, error)
	AnswerFunc      func(ctx context.Context, input exam.AnswerInput) (*domain.Exam, error)
	CompleteFunc    func(ctx context.Context, rawID string) (*domain.Exam, error)
	DeleteFunc      func(ctx context.Context, rawID string) (*domain.Exam, error)

	calls struct {
		Get []struct {
			Ctx   context.Context
			RawID string
		}
		List []struct {
			Ctx   context.Context
			Input exam.ListExamsInput
		}
		GetQuestion []struct {
			Ctx   context.Context
			Input exam.GetExamQuestionInput
		}
		Create []struct {
			Ctx   context.Context
			Input exam.CreateExamInput
		}
		Answer []struct {
			Ctx   context.Context
			Input exam.AnswerInput
		}
		Complete []struct {
			Ctx   context.Context
			RawID string
		}
		Delete []struct {
			Ctx   context.Context
			RawID string
		}
	}
	lockGet         sync.RWMutex
	lockList        sync.RWMutex
	lockGetQuestion sync.RWMutex
	lockCreate      sync.RWMutex
	lockAnswer      sync.RWMutex
	lockComplete    sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *examServiceMock) Get(ctx context.Context, rawID string) (*domain.Exam, error) {
	if mock.GetFunc == nil {
		panic("examServiceMock.GetFunc: method is nil but examService.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{
		Ctx:   ctx,
		RawID: rawID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, rawID)
}

func (mock *examServiceMock) GetCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	var calls []struct {
		Ctx   context.Context
		RawID string
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *examServiceMock) List(ctx context.Context, input exam.ListExamsInput) ([]domain.Exam, error) {
	if mock.ListFunc == nil {
		panic("examServiceMock.ListFunc: method is nil but examService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input exam.ListExamsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *examServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input exam.ListExamsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input exam.ListExamsInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *examServiceMock) GetQuestion(ctx context.Context, input exam.GetExamQuestionInput) (*exam.QuestionView, error) {
	if mock.GetQuestionFunc == nil {
		panic("examServiceMock.GetQuestionFunc: method is nil but examService.GetQuestion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input exam.GetExamQuestionInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockGetQuestion.Lock()
	mock.calls.GetQuestion = append(mock.calls.GetQuestion, callInfo)
	mock.lockGetQuestion.Unlock()
	return mock.GetQuestionFunc(ctx, input)
}

func (mock *examServiceMock) GetQuestionCalls() []struct {
	Ctx   context.Context
	Input exam.GetExamQuestionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input exam.GetExamQuestionInput
	}
	mock.lockGetQuestion.RLock()
	calls = mock.calls.GetQuestion
	mock.lockGetQuestion.RUnlock()
	return calls
}

func (mock *examServiceMock) Create(ctx context.Context, input exam.CreateExamInput) (*domain.Exam, error) {
	if mock.CreateFunc == nil {
		panic("examServiceMock.CreateFunc: method is nil but examService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input exam.CreateExamInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *examServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input exam.CreateExamInput
} {
	var calls []struct {
		Ctx   context.Context
		Input exam.CreateExamInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *examServiceMock) Answer(ctx context.Context, input exam.AnswerInput) (*domain.Exam, error) {
	if mock.AnswerFunc == nil {
		panic("examServiceMock.AnswerFunc: method is nil but examService.Answer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input exam.AnswerInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAnswer.Lock()
	mock.calls.Answer = append(mock.calls.Answer, callInfo)
	mock.lockAnswer.Unlock()
	return mock.AnswerFunc(ctx, input)
}

func (mock *examServiceMock) AnswerCalls() []struct {
	Ctx   context.Context
	Input exam.AnswerInput
} {
	var calls []struct {
		Ctx   context.Context
		Input exam.AnswerInput
	}
	mock.lockAnswer.RLock()
	calls = mock.calls.Answer
	mock.lockAnswer.RUnlock()
	return calls
}

func (mock *examServiceMock) Complete(ctx context.Context, rawID string) (*domain.Exam, error) {
	if mock.CompleteFunc == nil {
		panic("examServiceMock.CompleteFunc: method is nil but examService.Complete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{
		Ctx:   ctx,
		RawID: rawID,
	}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, rawID)
}

func (mock *examServiceMock) CompleteCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	var calls []struct {
		Ctx   context.Context
		RawID string
	}
	mock.lockComplete.RLock()
	calls = mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *examServiceMock) Delete(ctx context.Context, rawID string) (*domain.Exam, error) {
	if mock.DeleteFunc == nil {
		panic("examServiceMock.DeleteFunc: method is nil but examService.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{
		Ctx:   ctx,
		RawID: rawID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, rawID)
}

func (mock *examServiceMock) DeleteCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	var calls []struct {
		Ctx   context.Context
		RawID string
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

type activityServiceMock struct {
	ListFunc func(ctx context.Context, input activity.ListActivitiesInput) ([]domain.Activity, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Input activity.ListActivitiesInput
		}
	}
	lockList sync.RWMutex
}

func (mock *activityServiceMock) List(ctx context.Context, input activity.ListActivitiesInput) ([]domain.Activity, error) {
	if mock.ListFunc == nil {
		panic("activityServiceMock.ListFunc: method is nil but activityService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.ListActivitiesInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *activityServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input activity.ListActivitiesInput
} {
	var calls []struct {
		Ctx   context.Context
		Input activity.ListActivitiesInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

type ratingServiceMock struct {
	TopCategoriesFunc func(ctx context.Context, limit int) ([]domain.Category, error)

	calls struct {
		TopCategories []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockTopCategories sync.RWMutex
}

func (mock *ratingServiceMock) TopCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	if mock.TopCategoriesFunc == nil {
		panic("ratingServiceMock.TopCategoriesFunc: method is nil but ratingService.TopCategories was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockTopCategories.Lock()
	mock.calls.TopCategories = append(mock.calls.TopCategories, callInfo)
	mock.lockTopCategories.Unlock()
	return mock.TopCategoriesFunc(ctx, limit)
}

func (mock *ratingServiceMock) TopCategoriesCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockTopCategories.RLock()
	calls = mock.calls.TopCategories
	mock.lockTopCategories.RUnlock()
	return calls
}
