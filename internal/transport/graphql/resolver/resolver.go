// Package resolver maps the GraphQL schema onto the application services.
package resolver

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/permission"
	"github.com/heartmarshall/quiz-backend/internal/service/activity"
	"github.com/heartmarshall/quiz-backend/internal/service/auth"
	"github.com/heartmarshall/quiz-backend/internal/service/category"
	"github.com/heartmarshall/quiz-backend/internal/service/exam"
	"github.com/heartmarshall/quiz-backend/internal/service/question"
	"github.com/heartmarshall/quiz-backend/internal/service/user"
	"github.com/heartmarshall/quiz-backend/internal/transport/graphql/executor"
)

// userService defines what resolver needs from User service.
type userService interface {
	GetMe(ctx context.Context) (*domain.User, error)
	GetUser(ctx context.Context, rawID string) (*domain.User, error)
	UpdateMe(ctx context.Context, input user.UpdateMeInput) (*domain.User, error)
	DeleteMe(ctx context.Context) (*domain.User, error)
}

// authService defines what resolver needs from Auth service.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, input auth.AuthenticateInput) (*auth.AuthResult, error)
}

// categoryService defines what resolver needs from Category service.
type categoryService interface {
	Get(ctx context.Context, rawID string) (*domain.Category, error)
	List(ctx context.Context, input category.ListCategoriesInput) ([]domain.Category, error)
	Create(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, input category.UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, rawID string) (*domain.Category, error)
	ToggleApprove(ctx context.Context, rawID string) (*domain.Category, error)
	Rate(ctx context.Context, input category.RateCategoryInput) (*domain.Category, error)
}

// questionService defines what resolver needs from Question service.
type questionService interface {
	Get(ctx context.Context, rawID string) (*domain.Question, error)
	List(ctx context.Context, input question.ListQuestionsInput) ([]domain.Question, error)
	Create(ctx context.Context, input question.CreateQuestionInput) (*domain.Question, error)
	Update(ctx context.Context, input question.UpdateQuestionInput) (*domain.Question, error)
	Delete(ctx context.Context, rawID string) (*domain.Question, error)
	ToggleApprove(ctx context.Context, rawID string) (*domain.Question, error)
	Rate(ctx context.Context, input question.RateQuestionInput) (*domain.Question, error)
}

// examService defines what resolver needs from Exam service.
type examService interface {
	Get(ctx context.Context, rawID string) (*domain.Exam, error)
	List(ctx context.Context, input exam.ListExamsInput) ([]domain.Exam, error)
	GetQuestion(ctx context.Context, input exam.GetExamQuestionInput) (*exam.QuestionView, error)
	Create(ctx context.Context, input exam.CreateExamInput) (*domain.Exam, error)
	Answer(ctx context.Context, input exam.AnswerInput) (*domain.Exam, error)
	Complete(ctx context.Context, rawID string) (*domain.Exam, error)
	Delete(ctx context.Context, rawID string) (*domain.Exam, error)
}

// activityService defines what resolver needs from Activity service.
type activityService interface {
	List(ctx context.Context, input activity.ListActivitiesInput) ([]domain.Activity, error)
}

// ratingService defines what resolver needs from Rating service.
type ratingService interface {
	TopCategories(ctx context.Context, limit int) ([]domain.Category, error)
}

// Services bundles the application services the schema is served from.
type Services struct {
	Users      userService
	Auth       authService
	Categories categoryService
	Questions  questionService
	Exams      examService
	Activities activityService
	Ratings    ratingService
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	users      userService
	auth       authService
	categories categoryService
	questions  questionService
	exams      examService
	activities activityService
	ratings    ratingService
	hierarchy  permission.Hierarchy
	maxLimit   int
	log        *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies. List
// fields reject a pagination limit above maxLimit.
func NewResolver(log *slog.Logger, services Services, hierarchy permission.Hierarchy, maxLimit int) *Resolver {
	return &Resolver{
		users:      services.Users,
		auth:       services.Auth,
		categories: services.Categories,
		questions:  services.Questions,
		exams:      services.Exams,
		activities: services.Activities,
		ratings:    services.Ratings,
		hierarchy:  hierarchy,
		maxLimit:   maxLimit,
		log:        log.With("component", "graphql"),
	}
}

// Resolvers returns the field resolver table for every schema type.
func (r *Resolver) Resolvers() executor.Resolvers {
	return executor.Resolvers{
		"Query":               r.query(),
		"Mutation":            r.mutation(),
		"User":                userFields,
		"Rating":              ratingFields,
		"RatingMarkBucket":    ratingMarkBucketFields,
		"CategoryExamState":   categoryExamStateFields,
		"Category":            categoryFields,
		"QuestionChoice":      questionChoiceFields,
		"Question":            questionFields,
		"ExamQuestion":        examQuestionFields,
		"Exam":                examFields,
		"ExamQuestionView":    examQuestionViewFields,
		"Activity":            activityFields,
		"AuthenticationToken": authenticationTokenFields,
		"PermissionGrant":     permissionGrantFields,
	}
}

// field adapts a resolver over a typed parent object.
func field[T any](fn func(ctx context.Context, obj *T) (any, error)) executor.FieldFunc {
	return func(ctx context.Context, obj any, _ map[string]any) (any, error) {
		return fn(ctx, obj.(*T))
	}
}

// prop adapts a plain accessor of a typed parent object.
func prop[T any](fn func(obj *T) any) executor.FieldFunc {
	return func(_ context.Context, obj any, _ map[string]any) (any, error) {
		return fn(obj.(*T)), nil
	}
}

// root adapts a root field that only reads its arguments.
func root(fn func(ctx context.Context, args map[string]any) (any, error)) executor.FieldFunc {
	return func(ctx context.Context, _ any, args map[string]any) (any, error) {
		return fn(ctx, args)
	}
}
