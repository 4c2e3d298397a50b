// Package provider loads entities by id and turns missing or soft-deleted
// rows into the named not-found errors the API reports.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.User, error)
}

type categoryRepo interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.Category, error)
}

type questionRepo interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.Question, error)
}

type examRepo interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.Exam, error)
}

// Provider resolves ids to live entities.
type Provider struct {
	users      userRepo
	categories categoryRepo
	questions  questionRepo
	exams      examRepo
}

// New creates a Provider.
func New(users userRepo, categories categoryRepo, questions questionRepo, exams examRepo) *Provider {
	return &Provider{
		users:      users,
		categories: categories,
		questions:  questions,
		exams:      exams,
	}
}

func get[T any](
	ctx context.Context,
	id domain.ID,
	load func(context.Context, domain.ID) (*T, error),
	notFound func(domain.ID) *domain.Error,
) (*T, error) {
	v, err := load(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", id, err)
	}
	return v, nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func (p *Provider) User(ctx context.Context, id domain.ID) (*domain.User, error) {
	return get(ctx, id, p.users.GetByID, domain.NewUserNotFoundError)
}

// UserByString parses raw as the id of field and loads the user.
func (p *Provider) UserByString(ctx context.Context, field, raw string) (*domain.User, error) {
	id, err := domain.ParseID(field, raw)
	if err != nil {
		return nil, err
	}
	return p.User(ctx, id)
}

// CurrentUser loads the authenticated user. Anonymous requests and tokens
// whose user no longer exists yield domain.ErrAuthorizationRequired.
func (p *Provider) CurrentUser(ctx context.Context) (*domain.User, error) {
	raw, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok || !domain.IsValidID(raw) {
		return nil, domain.ErrAuthorizationRequired
	}
	u, err := p.User(ctx, domain.ID(raw))
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrAuthorizationRequired
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// OptionalUser is CurrentUser for operations that also serve anonymous
// callers. It returns nil without error when nobody is authenticated.
func (p *Provider) OptionalUser(ctx context.Context) (*domain.User, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, nil
	}
	return p.CurrentUser(ctx)
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

func (p *Provider) Category(ctx context.Context, id domain.ID) (*domain.Category, error) {
	return get(ctx, id, p.categories.GetByID, domain.NewCategoryNotFoundError)
}

func (p *Provider) CategoryByString(ctx context.Context, field, raw string) (*domain.Category, error) {
	id, err := domain.ParseID(field, raw)
	if err != nil {
		return nil, err
	}
	return p.Category(ctx, id)
}

// ---------------------------------------------------------------------------
// Questions
// ---------------------------------------------------------------------------

func (p *Provider) Question(ctx context.Context, id domain.ID) (*domain.Question, error) {
	return get(ctx, id, p.questions.GetByID, domain.NewQuestionNotFoundError)
}

func (p *Provider) QuestionByString(ctx context.Context, field, raw string) (*domain.Question, error) {
	id, err := domain.ParseID(field, raw)
	if err != nil {
		return nil, err
	}
	return p.Question(ctx, id)
}

// ---------------------------------------------------------------------------
// Exams
// ---------------------------------------------------------------------------

func (p *Provider) Exam(ctx context.Context, id domain.ID) (*domain.Exam, error) {
	return get(ctx, id, p.exams.GetByID, domain.NewExamNotFoundError)
}

func (p *Provider) ExamByString(ctx context.Context, field, raw string) (*domain.Exam, error) {
	id, err := domain.ParseID(field, raw)
	if err != nil {
		return nil, err
	}
	return p.Exam(ctx, id)
}
