package resolver

import (
	"context"
	"fmt"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/service/activity"
	"github.com/heartmarshall/quiz-backend/internal/service/category"
	"github.com/heartmarshall/quiz-backend/internal/service/exam"
	"github.com/heartmarshall/quiz-backend/internal/service/question"
	"github.com/heartmarshall/quiz-backend/internal/transport/graphql/executor"
)

const defaultLimit = 20

type page struct {
	Limit  int
	Offset int
}

// pagination reads the optional pagination argument, applying the schema
// defaults when it is omitted.
func (r *Resolver) pagination(args map[string]any) (page, error) {
	p := page{Limit: defaultLimit}
	if raw, ok := args["pagination"].(map[string]any); ok {
		if err := executor.Decode(raw, &p); err != nil {
			return page{}, err
		}
	}
	if r.maxLimit > 0 && p.Limit > r.maxLimit {
		return page{}, domain.NewValidationError("limit", fmt.Sprintf("must be at most %d", r.maxLimit))
	}
	return p, nil
}

// idArg reads a required ID argument.
func idArg(args map[string]any, name string) (string, error) {
	return executor.Arg[string](args, name)
}

func (r *Resolver) query() map[string]executor.FieldFunc {
	return map[string]executor.FieldFunc{
		"me": root(func(ctx context.Context, _ map[string]any) (any, error) {
			return r.users.GetMe(ctx)
		}),
		"user": root(func(ctx context.Context, args map[string]any) (any, error) {
			id, err := idArg(args, "id")
			if err != nil {
				return nil, err
			}
			return r.users.GetUser(ctx, id)
		}),
		"category": root(func(ctx context.Context, args map[string]any) (any, error) {
			id, err := idArg(args, "id")
			if err != nil {
				return nil, err
			}
			return r.categories.Get(ctx, id)
		}),
		"categories":    root(r.listCategories),
		"topCategories": root(r.topCategories),
		"question": root(func(ctx context.Context, args map[string]any) (any, error) {
			id, err := idArg(args, "id")
			if err != nil {
				return nil, err
			}
			return r.questions.Get(ctx, id)
		}),
		"questions": root(r.listQuestions),
		"exam": root(func(ctx context.Context, args map[string]any) (any, error) {
			id, err := idArg(args, "id")
			if err != nil {
				return nil, err
			}
			return r.exams.Get(ctx, id)
		}),
		"exams":        root(r.listExams),
		"examQuestion": root(r.examQuestion),
		"activities":   root(r.listActivities),
		"permission": root(func(context.Context, map[string]any) (any, error) {
			return r.permissionGrants(), nil
		}),
	}
}

func (r *Resolver) listCategories(ctx context.Context, args map[string]any) (any, error) {
	var input category.ListCategoriesInput
	if err := executor.Decode(args["filter"], &input); err != nil {
		return nil, err
	}
	p, err := r.pagination(args)
	if err != nil {
		return nil, err
	}
	input.Limit, input.Offset = p.Limit, p.Offset
	return r.categories.List(ctx, input)
}

func (r *Resolver) topCategories(ctx context.Context, args map[string]any) (any, error) {
	limit, err := executor.Arg[int](args, "limit")
	if err != nil {
		return nil, err
	}
	return r.ratings.TopCategories(ctx, limit)
}

func (r *Resolver) listQuestions(ctx context.Context, args map[string]any) (any, error) {
	var input question.ListQuestionsInput
	if err := executor.Decode(args["filter"], &input); err != nil {
		return nil, err
	}
	p, err := r.pagination(args)
	if err != nil {
		return nil, err
	}
	input.Limit, input.Offset = p.Limit, p.Offset
	return r.questions.List(ctx, input)
}

func (r *Resolver) listExams(ctx context.Context, args map[string]any) (any, error) {
	var input exam.ListExamsInput
	if err := executor.Decode(args["filter"], &input); err != nil {
		return nil, err
	}
	p, err := r.pagination(args)
	if err != nil {
		return nil, err
	}
	input.Limit, input.Offset = p.Limit, p.Offset
	return r.exams.List(ctx, input)
}

func (r *Resolver) examQuestion(ctx context.Context, args map[string]any) (any, error) {
	var input exam.GetExamQuestionInput
	if err := executor.Decode(args, &input); err != nil {
		return nil, err
	}
	return r.exams.GetQuestion(ctx, input)
}

func (r *Resolver) listActivities(ctx context.Context, args map[string]any) (any, error) {
	var input activity.ListActivitiesInput
	if err := executor.Decode(args["filter"], &input); err != nil {
		return nil, err
	}
	p, err := r.pagination(args)
	if err != nil {
		return nil, err
	}
	input.Limit, input.Offset = p.Limit, p.Offset
	return r.activities.List(ctx, input)
}
