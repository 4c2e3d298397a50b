package resolver

import (
	"context"

	"github.com/heartmarshall/quiz-backend/internal/service/auth"
	"github.com/heartmarshall/quiz-backend/internal/service/category"
	"github.com/heartmarshall/quiz-backend/internal/service/question"
	"github.com/heartmarshall/quiz-backend/internal/transport/graphql/executor"
)

// byID adapts a service call that takes the raw id argument.
func byID[T any](name string, fn func(ctx context.Context, rawID string) (*T, error)) executor.FieldFunc {
	return root(func(ctx context.Context, args map[string]any) (any, error) {
		id, err := idArg(args, name)
		if err != nil {
			return nil, err
		}
		return fn(ctx, id)
	})
}

// withInput adapts a service call taking the decoded input argument.
func withInput[I, T any](fn func(ctx context.Context, input I) (*T, error)) executor.FieldFunc {
	return root(func(ctx context.Context, args map[string]any) (any, error) {
		input, err := executor.Arg[I](args, "input")
		if err != nil {
			return nil, err
		}
		return fn(ctx, input)
	})
}

func (r *Resolver) mutation() map[string]executor.FieldFunc {
	return map[string]executor.FieldFunc{
		"createMe": withInput(r.auth.Register),
		"updateMe": withInput(r.users.UpdateMe),
		"deleteMe": root(func(ctx context.Context, _ map[string]any) (any, error) {
			return r.users.DeleteMe(ctx)
		}),
		"createAuthenticationToken": root(func(ctx context.Context, args map[string]any) (any, error) {
			var input auth.AuthenticateInput
			if err := executor.Decode(args, &input); err != nil {
				return nil, err
			}
			return r.auth.Authenticate(ctx, input)
		}),

		"createCategory": withInput(r.categories.Create),
		"updateCategory": root(func(ctx context.Context, args map[string]any) (any, error) {
			input, err := executor.Arg[category.UpdateCategoryInput](args, "input")
			if err != nil {
				return nil, err
			}
			if input.CategoryID, err = idArg(args, "id"); err != nil {
				return nil, err
			}
			return r.categories.Update(ctx, input)
		}),
		"deleteCategory":        byID("id", r.categories.Delete),
		"toggleCategoryApprove": byID("id", r.categories.ToggleApprove),
		"rateCategory": root(func(ctx context.Context, args map[string]any) (any, error) {
			var input category.RateCategoryInput
			if err := executor.Decode(map[string]any{"categoryId": args["id"], "mark": args["mark"]}, &input); err != nil {
				return nil, err
			}
			return r.categories.Rate(ctx, input)
		}),

		"createQuestion": withInput(r.questions.Create),
		"updateQuestion": root(func(ctx context.Context, args map[string]any) (any, error) {
			input, err := executor.Arg[question.UpdateQuestionInput](args, "input")
			if err != nil {
				return nil, err
			}
			if input.QuestionID, err = idArg(args, "id"); err != nil {
				return nil, err
			}
			return r.questions.Update(ctx, input)
		}),
		"deleteQuestion":        byID("id", r.questions.Delete),
		"toggleQuestionApprove": byID("id", r.questions.ToggleApprove),
		"rateQuestion": root(func(ctx context.Context, args map[string]any) (any, error) {
			var input question.RateQuestionInput
			if err := executor.Decode(map[string]any{"questionId": args["id"], "mark": args["mark"]}, &input); err != nil {
				return nil, err
			}
			return r.questions.Rate(ctx, input)
		}),

		"createExam":               withInput(r.exams.Create),
		"createExamQuestionAnswer": withInput(r.exams.Answer),
		"createExamCompletion":     byID("examId", r.exams.Complete),
		"deleteExam":               byID("id", r.exams.Delete),
	}
}
