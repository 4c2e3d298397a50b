package resolver

import (
	"context"
	"maps"
	"slices"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/service/auth"
	"github.com/heartmarshall/quiz-backend/internal/service/exam"
	"github.com/heartmarshall/quiz-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/quiz-backend/internal/transport/graphql/executor"
)

type ratingMarkBucket struct {
	Mark domain.Mark
	IDs  []domain.ID
}

func bucketList(b domain.RatingMarkBuckets) []ratingMarkBucket {
	out := make([]ratingMarkBucket, 0, len(domain.AllMarks()))
	for _, m := range domain.AllMarks() {
		ids := b[m]
		if ids == nil {
			ids = []domain.ID{}
		}
		out = append(out, ratingMarkBucket{Mark: m, IDs: ids})
	}
	return out
}

type categoryExamState struct {
	CategoryID domain.ID
	domain.CategoryExamState
}

func categoryExamList(states map[domain.ID]domain.CategoryExamState) []categoryExamState {
	out := make([]categoryExamState, 0, len(states))
	for _, id := range slices.Sorted(maps.Keys(states)) {
		out = append(out, categoryExamState{CategoryID: id, CategoryExamState: states[id]})
	}
	return out
}

type examQuestion struct {
	Number int
	domain.ExamQuestion
}

type permissionGrant struct {
	Role        domain.Permission
	Permissions []domain.Permission
}

func (r *Resolver) permissionGrants() []permissionGrant {
	roles := r.hierarchy.Roles()
	out := make([]permissionGrant, 0, len(roles))
	for _, role := range roles {
		out = append(out, permissionGrant{Role: role, Permissions: r.hierarchy[role]})
	}
	return out
}

// loadCategory resolves a category through the request's dataloader.
func loadCategory(ctx context.Context, id domain.ID) (any, error) {
	return dataloader.FromContext(ctx).CategoryByID.Load(ctx, id)()
}

var userFields = map[string]executor.FieldFunc{
	"id":                  prop(func(u *domain.User) any { return u.ID }),
	"email":               prop(func(u *domain.User) any { return u.Email }),
	"name":                prop(func(u *domain.User) any { return u.Name }),
	"permissions":         prop(func(u *domain.User) any { return u.Permissions }),
	"categoryRatingMarks": prop(func(u *domain.User) any { return bucketList(u.CategoryRatingMarks) }),
	"questionRatingMarks": prop(func(u *domain.User) any { return bucketList(u.QuestionRatingMarks) }),
	"categoryExams":       prop(func(u *domain.User) any { return categoryExamList(u.CategoryExams) }),
	"createdAt":           prop(func(u *domain.User) any { return u.CreatedAt }),
	"updatedAt":           prop(func(u *domain.User) any { return u.UpdatedAt }),
}

var ratingFields = map[string]executor.FieldFunc{
	"markCount": prop(func(r *domain.Rating) any { return r.MarkCount }),
	"average":   prop(func(r *domain.Rating) any { return r.Average }),
}

var ratingMarkBucketFields = map[string]executor.FieldFunc{
	"mark": prop(func(b *ratingMarkBucket) any { return b.Mark }),
	"ids":  prop(func(b *ratingMarkBucket) any { return b.IDs }),
}

var categoryExamStateFields = map[string]executor.FieldFunc{
	"categoryId":       prop(func(s *categoryExamState) any { return s.CategoryID }),
	"inProgressExamId": prop(func(s *categoryExamState) any { return s.InProgressExamID }),
	"completedCount":   prop(func(s *categoryExamState) any { return s.CompletedCount }),
}

var categoryFields = map[string]executor.FieldFunc{
	"id":                    prop(func(c *domain.Category) any { return c.ID }),
	"creatorId":             prop(func(c *domain.Category) any { return c.CreatorID }),
	"ownerId":               prop(func(c *domain.Category) any { return c.Approval.OwnerPtr() }),
	"approval":              prop(func(c *domain.Category) any { return c.Approval.State() }),
	"name":                  prop(func(c *domain.Category) any { return c.Name }),
	"description":           prop(func(c *domain.Category) any { return c.Description }),
	"questionCount":         prop(func(c *domain.Category) any { return c.QuestionCount }),
	"approvedQuestionCount": prop(func(c *domain.Category) any { return c.ApprovedQuestionCount }),
	"rating":                prop(func(c *domain.Category) any { return c.Rating }),
	"createdAt":             prop(func(c *domain.Category) any { return c.CreatedAt }),
	"updatedAt":             prop(func(c *domain.Category) any { return c.UpdatedAt }),
}

var questionChoiceFields = map[string]executor.FieldFunc{
	"title":       prop(func(c *domain.QuestionChoice) any { return c.Title }),
	"correct":     prop(func(c *domain.QuestionChoice) any { return c.Correct }),
	"explanation": prop(func(c *domain.QuestionChoice) any { return c.Explanation }),
}

var questionFields = map[string]executor.FieldFunc{
	"id":         prop(func(q *domain.Question) any { return q.ID }),
	"categoryId": prop(func(q *domain.Question) any { return q.CategoryID }),
	"category": field(func(ctx context.Context, q *domain.Question) (any, error) {
		return loadCategory(ctx, q.CategoryID)
	}),
	"creatorId":  prop(func(q *domain.Question) any { return q.CreatorID }),
	"ownerId":    prop(func(q *domain.Question) any { return q.Approval.OwnerPtr() }),
	"approval":   prop(func(q *domain.Question) any { return q.Approval.State() }),
	"type":       prop(func(q *domain.Question) any { return q.Type }),
	"difficulty": prop(func(q *domain.Question) any { return q.Difficulty }),
	"title":      prop(func(q *domain.Question) any { return q.Title }),
	"choices":    prop(func(q *domain.Question) any { return q.Choices }),
	"rating":     prop(func(q *domain.Question) any { return q.Rating }),
	"createdAt":  prop(func(q *domain.Question) any { return q.CreatedAt }),
	"updatedAt":  prop(func(q *domain.Question) any { return q.UpdatedAt }),
}

var examQuestionFields = map[string]executor.FieldFunc{
	"number":     prop(func(q *examQuestion) any { return q.Number }),
	"questionId": prop(func(q *examQuestion) any { return q.QuestionID }),
	"choice":     prop(func(q *examQuestion) any { return q.Choice }),
	"answer":     prop(func(q *examQuestion) any { return q.Answer }),
	"answered":   prop(func(q *examQuestion) any { return q.IsAnswered() }),
}

var examFields = map[string]executor.FieldFunc{
	"id":         prop(func(e *domain.Exam) any { return e.ID }),
	"categoryId": prop(func(e *domain.Exam) any { return e.CategoryID }),
	"category": field(func(ctx context.Context, e *domain.Exam) (any, error) {
		return loadCategory(ctx, e.CategoryID)
	}),
	"creatorId": prop(func(e *domain.Exam) any { return e.CreatorID }),
	"ownerId":   prop(func(e *domain.Exam) any { return e.OwnerID }),
	"questions": prop(func(e *domain.Exam) any {
		out := make([]examQuestion, len(e.Questions))
		for n, q := range e.Questions {
			out[n] = examQuestion{Number: n, ExamQuestion: q}
		}
		return out
	}),
	"questionCount":      prop(func(e *domain.Exam) any { return len(e.Questions) }),
	"answeredCount":      prop(func(e *domain.Exam) any { return e.AnsweredCount() }),
	"questionNumber":     prop(func(e *domain.Exam) any { return e.QuestionNumber }),
	"correctAnswerCount": prop(func(e *domain.Exam) any { return e.VisibleCorrectAnswerCount() }),
	"completedAt":        prop(func(e *domain.Exam) any { return e.CompletedAt }),
	"createdAt":          prop(func(e *domain.Exam) any { return e.CreatedAt }),
	"updatedAt":          prop(func(e *domain.Exam) any { return e.UpdatedAt }),
}

var examQuestionViewFields = map[string]executor.FieldFunc{
	"exam":     prop(func(v *exam.QuestionView) any { return v.Exam }),
	"number":   prop(func(v *exam.QuestionView) any { return v.Number }),
	"choice":   prop(func(v *exam.QuestionView) any { return v.Entry.Choice }),
	"answer":   prop(func(v *exam.QuestionView) any { return v.Entry.Answer }),
	"question": prop(func(v *exam.QuestionView) any { return &v.Question }),
}

var activityFields = map[string]executor.FieldFunc{
	"id":        prop(func(a *domain.Activity) any { return a.ID }),
	"event":     prop(func(a *domain.Activity) any { return a.Event }),
	"creatorId": prop(func(a *domain.Activity) any { return a.CreatorID }),
	"creatorName": field(func(ctx context.Context, a *domain.Activity) (any, error) {
		u, err := dataloader.FromContext(ctx).UserByID.Load(ctx, a.CreatorID)()
		if err != nil || u == nil {
			return nil, err
		}
		return u.Name, nil
	}),
	"categoryId": prop(func(a *domain.Activity) any { return a.CategoryID }),
	"questionId": prop(func(a *domain.Activity) any { return a.QuestionID }),
	"examId":     prop(func(a *domain.Activity) any { return a.ExamID }),
	"targetName": prop(func(a *domain.Activity) any { return a.TargetName }),
	"createdAt":  prop(func(a *domain.Activity) any { return a.CreatedAt }),
}

var authenticationTokenFields = map[string]executor.FieldFunc{
	"token":     prop(func(r *auth.AuthResult) any { return r.Token.Value }),
	"expiresAt": prop(func(r *auth.AuthResult) any { return r.Token.ExpiresAt }),
	"user":      prop(func(r *auth.AuthResult) any { return r.User }),
}

var permissionGrantFields = map[string]executor.FieldFunc{
	"role":        prop(func(g *permissionGrant) any { return g.Role }),
	"permissions": prop(func(g *permissionGrant) any { return g.Permissions }),
}
