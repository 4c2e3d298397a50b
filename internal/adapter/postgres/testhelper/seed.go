package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return domain.NewID().String()[12:]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a user with the Regular role and empty denormalized maps.
func SeedUser(t *testing.T, pool *pgxpool.Pool, permissions ...domain.Permission) domain.User {
	t.Helper()

	if len(permissions) == 0 {
		permissions = domain.DefaultPermissions()
	}
	perms := make([]string, len(permissions))
	for i, p := range permissions {
		perms[i] = string(p)
	}

	suffix := uniqueSuffix()
	user := domain.User{
		ID:                  domain.NewID(),
		Email:               "testuser-" + suffix + "@example.com",
		Name:                "Test User " + suffix,
		PasswordHash:        "not-a-real-hash",
		Permissions:         permissions,
		CategoryRatingMarks: domain.NewRatingMarkBuckets(),
		QuestionRatingMarks: domain.NewRatingMarkBuckets(),
		CategoryExams:       map[domain.ID]domain.CategoryExamState{},
		CreatedAt:           now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, permissions, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, perms, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCategory creates a category created by creator. Unapproved categories
// are owned by their creator.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, creator domain.ID, approved bool) domain.Category {
	t.Helper()

	c := domain.Category{
		ID:        domain.NewID(),
		CreatorID: creator,
		Approval:  domain.Pending(creator),
		Name:      "Category " + uniqueSuffix(),
		CreatedAt: now(),
	}
	if approved {
		c.Approval = domain.Approved()
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, creator_id, owner_id, name, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.CreatorID, c.Approval.OwnerPtr(), c.Name, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// SeedQuestion creates a CHOICE question with three options, the second one
// correct, and bumps the category counters.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, category domain.Category, creator domain.ID, approved bool) domain.Question {
	t.Helper()

	q := domain.Question{
		ID:         domain.NewID(),
		CategoryID: category.ID,
		CreatorID:  creator,
		Approval:   domain.Pending(creator),
		Type:       domain.QuestionTypeChoice,
		Difficulty: domain.DifficultyNormal,
		Title:      "Question " + uniqueSuffix() + "?",
		Choices: []domain.QuestionChoice{
			{Title: "first"},
			{Title: "second", Correct: true},
			{Title: "third"},
		},
		CreatedAt: now(),
	}
	if approved {
		q.Approval = domain.Approved()
	}

	choices, err := json.Marshal(q.Choices)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion marshal: %v", err)
	}

	ctx := context.Background()
	_, err = pool.Exec(ctx,
		`INSERT INTO questions (id, category_id, creator_id, owner_id, type, difficulty, title, choices, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		q.ID, q.CategoryID, q.CreatorID, q.Approval.OwnerPtr(), string(q.Type), string(q.Difficulty), q.Title, choices, q.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion: %v", err)
	}

	approvedInc := 0
	if approved {
		approvedInc = 1
	}
	_, err = pool.Exec(ctx,
		`UPDATE categories
		 SET question_count = question_count + 1, approved_question_count = approved_question_count + $2
		 WHERE id = $1`,
		category.ID, approvedInc,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion counters: %v", err)
	}

	return q
}

// SeedExam creates an in-progress exam over the given questions.
func SeedExam(t *testing.T, pool *pgxpool.Pool, category domain.ID, owner domain.ID, questions ...domain.ID) domain.Exam {
	t.Helper()

	e := domain.Exam{
		ID:         domain.NewID(),
		CategoryID: category,
		CreatorID:  owner,
		OwnerID:    owner,
		Questions:  make([]domain.ExamQuestion, len(questions)),
		CreatedAt:  now(),
	}
	for i, q := range questions {
		e.Questions[i] = domain.ExamQuestion{QuestionID: q}
	}

	snapshot, err := json.Marshal(e.Questions)
	if err != nil {
		t.Fatalf("testhelper: SeedExam marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO exams (id, category_id, creator_id, owner_id, questions, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.CategoryID, e.CreatorID, e.OwnerID, snapshot, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedExam: %v", err)
	}

	return e
}
