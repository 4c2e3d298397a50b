// Package activity implements the append-only Activity repository using
// PostgreSQL.
package activity

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/quiz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quiz-backend/internal/domain"
)

var columns = []string{"id", "event", "creator_id", "category_id", "question_id", "exam_id", "target_name", "created_at"}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends an activity record.
func (r *Repo) Create(ctx context.Context, a *domain.Activity) error {
	sql, args, err := postgres.Builder().Insert("activities").
		Columns(columns...).
		Values(a.ID, string(a.Event), a.CreatorID, a.CategoryID, a.QuestionID, a.ExamID, a.TargetName, a.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("activity %s: build insert: %w", a.ID, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "activity", a.ID)
	}
	return nil
}

// List returns activities newest first.
func (r *Repo) List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error) {
	b := postgres.Builder().Select(columns...).From("activities").OrderBy("created_at DESC", "id DESC")
	if f.CreatorID != nil {
		b = b.Where(sq.Eq{"creator_id": *f.CreatorID})
	}
	if f.Event != nil {
		b = b.Where(sq.Eq{"event": string(*f.Event)})
	}

	sql, args, err := postgres.Paginate(b, f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("activity: build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "activity", "")
	}

	out, err := pgx.CollectRows(rows, scanActivity)
	if err != nil {
		return nil, postgres.MapError(err, "activity", "")
	}
	return out, nil
}

func scanActivity(row pgx.CollectableRow) (domain.Activity, error) {
	var (
		a                          domain.Activity
		event                      string
		category, question, examID *string
	)

	if err := row.Scan(&a.ID, &event, &a.CreatorID, &category, &question, &examID, &a.TargetName, &a.CreatedAt); err != nil {
		return domain.Activity{}, err
	}

	a.Event = domain.ActivityEvent(event)
	a.CategoryID = postgres.OptionalID(category)
	a.QuestionID = postgres.OptionalID(question)
	a.ExamID = postgres.OptionalID(examID)
	return a, nil
}
