// Package exam implements the Exam repository using PostgreSQL.
package exam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/quiz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quiz-backend/internal/domain"
)

var columns = []string{
	"id", "category_id", "creator_id", "owner_id", "questions", "question_number",
	"correct_answer_count", "completed_at",
	"created_at", "updated_at", "deleted_at",
}

var conflicts = postgres.Conflicts{
	"exams_in_progress_key": domain.ErrExamTaken,
}

// Repo provides exam persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new exam repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a live exam.
func (r *Repo) GetByID(ctx context.Context, id domain.ID) (*domain.Exam, error) {
	sql, args, err := r.selectLive().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("exam %s: build select: %w", id, err)
	}

	e, err := scanExam(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "exam", id)
	}
	return e, nil
}

// List returns live exams matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.ExamFilter) ([]domain.Exam, error) {
	b := r.selectLive().OrderBy("created_at DESC", "id DESC")

	if f.OwnerID != nil {
		b = b.Where(sq.Eq{"owner_id": *f.OwnerID})
	}
	if f.CategoryID != nil {
		b = b.Where(sq.Eq{"category_id": *f.CategoryID})
	}
	if f.Completed != nil {
		if *f.Completed {
			b = b.Where(sq.NotEq{"completed_at": nil})
		} else {
			b = b.Where(sq.Eq{"completed_at": nil})
		}
	}

	return r.list(ctx, postgres.Paginate(b, f.Limit, f.Offset))
}

// ListByOwnerAndCategory returns every live exam an owner took in a category.
func (r *Repo) ListByOwnerAndCategory(ctx context.Context, ownerID, categoryID domain.ID) ([]domain.Exam, error) {
	return r.list(ctx, r.selectLive().
		Where(sq.Eq{"owner_id": ownerID, "category_id": categoryID}).
		OrderBy("created_at", "id"))
}

func (r *Repo) selectLive() sq.SelectBuilder {
	return postgres.Builder().Select(columns...).From("exams").Where(postgres.Live(""))
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Exam, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("exam: build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "exam", "")
	}
	defer rows.Close()

	out := []domain.Exam{}
	for rows.Next() {
		e, err := scanExam(rows)
		if err != nil {
			return nil, postgres.MapError(err, "exam", "")
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "exam", "")
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts an exam. A second running exam for the same category and
// owner yields domain.ErrExamTaken.
func (r *Repo) Create(ctx context.Context, e *domain.Exam) (*domain.Exam, error) {
	snapshot, err := json.Marshal(e.Questions)
	if err != nil {
		return nil, fmt.Errorf("exam %s: marshal questions: %w", e.ID, err)
	}

	sql, args, err := postgres.Builder().Insert("exams").
		Columns("id", "category_id", "creator_id", "owner_id", "questions", "question_number", "created_at").
		Values(e.ID, e.CategoryID, e.CreatorID, e.OwnerID, snapshot, e.QuestionNumber, e.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("exam %s: build insert: %w", e.ID, err)
	}

	created, err := scanExam(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, conflicts.Map(err, "exam", e.ID)
	}
	return created, nil
}

// SetQuestionNumber moves the cursor of a live exam.
func (r *Repo) SetQuestionNumber(ctx context.Context, id domain.ID, number int) (*domain.Exam, error) {
	return r.exec(ctx, id, r.update(id).Set("question_number", number))
}

// SetAnswer records the answer of one snapshot entry of a running exam.
func (r *Repo) SetAnswer(ctx context.Context, id domain.ID, number int, answer domain.ExamQuestion) (*domain.Exam, error) {
	data, err := json.Marshal(answer)
	if err != nil {
		return nil, fmt.Errorf("exam %s: marshal answer: %w", id, err)
	}

	b := r.update(id).
		Set("questions", sq.Expr("jsonb_set(questions, ARRAY[?::text], ?::jsonb, false)", strconv.Itoa(number), data)).
		Where(sq.Eq{"completed_at": nil})

	return r.execRunning(ctx, id, b)
}

// Complete finalizes a running exam with its score.
func (r *Repo) Complete(ctx context.Context, id domain.ID, correctAnswerCount int, at time.Time) (*domain.Exam, error) {
	b := r.update(id).
		Set("correct_answer_count", correctAnswerCount).
		Set("completed_at", at).
		Where(sq.Eq{"completed_at": nil})

	return r.execRunning(ctx, id, b)
}

// SoftDelete marks the exam as deleted.
func (r *Repo) SoftDelete(ctx context.Context, id domain.ID) (*domain.Exam, error) {
	return r.exec(ctx, id, r.update(id).Set("deleted_at", time.Now().UTC()))
}

// HardDeleteOld physically removes exams soft-deleted before threshold.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	sql, args, err := postgres.Builder().Delete("exams").
		Where(sq.Lt{"deleted_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("exam: build hard delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("exam: hard delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) update(id domain.ID) sq.UpdateBuilder {
	return postgres.Builder().Update("exams").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Where(postgres.Live("")).
		Suffix("RETURNING " + strings.Join(columns, ", "))
}

func (r *Repo) exec(ctx context.Context, id domain.ID, b sq.UpdateBuilder) (*domain.Exam, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("exam %s: build update: %w", id, err)
	}

	e, err := scanExam(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "exam", id)
	}
	return e, nil
}

// execRunning runs an update restricted to running exams. When nothing
// matched it tells a completed exam apart from a missing one.
func (r *Repo) execRunning(ctx context.Context, id domain.ID, b sq.UpdateBuilder) (*domain.Exam, error) {
	e, err := r.exec(ctx, id, b)
	if err == nil || !errors.Is(err, domain.ErrNotFound) {
		return e, err
	}

	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	if current.IsCompleted() {
		return nil, fmt.Errorf("exam %s: %w", id, domain.ErrExamCompleted)
	}
	return nil, err
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func scanExam(row pgx.Row) (*domain.Exam, error) {
	var (
		e        domain.Exam
		snapshot []byte
	)

	err := row.Scan(&e.ID, &e.CategoryID, &e.CreatorID, &e.OwnerID, &snapshot, &e.QuestionNumber,
		&e.CorrectAnswerCount, &e.CompletedAt,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(snapshot, &e.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	return &e, nil
}
