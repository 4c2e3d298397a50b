// Package question implements the Question repository using PostgreSQL.
package question

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/quiz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quiz-backend/internal/domain"
)

var columns = []string{
	"id", "category_id", "creator_id", "owner_id", "type", "difficulty", "title", "choices",
	"rating_mark_count", "rating_average",
	"created_at", "updated_at", "deleted_at",
}

var conflicts = postgres.Conflicts{
	"questions_title_live_key": domain.ErrQuestionTitleTaken,
}

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new question repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a live question.
func (r *Repo) GetByID(ctx context.Context, id domain.ID) (*domain.Question, error) {
	sql, args, err := r.selectLive().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("question %s: build select: %w", id, err)
	}

	q, err := scanQuestion(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "question", id)
	}
	return q, nil
}

// ListByIDs returns the live questions among ids.
func (r *Repo) ListByIDs(ctx context.Context, ids []domain.ID) ([]domain.Question, error) {
	if len(ids) == 0 {
		return []domain.Question{}, nil
	}
	return r.list(ctx, r.selectLive().Where(sq.Eq{"id": postgres.IDStrings(ids)}))
}

// List returns live questions matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.QuestionFilter) ([]domain.Question, error) {
	b := r.selectLive().OrderBy("created_at DESC", "id DESC")

	if f.CategoryID != nil {
		b = b.Where(sq.Eq{"category_id": *f.CategoryID})
	}
	if f.Search != nil && *f.Search != "" {
		b = b.Where(postgres.ILike("title", *f.Search))
	}
	if f.Approved != nil {
		if *f.Approved {
			b = b.Where(sq.Eq{"owner_id": nil})
		} else {
			b = b.Where(sq.NotEq{"owner_id": nil})
		}
	}
	if f.OwnerID != nil {
		b = b.Where(sq.Eq{"owner_id": *f.OwnerID})
	}

	return r.list(ctx, postgres.Paginate(b, f.Limit, f.Offset))
}

// ApprovedIDs returns the ids of every live approved question of a category,
// oldest first.
func (r *Repo) ApprovedIDs(ctx context.Context, categoryID domain.ID) ([]domain.ID, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id FROM questions
		 WHERE category_id = $1 AND owner_id IS NULL AND deleted_at IS NULL
		 ORDER BY created_at, id`,
		categoryID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "category", categoryID)
	}

	ids, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ID, error) {
		var id domain.ID
		err := row.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "category", categoryID)
	}
	return ids, nil
}

// CountByCategory counts the live questions of a category and how many of
// them are approved.
func (r *Repo) CountByCategory(ctx context.Context, categoryID domain.ID) (total, approved int, err error) {
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*), count(*) FILTER (WHERE owner_id IS NULL)
		 FROM questions WHERE category_id = $1 AND deleted_at IS NULL`,
		categoryID,
	).Scan(&total, &approved)
	if err != nil {
		return 0, 0, postgres.MapError(err, "category", categoryID)
	}
	return total, approved, nil
}

func (r *Repo) selectLive() sq.SelectBuilder {
	return postgres.Builder().Select(columns...).From("questions").Where(postgres.Live(""))
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Question, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("question: build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "question", "")
	}
	defer rows.Close()

	out := []domain.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, postgres.MapError(err, "question", "")
		}
		out = append(out, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "question", "")
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a question. A live question with the same title yields
// domain.ErrQuestionTitleTaken.
func (r *Repo) Create(ctx context.Context, q *domain.Question) (*domain.Question, error) {
	choices, err := json.Marshal(nonNilChoices(q.Choices))
	if err != nil {
		return nil, fmt.Errorf("question %s: marshal choices: %w", q.ID, err)
	}

	sql, args, err := postgres.Builder().Insert("questions").
		Columns("id", "category_id", "creator_id", "owner_id", "type", "difficulty", "title", "choices", "created_at").
		Values(q.ID, q.CategoryID, q.CreatorID, q.Approval.OwnerPtr(), string(q.Type), string(q.Difficulty), q.Title, choices, q.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("question %s: build insert: %w", q.ID, err)
	}

	created, err := scanQuestion(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, conflicts.Map(err, "question", q.ID)
	}
	return created, nil
}

// Update changes the non-nil fields. A nil Choices slice leaves the options
// untouched.
func (r *Repo) Update(ctx context.Context, id domain.ID, params domain.QuestionUpdateParams) (*domain.Question, error) {
	b := r.update(id)
	if params.Type != nil {
		b = b.Set("type", string(*params.Type))
	}
	if params.Difficulty != nil {
		b = b.Set("difficulty", string(*params.Difficulty))
	}
	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Choices != nil {
		choices, err := json.Marshal(params.Choices)
		if err != nil {
			return nil, fmt.Errorf("question %s: marshal choices: %w", id, err)
		}
		b = b.Set("choices", choices)
	}
	return r.exec(ctx, id, b)
}

// SetApproval stores the approval state.
func (r *Repo) SetApproval(ctx context.Context, id domain.ID, approval domain.Approval) (*domain.Question, error) {
	return r.exec(ctx, id, r.update(id).Set("owner_id", approval.OwnerPtr()))
}

// SetRating stores a recomputed rating aggregate.
func (r *Repo) SetRating(ctx context.Context, id domain.ID, rating domain.Rating) (*domain.Question, error) {
	return r.exec(ctx, id, r.update(id).
		Set("rating_mark_count", rating.MarkCount).
		Set("rating_average", rating.Average))
}

// SoftDelete marks the question as deleted.
func (r *Repo) SoftDelete(ctx context.Context, id domain.ID) error {
	_, err := r.exec(ctx, id, r.update(id).Set("deleted_at", time.Now().UTC()))
	return err
}

func (r *Repo) update(id domain.ID) sq.UpdateBuilder {
	return postgres.Builder().Update("questions").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Where(postgres.Live("")).
		Suffix("RETURNING " + strings.Join(columns, ", "))
}

func (r *Repo) exec(ctx context.Context, id domain.ID, b sq.UpdateBuilder) (*domain.Question, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("question %s: build update: %w", id, err)
	}

	q, err := scanQuestion(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, conflicts.Map(err, "question", id)
	}
	return q, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func nonNilChoices(c []domain.QuestionChoice) []domain.QuestionChoice {
	if c == nil {
		return []domain.QuestionChoice{}
	}
	return c
}

func scanQuestion(row pgx.Row) (*domain.Question, error) {
	var (
		q           domain.Question
		owner       *string
		qType       string
		difficulty  string
		choices     []byte
		markCount   int
		markAverage float64
	)

	err := row.Scan(&q.ID, &q.CategoryID, &q.CreatorID, &owner, &qType, &difficulty, &q.Title, &choices,
		&markCount, &markAverage,
		&q.CreatedAt, &q.UpdatedAt, &q.DeletedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(choices, &q.Choices); err != nil {
		return nil, fmt.Errorf("unmarshal choices: %w", err)
	}

	q.Type = domain.QuestionType(qType)
	q.Difficulty = domain.Difficulty(difficulty)
	q.Approval = domain.ApprovalFromOwner(postgres.OptionalID(owner))
	q.Rating = postgres.RatingFrom(markCount, markAverage)
	return &q, nil
}
