// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
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
	"id", "creator_id", "owner_id", "name", "description",
	"question_count", "approved_question_count",
	"rating_mark_count", "rating_average",
	"created_at", "updated_at", "deleted_at",
}

var conflicts = postgres.Conflicts{
	"categories_name_live_key": domain.ErrCategoryNameTaken,
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a live category.
func (r *Repo) GetByID(ctx context.Context, id domain.ID) (*domain.Category, error) {
	sql, args, err := postgres.Builder().Select(columns...).From("categories").
		Where(sq.Eq{"id": id}).Where(postgres.Live("")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("category %s: build select: %w", id, err)
	}

	c, err := scanCategory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return c, nil
}

// ListByIDs returns the live categories among ids.
func (r *Repo) ListByIDs(ctx context.Context, ids []domain.ID) ([]domain.Category, error) {
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}
	return r.list(ctx, postgres.Builder().Select(columns...).From("categories").
		Where(sq.Eq{"id": postgres.IDStrings(ids)}).Where(postgres.Live("")))
}

// List returns live categories matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.CategoryFilter) ([]domain.Category, error) {
	b := postgres.Builder().Select(columns...).From("categories").
		Where(postgres.Live("")).
		OrderBy("created_at DESC", "id DESC")

	if f.Search != nil && *f.Search != "" {
		b = b.Where(postgres.ILike("name", *f.Search))
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

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Category, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("category: build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "category", "")
	}
	defer rows.Close()

	out := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, postgres.MapError(err, "category", "")
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "category", "")
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a category. A live category with the same name yields
// domain.ErrCategoryNameTaken.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	sql, args, err := postgres.Builder().Insert("categories").
		Columns("id", "creator_id", "owner_id", "name", "description", "created_at").
		Values(c.ID, c.CreatorID, c.Approval.OwnerPtr(), c.Name, c.Description, c.CreatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("category %s: build insert: %w", c.ID, err)
	}

	created, err := scanCategory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, conflicts.Map(err, "category", c.ID)
	}
	return created, nil
}

// Update changes the non-nil fields.
func (r *Repo) Update(ctx context.Context, id domain.ID, params domain.CategoryUpdateParams) (*domain.Category, error) {
	b := r.update(id)
	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}
	return r.exec(ctx, id, b)
}

// SetApproval stores the approval state.
func (r *Repo) SetApproval(ctx context.Context, id domain.ID, approval domain.Approval) (*domain.Category, error) {
	return r.exec(ctx, id, r.update(id).Set("owner_id", approval.OwnerPtr()))
}

// SetQuestionCounters stores recomputed question counters.
func (r *Repo) SetQuestionCounters(ctx context.Context, id domain.ID, total, approved int) (*domain.Category, error) {
	return r.exec(ctx, id, r.update(id).
		Set("question_count", total).
		Set("approved_question_count", approved))
}

// SetRating stores a recomputed rating aggregate.
func (r *Repo) SetRating(ctx context.Context, id domain.ID, rating domain.Rating) (*domain.Category, error) {
	return r.exec(ctx, id, r.update(id).
		Set("rating_mark_count", rating.MarkCount).
		Set("rating_average", rating.Average))
}

// SoftDelete marks the category as deleted.
func (r *Repo) SoftDelete(ctx context.Context, id domain.ID) error {
	_, err := r.exec(ctx, id, r.update(id).Set("deleted_at", time.Now().UTC()))
	return err
}

func (r *Repo) update(id domain.ID) sq.UpdateBuilder {
	return postgres.Builder().Update("categories").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Where(postgres.Live("")).
		Suffix("RETURNING " + joinColumns())
}

func (r *Repo) exec(ctx context.Context, id domain.ID, b sq.UpdateBuilder) (*domain.Category, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("category %s: build update: %w", id, err)
	}

	c, err := scanCategory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, conflicts.Map(err, "category", id)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func joinColumns() string { return strings.Join(columns, ", ") }

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var (
		c           domain.Category
		owner       *string
		markCount   int
		markAverage float64
	)

	err := row.Scan(&c.ID, &c.CreatorID, &owner, &c.Name, &c.Description,
		&c.QuestionCount, &c.ApprovedQuestionCount,
		&markCount, &markAverage,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if err != nil {
		return nil, err
	}

	c.Approval = domain.ApprovalFromOwner(postgres.OptionalID(owner))
	c.Rating = postgres.RatingFrom(markCount, markAverage)
	return &c, nil
}
