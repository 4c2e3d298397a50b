// Package ratingmark implements the RatingMark repository using PostgreSQL.
package ratingmark

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/quiz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quiz-backend/internal/domain"
)

const columns = `id, creator_id, category_id, question_id, mark, created_at`

var conflicts = postgres.Conflicts{
	"rating_marks_category_key": domain.ErrRatedAlready,
	"rating_marks_question_key": domain.ErrRatedAlready,
}

// Repo provides rating mark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new rating mark repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a mark. A second mark by the same user on the same target
// yields domain.ErrRatedAlready.
func (r *Repo) Create(ctx context.Context, m *domain.RatingMark) (*domain.RatingMark, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO rating_marks (id, creator_id, category_id, question_id, mark, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+columns,
		m.ID, m.CreatorID, m.CategoryID, m.QuestionID, int(m.Mark), m.CreatedAt,
	)

	created, err := scanMark(row)
	if err != nil {
		return nil, conflicts.Map(err, "rating_mark", m.ID)
	}
	return created, nil
}

// ListByCreator returns every live mark a user gave.
func (r *Repo) ListByCreator(ctx context.Context, creatorID domain.ID) ([]domain.RatingMark, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT `+columns+` FROM rating_marks
		 WHERE creator_id = $1 AND deleted_at IS NULL
		 ORDER BY created_at, id`,
		creatorID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", creatorID)
	}

	marks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RatingMark, error) {
		m, err := scanMark(row)
		if err != nil {
			return domain.RatingMark{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "user", creatorID)
	}
	return marks, nil
}

// Stats returns how many live marks a target received and their sum.
func (r *Repo) Stats(ctx context.Context, target domain.RatingTarget, id domain.ID) (count, sum int, err error) {
	column := "category_id"
	if target == domain.RatingTargetQuestion {
		column = "question_id"
	}

	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		fmt.Sprintf(`SELECT count(*), coalesce(sum(mark), 0) FROM rating_marks
		 WHERE %s = $1 AND deleted_at IS NULL`, column),
		id,
	).Scan(&count, &sum)
	if err != nil {
		return 0, 0, postgres.MapError(err, string(target), id)
	}
	return count, sum, nil
}

func scanMark(row pgx.Row) (*domain.RatingMark, error) {
	var (
		m                    domain.RatingMark
		categoryID, question *string
		mark                 int
	)

	if err := row.Scan(&m.ID, &m.CreatorID, &categoryID, &question, &mark, &m.CreatedAt); err != nil {
		return nil, err
	}

	m.CategoryID = postgres.OptionalID(categoryID)
	m.QuestionID = postgres.OptionalID(question)
	m.Mark = domain.Mark(mark)
	return &m, nil
}
