// Package user implements the User repository using PostgreSQL.
package user

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

const columns = `id, email, name, password_hash, permissions,
	category_rating_marks, question_rating_marks, category_exams,
	created_at, updated_at, deleted_at`

var conflicts = postgres.Conflicts{
	"users_email_live_key": domain.ErrEmailTaken,
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a live user by primary key.
func (r *Repo) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+columns+` FROM users WHERE id = $1 AND deleted_at IS NULL`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a live user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+columns+` FROM users WHERE email = $1 AND deleted_at IS NULL`,
		strings.ToLower(strings.TrimSpace(email)))
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", "")
	}
	return u, nil
}

// ListByIDs returns the live users among ids, in no particular order.
func (r *Repo) ListByIDs(ctx context.Context, ids []domain.ID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+columns+` FROM users WHERE id = ANY($1) AND deleted_at IS NULL`,
		postgres.IDStrings(ids))
	if err != nil {
		return nil, postgres.MapError(err, "user", "")
	}
	defer rows.Close()

	users := make([]domain.User, 0, len(ids))
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, postgres.MapError(err, "user", "")
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user", "")
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user. A live user with the same email yields
// domain.ErrEmailTaken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	perms := permissionStrings(u.Permissions)

	categoryMarks, questionMarks, exams, err := marshalMaps(u)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", u.ID, err)
	}

	row := q.QueryRow(ctx,
		`INSERT INTO users (id, email, name, password_hash, permissions,
			category_rating_marks, question_rating_marks, category_exams, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+columns,
		u.ID, strings.ToLower(u.Email), u.Name, u.PasswordHash, perms,
		categoryMarks, questionMarks, exams, u.CreatedAt,
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, conflicts.Map(err, "user", u.ID)
	}
	return created, nil
}

// Update changes the non-nil profile fields.
func (r *Repo) Update(ctx context.Context, id domain.ID, params domain.UserUpdateParams) (*domain.User, error) {
	b := postgres.Builder().Update("users").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Where(postgres.Live("")).
		Suffix("RETURNING " + columns)

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Email != nil {
		b = b.Set("email", strings.ToLower(*params.Email))
	}
	if params.PasswordHash != nil {
		b = b.Set("password_hash", *params.PasswordHash)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("user %s: build update: %w", id, err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, conflicts.Map(err, "user", id)
	}
	return u, nil
}

// SetPermissions replaces the user's granted permissions and roles.
func (r *Repo) SetPermissions(ctx context.Context, id domain.ID, permissions []domain.Permission) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`UPDATE users SET permissions = $2, updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL
		 RETURNING `+columns,
		id, permissionStrings(permissions),
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// SetRatingMarks replaces the user's bucketed marks for one target kind.
func (r *Repo) SetRatingMarks(ctx context.Context, id domain.ID, target domain.RatingTarget, buckets domain.RatingMarkBuckets) error {
	column := "category_rating_marks"
	if target == domain.RatingTargetQuestion {
		column = "question_rating_marks"
	}

	data, err := json.Marshal(buckets)
	if err != nil {
		return fmt.Errorf("user %s: marshal rating marks: %w", id, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE users SET `+column+` = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		id, data,
	)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// SetCategoryExamState replaces the exam summary of one category.
func (r *Repo) SetCategoryExamState(ctx context.Context, id, categoryID domain.ID, state domain.CategoryExamState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("user %s: marshal exam state: %w", id, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE users
		 SET category_exams = jsonb_set(category_exams, ARRAY[$2::text], $3::jsonb, true), updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id, categoryID.String(), data,
	)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// SoftDelete marks the user as deleted.
func (r *Repo) SoftDelete(ctx context.Context, id domain.ID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE users SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u                                   domain.User
		perms                               []string
		categoryMarks, questionMarks, exams []byte
	)

	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &perms,
		&categoryMarks, &questionMarks, &exams,
		&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)
	if err != nil {
		return nil, err
	}

	u.Permissions = make([]domain.Permission, len(perms))
	for i, p := range perms {
		u.Permissions[i] = domain.Permission(p)
	}

	u.CategoryRatingMarks = domain.NewRatingMarkBuckets()
	if err := json.Unmarshal(categoryMarks, &u.CategoryRatingMarks); err != nil {
		return nil, fmt.Errorf("unmarshal category_rating_marks: %w", err)
	}
	u.QuestionRatingMarks = domain.NewRatingMarkBuckets()
	if err := json.Unmarshal(questionMarks, &u.QuestionRatingMarks); err != nil {
		return nil, fmt.Errorf("unmarshal question_rating_marks: %w", err)
	}
	u.CategoryExams = map[domain.ID]domain.CategoryExamState{}
	if err := json.Unmarshal(exams, &u.CategoryExams); err != nil {
		return nil, fmt.Errorf("unmarshal category_exams: %w", err)
	}

	return &u, nil
}

func marshalMaps(u *domain.User) (categoryMarks, questionMarks, exams []byte, err error) {
	if u.CategoryRatingMarks == nil {
		u.CategoryRatingMarks = domain.NewRatingMarkBuckets()
	}
	if u.QuestionRatingMarks == nil {
		u.QuestionRatingMarks = domain.NewRatingMarkBuckets()
	}
	if u.CategoryExams == nil {
		u.CategoryExams = map[domain.ID]domain.CategoryExamState{}
	}

	if categoryMarks, err = json.Marshal(u.CategoryRatingMarks); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal category_rating_marks: %w", err)
	}
	if questionMarks, err = json.Marshal(u.QuestionRatingMarks); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal question_rating_marks: %w", err)
	}
	if exams, err = json.Marshal(u.CategoryExams); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal category_exams: %w", err)
	}
	return categoryMarks, questionMarks, exams, nil
}

func permissionStrings(perms []domain.Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
