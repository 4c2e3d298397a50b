// Package seeder loads approved quiz content from a YAML file.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type categoryRepo interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	SetQuestionCounters(ctx context.Context, id domain.ID, total, approved int) (*domain.Category, error)
}

type questionRepo interface {
	Create(ctx context.Context, q *domain.Question) (*domain.Question, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result counts what a run did.
type Result struct {
	Categories int
	Questions  int
	// Skipped categories already exist or clash with an existing question title.
	Skipped int
	// Invalid categories failed validation and were not written.
	Invalid  int
	Duration time.Duration
}

// HasErrors reports whether any category failed validation.
func (r Result) HasErrors() bool { return r.Invalid > 0 }

// Pipeline writes seed content. Each category is loaded in its own
// transaction together with its questions, so a category is either fully
// present or absent.
type Pipeline struct {
	log        *slog.Logger
	users      userRepo
	categories categoryRepo
	questions  questionRepo
	tx         txManager
	cfg        Config
	now        func() time.Time
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, users userRepo, categories categoryRepo, questions questionRepo, tx txManager, cfg Config) *Pipeline {
	return &Pipeline{
		log:        log.With("component", "seeder"),
		users:      users,
		categories: categories,
		questions:  questions,
		tx:         tx,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Run loads content. Invalid categories are logged and counted; conflicts
// with existing content are skipped so a seed file can be applied again.
func (p *Pipeline) Run(ctx context.Context, content *Content) (Result, error) {
	start := time.Now()
	var res Result

	var creator *domain.User
	if !p.cfg.DryRun {
		u, err := p.users.GetByEmail(ctx, p.cfg.CreatorEmail)
		if err != nil {
			return res, fmt.Errorf("seeder: creator %s: %w", p.cfg.CreatorEmail, err)
		}
		creator = u
	}

	for n, seed := range content.Categories {
		batch, err := prepare(seed)
		if err != nil {
			res.Invalid++
			p.log.WarnContext(ctx, "invalid category",
				slog.Int("index", n),
				slog.String("name", seed.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		if p.cfg.DryRun {
			res.Categories++
			res.Questions += len(batch.questions)
			continue
		}

		err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
			return p.write(ctx, creator.ID, batch)
		})
		switch {
		case err == nil:
			res.Categories++
			res.Questions += len(batch.questions)
		case errors.Is(err, domain.ErrCategoryNameTaken), errors.Is(err, domain.ErrQuestionTitleTaken):
			res.Skipped++
			p.log.InfoContext(ctx, "category skipped",
				slog.String("name", batch.category.Name),
				slog.String("reason", domain.ReasonOf(err)),
			)
		default:
			return res, fmt.Errorf("seeder: category %q: %w", batch.category.Name, err)
		}
	}

	res.Duration = time.Since(start)
	p.log.InfoContext(ctx, "seeding finished",
		slog.Int("categories", res.Categories),
		slog.Int("questions", res.Questions),
		slog.Int("skipped", res.Skipped),
		slog.Int("invalid", res.Invalid),
		slog.Bool("dry_run", p.cfg.DryRun),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// batch is a validated category with its questions.
type batch struct {
	category  domain.Category
	questions []domain.Question
}

func prepare(seed CategorySeed) (batch, error) {
	c, err := seed.categoryInput()
	if err != nil {
		return batch{}, err
	}

	b := batch{category: domain.Category{Name: c.Name, Description: c.Description}}
	var fields []domain.FieldError
	titles := make(map[string]struct{}, len(seed.Questions))

	for n, qs := range seed.Questions {
		q, err := qs.questionInput()
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				fields = append(fields, domain.FieldError{
					Field:   fmt.Sprintf("questions[%d].%s", n, fe.Field),
					Message: fe.Message,
				})
			}
			continue
		}
		if _, dup := titles[q.Title]; dup {
			fields = append(fields, domain.FieldError{Field: fmt.Sprintf("questions[%d].title", n), Message: "duplicate title"})
			continue
		}
		titles[q.Title] = struct{}{}

		b.questions = append(b.questions, domain.Question{
			Type:       q.Type,
			Difficulty: q.Difficulty,
			Title:      q.Title,
			Choices:    q.Choices,
		})
	}

	if len(fields) > 0 {
		return batch{}, domain.NewValidationErrors(fields)
	}
	return b, nil
}

func (p *Pipeline) write(ctx context.Context, creator domain.ID, b batch) error {
	now := p.now()

	c := b.category
	c.ID = domain.NewID()
	c.CreatorID = creator
	c.Approval = domain.Approved()
	c.CreatedAt = now

	created, err := p.categories.Create(ctx, &c)
	if err != nil {
		return err
	}

	for _, q := range b.questions {
		q.ID = domain.NewID()
		q.CategoryID = created.ID
		q.CreatorID = creator
		q.Approval = domain.Approved()
		q.CreatedAt = now
		if _, err := p.questions.Create(ctx, &q); err != nil {
			return err
		}
	}

	if _, err := p.categories.SetQuestionCounters(ctx, created.ID, len(b.questions), len(b.questions)); err != nil {
		return err
	}
	return nil
}
