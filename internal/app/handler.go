package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	activityrepo "github.com/heartmarshall/quiz-backend/internal/adapter/postgres/activity"
	categoryrepo "github.com/heartmarshall/quiz-backend/internal/adapter/postgres/category"
	examrepo "github.com/heartmarshall/quiz-backend/internal/adapter/postgres/exam"
	questionrepo "github.com/heartmarshall/quiz-backend/internal/adapter/postgres/question"
	"github.com/heartmarshall/quiz-backend/internal/adapter/postgres/ratingmark"
	userrepo "github.com/heartmarshall/quiz-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/quiz-backend/internal/adapter/redis/ranking"
	"github.com/heartmarshall/quiz-backend/internal/auth"
	"github.com/heartmarshall/quiz-backend/internal/config"
	"github.com/heartmarshall/quiz-backend/internal/event"
	"github.com/heartmarshall/quiz-backend/internal/permission"
	"github.com/heartmarshall/quiz-backend/internal/service/activity"
	authsvc "github.com/heartmarshall/quiz-backend/internal/service/auth"
	"github.com/heartmarshall/quiz-backend/internal/service/category"
	"github.com/heartmarshall/quiz-backend/internal/service/exam"
	"github.com/heartmarshall/quiz-backend/internal/service/provider"
	"github.com/heartmarshall/quiz-backend/internal/service/question"
	"github.com/heartmarshall/quiz-backend/internal/service/rating"
	"github.com/heartmarshall/quiz-backend/internal/service/user"
	"github.com/heartmarshall/quiz-backend/internal/transport/graphql"
	"github.com/heartmarshall/quiz-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/quiz-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/quiz-backend/internal/transport/middleware"
	"github.com/heartmarshall/quiz-backend/internal/transport/rest"
)

// Deps are the connected infrastructure the HTTP handler is built on.
// Ranking may be nil.
type Deps struct {
	Log      *slog.Logger
	Config   *config.Config
	Pool     *pgxpool.Pool
	Ranking  *ranking.Store
	Registry *prometheus.Registry
}

// NewHandler wires repositories, services, subscribers and transports into
// the full HTTP handler. The returned cleanup stops background workers.
func NewHandler(d Deps) (http.Handler, func(), error) {
	cfg := d.Config
	logger := d.Log

	// Repositories
	users := userrepo.New(d.Pool)
	categories := categoryrepo.New(d.Pool)
	questions := questionrepo.New(d.Pool)
	exams := examrepo.New(d.Pool)
	marks := ratingmark.New(d.Pool)
	activities := activityrepo.New(d.Pool)

	// Cross-cutting
	bus := event.NewBus(logger, d.Registry)
	hierarchy := permission.DefaultHierarchy()
	verifier := permission.NewVerifier(logger, hierarchy)
	entities := provider.New(users, categories, questions, exams)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services
	var ratingService *rating.Service
	if d.Ranking != nil {
		ratingService = rating.NewService(logger, marks, categories, questions, d.Ranking, bus)
	} else {
		ratingService = rating.NewService(logger, marks, categories, questions, nil, bus)
	}
	authService := authsvc.NewService(logger, users, hasher, tokens)
	userService := user.NewService(logger, users, marks, exams, entities, verifier, hasher)
	categoryService := category.NewService(logger, categories, questions, entities, verifier, bus, ratingService)
	questionService := question.NewService(logger, questions, entities, verifier, bus, ratingService)
	examService := exam.NewService(logger, exams, questions, entities, verifier, bus, cfg.Exam)
	activityService := activity.NewService(logger, activities, entities, verifier)

	// Subscribers run in registration order: aggregates first, then the
	// denormalized user maps, then the activity log.
	ratingService.Subscribe(bus)
	categoryService.Subscribe(bus)
	userService.Subscribe(bus)
	activityService.Subscribe(bus)

	// GraphQL
	res := resolver.NewResolver(logger, resolver.Services{
		Users:      userService,
		Auth:       authService,
		Categories: categoryService,
		Questions:  questionService,
		Exams:      examService,
		Activities: activityService,
		Ratings:    ratingService,
	}, hierarchy, cfg.GraphQL.MaxListLimit)

	gqlServer, err := graphql.NewServer(logger, res, cfg.GraphQL, cfg.App.IsProduction())
	if err != nil {
		return nil, nil, fmt.Errorf("app.NewHandler: %w", err)
	}

	// REST
	categoryHandler, err := rest.NewCategoryHandler(categoryService, cfg.GraphQL.MaxListLimit, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("app.NewHandler: %w", err)
	}

	health := rest.NewHealthHandler(d.Pool, BuildVersion())
	if d.Ranking != nil {
		health.WithComponent("redis", d.Ranking)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	httpMetrics := middleware.NewHTTPMetrics(d.Registry)

	router := rest.NewRouter(rest.Routes{
		Health:       health,
		Categories:   categoryHandler,
		Exams:        rest.NewExamHandler(examService, logger),
		Hierarchy:    hierarchy,
		GraphQL:      gqlServer,
		GraphQLPath:  cfg.GraphQL.Path,
		GraphQLLimit: limiter.LimitAnonymous(cfg.RateLimit.AuthPerMinute),
		RESTLimit:    limiter.Limit(cfg.RateLimit.RESTPerMinute),
		Metrics:      httpMetrics,
		Exposition:   promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{Registry: d.Registry}),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.Logger(logger, "/live", "/ready", "/metrics"),
		middleware.Recovery(logger, httpMetrics.Panics()),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		middleware.OnPath(cfg.GraphQL.Path, middleware.Middleware(dataloader.Middleware(&dataloader.Repos{
			Category: categories,
			User:     users,
		}))),
	)(router)

	return handler, limiter.Stop, nil
}
