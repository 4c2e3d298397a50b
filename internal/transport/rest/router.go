package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/quiz-backend/internal/permission"
	"github.com/heartmarshall/quiz-backend/internal/transport/middleware"
)

// Routes collects every handler the HTTP server mounts.
type Routes struct {
	Health      *HealthHandler
	Categories  *CategoryHandler
	Exams       *ExamHandler
	Hierarchy   permission.Hierarchy
	GraphQL     http.Handler
	GraphQLPath string
	// GraphQLLimit wraps the GraphQL route, RESTLimit the resource routes.
	// Either may be nil. Probes and /metrics are never limited.
	GraphQLLimit middleware.Middleware
	RESTLimit    middleware.Middleware
	Metrics      *middleware.HTTPMetrics
	Exposition   http.Handler
}

// NewRouter builds the mux router. Request metrics are recorded inside the
// router so that routes are labelled by their path template.
func NewRouter(rt Routes) *mux.Router {
	r := mux.NewRouter()
	if rt.Metrics != nil {
		r.Use(rt.Metrics.Middleware)
	}

	r.HandleFunc("/live", rt.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", rt.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", rt.Health.Health).Methods(http.MethodGet)
	if rt.Exposition != nil {
		r.Handle("/metrics", rt.Exposition).Methods(http.MethodGet)
	}

	limited := func(h http.HandlerFunc) http.Handler {
		if rt.RESTLimit == nil {
			return h
		}
		return rt.RESTLimit(h)
	}
	r.Handle("/categories", limited(rt.Categories.List)).Methods(http.MethodGet)
	r.Handle("/categories/{id}", limited(rt.Categories.Update)).Methods(http.MethodPatch)
	r.Handle("/exams/{examId}", limited(rt.Exams.Get)).Methods(http.MethodGet)
	r.Handle("/exams/{examId}", limited(rt.Exams.Delete)).Methods(http.MethodDelete)
	r.Handle("/permissions/hierarchy", limited(PermissionHierarchy(rt.Hierarchy))).Methods(http.MethodGet)

	gql := rt.GraphQL
	if rt.GraphQLLimit != nil {
		gql = rt.GraphQLLimit(gql)
	}
	r.Handle(rt.GraphQLPath, gql).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	return r
}
