//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/quiz-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/quiz-backend/internal/adapter/redis/ranking"
	"github.com/heartmarshall/quiz-backend/internal/app"
	"github.com/heartmarshall/quiz-backend/internal/config"
)

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

type gqlError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions"`
}

// gqlResponse is a decoded GraphQL reply together with its HTTP status.
type gqlResponse struct {
	Status int            `json:"-"`
	Data   map[string]any `json:"data"`
	Errors []gqlError     `json:"errors"`
}

// ext returns the extensions of the first error.
func (r gqlResponse) ext(t *testing.T) map[string]any {
	t.Helper()
	require.NotEmpty(t, r.Errors, "expected a GraphQL error")
	return r.Errors[0].Extensions
}

func (r gqlResponse) code(t *testing.T) string {
	t.Helper()
	code, _ := r.ext(t)["code"].(string)
	return code
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Mode: config.ModeTest},
		Auth: config.AuthConfig{
			JWTSecret:        "e2e-secret-that-is-long-enough-000",
			JWTIssuer:        "quiz-e2e",
			AccessTokenTTL:   15 * time.Minute,
			PasswordHashCost: 4,
		},
		Exam:    config.ExamConfig{MaxQuestions: 100, RetentionDays: 30},
		GraphQL: config.GraphQLConfig{Path: "/query", Introspection: true, MaxListLimit: 100},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           600,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 10000, RESTPerMinute: 10000, CleanupInterval: time.Minute},
	}
}

// setupTestServer serves the whole application over httptest, on the shared
// test database and a private in-memory Redis for the category ranking.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	rdb := redis.NewClient(&redis.Options{Addr: miniredis.RunT(t).Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	handler, cleanup, err := app.NewHandler(app.Deps{
		Log:      slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn})),
		Config:   testConfig(),
		Pool:     pool,
		Ranking:  ranking.New(rdb, "e2e"),
		Registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// unique appends a short random suffix so names never clash on the shared
// database.
func unique(prefix string) string {
	return prefix + " " + uuid.NewString()[:8]
}

// gql posts a GraphQL operation, authenticated when token is set.
func (ts *testServer) gql(t *testing.T, query string, vars map[string]any, token string) gqlResponse {
	t.Helper()

	payload, err := json.Marshal(map[string]any{"query": query, "variables": vars})
	require.NoError(t, err)

	resp := ts.do(t, http.MethodPost, "/query", token, payload)
	defer resp.Body.Close()

	res := gqlResponse{Status: resp.StatusCode}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

// mustGQL runs an operation that has to succeed and returns its data.
func (ts *testServer) mustGQL(t *testing.T, query string, vars map[string]any, token string) map[string]any {
	t.Helper()
	res := ts.gql(t, query, vars, token)
	require.Equal(t, http.StatusOK, res.Status)
	require.Empty(t, res.Errors)
	return res.Data
}

func (ts *testServer) do(t *testing.T, method, path, token string, body []byte) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// restRequest sends body, when not nil, as JSON.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	return ts.do(t, method, path, token, payload)
}

type testUser struct {
	ID       string
	Email    string
	Password string
	Token    string
}

// registerUser signs up a fresh account through the API and logs it in.
func registerUser(t *testing.T, ts *testServer) testUser {
	t.Helper()

	name := unique("Player")
	u := testUser{
		Email:    strings.ReplaceAll(strings.ToLower(name), " ", "-") + "@e2e.example.com",
		Password: "correct horse battery",
	}

	data := ts.mustGQL(t,
		`mutation($input: CreateMeInput!) { createMe(input: $input) { id email } }`,
		map[string]any{"input": map[string]any{"email": u.Email, "name": name, "password": u.Password}}, "")
	u.ID = data["createMe"].(map[string]any)["id"].(string)

	u.Token = signIn(t, ts, u.Email, u.Password)
	return u
}

// signIn returns a bearer token for the credentials.
func signIn(t *testing.T, ts *testServer, email, password string) string {
	t.Helper()

	data := ts.mustGQL(t,
		`mutation($email: String!, $password: String!) {
			createAuthenticationToken(email: $email, password: $password) { token }
		}`,
		map[string]any{"email": email, "password": password}, "")
	return data["createAuthenticationToken"].(map[string]any)["token"].(string)
}

// grantRoot gives the user the Root role directly in the database.
func grantRoot(t *testing.T, ts *testServer, userID string) {
	t.Helper()

	_, err := ts.Pool.Exec(context.Background(),
		`UPDATE users SET permissions = ARRAY['root'] WHERE id = $1`, userID)
	require.NoError(t, err)
}

// createApprovedCategory creates a category as root and approves it.
func createApprovedCategory(t *testing.T, ts *testServer, root testUser) string {
	t.Helper()

	data := ts.mustGQL(t,
		`mutation($input: CreateCategoryInput!) { createCategory(input: $input) { id approval } }`,
		map[string]any{"input": map[string]any{"name": unique("E2E category")}},
		root.Token)
	id := data["createCategory"].(map[string]any)["id"].(string)

	data = ts.mustGQL(t,
		`mutation($id: ID!) { toggleCategoryApprove(id: $id) { approval } }`,
		map[string]any{"id": id}, root.Token)
	require.Equal(t, "APPROVED", data["toggleCategoryApprove"].(map[string]any)["approval"])

	return id
}

// createApprovedQuestion creates a question as root and approves it.
func createApprovedQuestion(t *testing.T, ts *testServer, root testUser, input map[string]any) string {
	t.Helper()

	data := ts.mustGQL(t,
		`mutation($input: CreateQuestionInput!) { createQuestion(input: $input) { id } }`,
		map[string]any{"input": input}, root.Token)
	id := data["createQuestion"].(map[string]any)["id"].(string)

	ts.mustGQL(t,
		`mutation($id: ID!) { toggleQuestionApprove(id: $id) { approval } }`,
		map[string]any{"id": id}, root.Token)

	return id
}
