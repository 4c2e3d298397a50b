package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/qri-io/jsonschema"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/service/category"
)

const (
	defaultLimit = 20
	maxBodyBytes = 64 << 10
)

// updateCategorySchema guards PATCH /categories/{id}. A null description
// clears it.
const updateCategorySchema = `{
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"description": {"type": ["string", "null"]}
	},
	"additionalProperties": false,
	"minProperties": 1
}`

type categoryService interface {
	List(ctx context.Context, input category.ListCategoriesInput) ([]domain.Category, error)
	Update(ctx context.Context, input category.UpdateCategoryInput) (*domain.Category, error)
}

// CategoryHandler serves the category REST endpoints.
type CategoryHandler struct {
	svc          categoryService
	updateSchema *jsonschema.Schema
	maxLimit     int
	log          *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler. Listing rejects a limit
// above maxLimit.
func NewCategoryHandler(svc categoryService, maxLimit int, logger *slog.Logger) (*CategoryHandler, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(updateCategorySchema), rs); err != nil {
		return nil, fmt.Errorf("rest.NewCategoryHandler: %w", err)
	}
	return &CategoryHandler{
		svc:          svc,
		updateSchema: rs,
		maxLimit:     maxLimit,
		log:          logger.With("handler", "category"),
	}, nil
}

type categoryResponse struct {
	ID                    domain.ID            `json:"id"`
	CreatorID             domain.ID            `json:"creatorId"`
	OwnerID               *domain.ID           `json:"ownerId"`
	Approval              domain.ApprovalState `json:"approval"`
	Name                  string               `json:"name"`
	Description           *string              `json:"description"`
	QuestionCount         int                  `json:"questionCount"`
	ApprovedQuestionCount int                  `json:"approvedQuestionCount"`
	Rating                *domain.Rating       `json:"rating"`
	CreatedAt             time.Time            `json:"createdAt"`
	UpdatedAt             *time.Time           `json:"updatedAt"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:                    c.ID,
		CreatorID:             c.CreatorID,
		OwnerID:               c.Approval.OwnerPtr(),
		Approval:              c.Approval.State(),
		Name:                  c.Name,
		Description:           c.Description,
		QuestionCount:         c.QuestionCount,
		ApprovedQuestionCount: c.ApprovedQuestionCount,
		Rating:                c.Rating,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

// List handles GET /categories?approved=&mine=&search=&limit=&offset=.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := h.listInput(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	categories, err := h.svc.List(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CategoryHandler) listInput(r *http.Request) (category.ListCategoriesInput, error) {
	q := r.URL.Query()
	input := category.ListCategoriesInput{Limit: defaultLimit}
	var errs []domain.FieldError

	if v := q.Get("search"); v != "" {
		input.Search = &v
	}
	if v := q.Get("approved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "approved", Message: "must be a boolean"})
		} else {
			input.Approved = &b
		}
	}
	if v := q.Get("mine"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "mine", Message: "must be a boolean"})
		}
		input.Mine = b
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		case h.maxLimit > 0 && n > h.maxLimit:
			errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be at most %d", h.maxLimit)})
		default:
			input.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		input.Offset = n
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

// Update handles PATCH /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, h.log, domain.NewValidationError("body", "unreadable"))
		return
	}

	input, err := h.updateInput(r.Context(), body)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	input.CategoryID = mux.Vars(r)["id"]

	c, err := h.svc.Update(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

func (h *CategoryHandler) updateInput(ctx context.Context, body []byte) (category.UpdateCategoryInput, error) {
	var input category.UpdateCategoryInput

	keyErrs, err := h.updateSchema.ValidateBytes(ctx, body)
	if err != nil {
		return input, domain.NewValidationError("body", "must be a JSON object")
	}
	if len(keyErrs) > 0 {
		errs := make([]domain.FieldError, 0, len(keyErrs))
		for _, ke := range keyErrs {
			errs = append(errs, domain.FieldError{Field: schemaField(ke.PropertyPath), Message: ke.Message})
		}
		return input, domain.NewValidationErrors(errs)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return input, domain.NewValidationError("body", "must be a JSON object")
	}
	if v, ok := raw["name"]; ok {
		var name string
		if err := json.Unmarshal(v, &name); err != nil {
			return input, domain.NewValidationError("name", "must be a string")
		}
		input.Name = &name
	}
	if v, ok := raw["description"]; ok {
		var desc *string
		if err := json.Unmarshal(v, &desc); err != nil {
			return input, domain.NewValidationError("description", "must be a string or null")
		}
		if desc == nil {
			desc = new(string)
		}
		input.Description = desc
	}
	return input, nil
}

// schemaField turns a JSON pointer such as "/name" into a field name. The
// document root reports as "body".
func schemaField(path string) string {
	if path == "" || path == "/" {
		return "body"
	}
	return path[1:]
}
