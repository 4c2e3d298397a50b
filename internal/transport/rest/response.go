package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/pkg/ctxutil"
)

// errorBody mirrors the extensions the GraphQL error presenter emits.
type errorBody struct {
	Code    string              `json:"code"`
	Name    string              `json:"name"`
	Reason  string              `json:"reason,omitempty"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps err onto its domain kind. Internal errors are logged and
// their message is replaced.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := domain.KindOf(err)
	body := errorBody{
		Code:    kind.Code,
		Name:    kind.Name,
		Reason:  domain.ReasonOf(err),
		Message: err.Error(),
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body.Fields = ve.Errors
	}

	if kind == domain.KindInternal {
		log.ErrorContext(r.Context(), "rest: internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("path", r.URL.Path),
		)
		body.Message = "internal error"
	}

	writeJSON(w, kind.Status, errorResponse{Error: body})
}
