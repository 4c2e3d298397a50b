package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// writeError answers with the same error envelope the REST handlers use, so
// clients parse middleware rejections the same way.
func writeError(w http.ResponseWriter, kind domain.ErrorKind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(kind.Status)
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
		"error": map[string]string{
			"code":    kind.Code,
			"name":    kind.Name,
			"message": message,
		},
	})
}
