package rest

import (
	"net/http"

	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/permission"
)

type roleResponse struct {
	Role        domain.Permission   `json:"role"`
	Permissions []domain.Permission `json:"permissions"`
}

// PermissionHierarchy handles GET /permissions/hierarchy. Roles are listed in
// name order with their direct grants.
func PermissionHierarchy(h permission.Hierarchy) http.HandlerFunc {
	roles := make([]roleResponse, 0, len(h))
	for _, role := range h.Roles() {
		roles = append(roles, roleResponse{Role: role, Permissions: h[role]})
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, roles)
	}
}
