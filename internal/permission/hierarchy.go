// Package permission holds the static role hierarchy and the authorization
// verifier every mutating operation goes through.
package permission

import (
	"slices"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Hierarchy maps a role to the permissions (or other roles) it grants.
type Hierarchy map[domain.Permission][]domain.Permission

// DefaultHierarchy is the hierarchy the application runs with.
func DefaultHierarchy() Hierarchy {
	return Hierarchy{
		domain.RoleRegular: {
			domain.PermissionCreateCategory,
			domain.PermissionRateCategory,
			domain.PermissionCreateQuestion,
			domain.PermissionRateQuestion,
			domain.PermissionCreateExam,
			domain.PermissionGetActivities,
		},
		domain.RoleRoot: {
			domain.RoleRegular,
			domain.PermissionAll,
		},
	}
}

// Expand resolves granted into the full set of permissions, following roles
// transitively. Cycles are tolerated.
func (h Hierarchy) Expand(granted []domain.Permission) map[domain.Permission]struct{} {
	out := make(map[domain.Permission]struct{}, len(granted))
	var visit func(p domain.Permission)
	visit = func(p domain.Permission) {
		if _, seen := out[p]; seen {
			return
		}
		out[p] = struct{}{}
		for _, child := range h[p] {
			visit(child)
		}
	}
	for _, p := range granted {
		visit(p)
	}
	return out
}

// Has reports whether granted includes p directly, through a role, or
// through the wildcard.
func (h Hierarchy) Has(granted []domain.Permission, p domain.Permission) bool {
	set := h.Expand(granted)
	if _, ok := set[domain.PermissionAll]; ok {
		return true
	}
	_, ok := set[p]
	return ok
}

// Roles returns the role names in a stable order.
func (h Hierarchy) Roles() []domain.Permission {
	roles := make([]domain.Permission, 0, len(h))
	for r := range h {
		roles = append(roles, r)
	}
	slices.Sort(roles)
	return roles
}
