package permission

import (
	"log/slog"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// Verifier decides whether a user may perform an action.
type Verifier struct {
	hierarchy Hierarchy
	log       *slog.Logger
}

// NewVerifier creates a Verifier over h.
func NewVerifier(log *slog.Logger, h Hierarchy) *Verifier {
	return &Verifier{hierarchy: h, log: log.With("component", "permission")}
}

// VerifyAuthorization allows the call when user holds permission, or when a
// target is given and user owns it. Otherwise it returns
// domain.ErrAuthorizationFailed. A nil user yields
// domain.ErrAuthorizationRequired.
func (v *Verifier) VerifyAuthorization(user *domain.User, permission domain.Permission, target domain.Owned) error {
	if user == nil {
		return domain.ErrAuthorizationRequired
	}
	if v.hierarchy.Has(user.Permissions, permission) {
		return nil
	}
	if target != nil {
		if owner, ok := target.Owner(); ok && owner == user.ID {
			return nil
		}
	}

	v.log.Debug("authorization denied",
		slog.String("user_id", user.ID.String()),
		slog.String("permission", permission.String()),
	)
	return domain.ErrAuthorizationFailed
}

// Hierarchy exposes the hierarchy the verifier checks against.
func (v *Verifier) Hierarchy() Hierarchy { return v.hierarchy }
