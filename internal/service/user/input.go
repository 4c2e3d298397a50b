package user

import (
	"strings"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// UpdateMeInput holds the profile fields to change. Nil means unchanged.
type UpdateMeInput struct {
	Name     *string
	Email    *string
	Password *string
}

func (i *UpdateMeInput) normalize() {
	if i.Name != nil {
		name := domain.NormalizeName(*i.Name)
		i.Name = &name
	}
	if i.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*i.Email))
		i.Email = &email
	}
}

// Validate checks all fields and collects all errors.
func (i UpdateMeInput) Validate() error {
	var checks []*domain.FieldError

	if i.Name == nil && i.Email == nil && i.Password == nil {
		checks = append(checks, &domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Name != nil {
		checks = append(checks, domain.CheckName("name", *i.Name))
	}
	if i.Email != nil {
		checks = append(checks, domain.CheckEmail("email", *i.Email))
	}
	if i.Password != nil {
		checks = append(checks, domain.CheckPassword("password", *i.Password))
	}

	return domain.FieldErrors(checks...)
}
