package auth

import (
	"strings"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// RegisterInput holds the parameters of a new account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

func (i *RegisterInput) normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Name = domain.NormalizeName(i.Name)
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	return domain.FieldErrors(
		domain.CheckEmail("email", i.Email),
		domain.CheckName("name", i.Name),
		domain.CheckPassword("password", i.Password),
	)
}

// AuthenticateInput holds email + password credentials.
type AuthenticateInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i AuthenticateInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > domain.MaxEmailLength {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > domain.MaxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
