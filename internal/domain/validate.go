package domain

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Input limits shared by the services and the transport schemas.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 1000
	MaxTitleLength       = 500
	MinPasswordLength    = 8
	MaxPasswordLength    = 72
	MaxEmailLength       = 254
)

// CheckEmail reports a field error unless email is a bare address.
func CheckEmail(field, email string) *FieldError {
	switch {
	case email == "":
		return &FieldError{Field: field, Message: "required"}
	case len(email) > MaxEmailLength:
		return &FieldError{Field: field, Message: "too long"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return &FieldError{Field: field, Message: "invalid email"}
	}
	return nil
}

// CheckName reports a field error for an empty or overlong display name.
func CheckName(field, name string) *FieldError {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return &FieldError{Field: field, Message: "required"}
	case utf8.RuneCountInString(name) > MaxNameLength:
		return &FieldError{Field: field, Message: "too long"}
	}
	return nil
}

// CheckPassword enforces the password length window. bcrypt ignores
// everything past 72 bytes.
func CheckPassword(field, password string) *FieldError {
	switch {
	case len(password) < MinPasswordLength:
		return &FieldError{Field: field, Message: "too short"}
	case len(password) > MaxPasswordLength:
		return &FieldError{Field: field, Message: "too long"}
	}
	return nil
}

// FieldErrors collects the non-nil checks into a ValidationError, or nil
// when every check passed.
func FieldErrors(checks ...*FieldError) error {
	var errs []FieldError
	for _, c := range checks {
		if c != nil {
			errs = append(errs, *c)
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
