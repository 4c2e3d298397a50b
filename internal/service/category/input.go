package category

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/quiz-backend/internal/domain"
)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name        string
	Description *string
}

// Normalize trims and canonicalizes the fields before validation.
func (i *CreateCategoryInput) Normalize() {
	i.Name = domain.NormalizeName(i.Name)
	i.Description = trimOrNil(i.Description)
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	return domain.FieldErrors(
		domain.CheckName("name", i.Name),
		checkDescription(i.Description),
	)
}

// UpdateCategoryInput holds the parameters for updating a category.
type UpdateCategoryInput struct {
	CategoryID  string
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
}

func (i *UpdateCategoryInput) normalize() {
	if i.Name != nil {
		name := domain.NormalizeName(*i.Name)
		i.Name = &name
	}
	if i.Description != nil {
		d := strings.TrimSpace(*i.Description)
		i.Description = &d
	}
}

// Validate checks all fields and collects all errors.
func (i UpdateCategoryInput) Validate() error {
	var checks []*domain.FieldError

	if i.Name == nil && i.Description == nil {
		checks = append(checks, &domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Name != nil {
		checks = append(checks, domain.CheckName("name", *i.Name))
	}
	checks = append(checks, checkDescription(i.Description))

	return domain.FieldErrors(checks...)
}

// ListCategoriesInput narrows a category listing. Mine limits the result to
// pending categories owned by the caller.
type ListCategoriesInput struct {
	Search   *string
	Approved *bool
	Mine     bool
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListCategoriesInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if i.Search != nil && utf8.RuneCountInString(*i.Search) > domain.MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "search", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RateCategoryInput holds a mark for a category.
type RateCategoryInput struct {
	CategoryID string
	Mark       int
}

// Validate checks all fields and collects all errors.
func (i RateCategoryInput) Validate() error {
	if !domain.Mark(i.Mark).IsValid() {
		return domain.NewValidationError("mark", "must be between 1 and 5")
	}
	return nil
}

func checkDescription(d *string) *domain.FieldError {
	if d != nil && utf8.RuneCountInString(*d) > domain.MaxDescriptionLength {
		return &domain.FieldError{Field: "description", Message: "too long"}
	}
	return nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
