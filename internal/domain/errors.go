package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// Error is a named business-rule failure. It unwraps to one of the sentinel
// errors above, and two Errors match under errors.Is when their names match.
type Error struct {
	Name    string
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Name == e.Name
}

// Named errors raised by the workflows.
var (
	ErrAuthorizationRequired = &Error{Name: "AuthorizationRequiredError", Kind: ErrUnauthorized, Message: "authorization required"}
	ErrAuthorizationFailed   = &Error{Name: "AuthorizationFailedError", Kind: ErrForbidden, Message: "authorization failed"}

	ErrCategoryNameTaken                = &Error{Name: "CategoryNameTakenError", Kind: ErrConflict, Message: "category name is already taken"}
	ErrCategoryNotApproved              = &Error{Name: "CategoryNotApprovedError", Kind: ErrConflict, Message: "category is not approved"}
	ErrCategoryWithoutApprovedQuestions = &Error{Name: "CategoryWithoutApprovedQuestionsError", Kind: ErrConflict, Message: "category has no approved questions"}
	ErrQuestionTitleTaken               = &Error{Name: "QuestionTitleTakenError", Kind: ErrConflict, Message: "question title is already taken"}
	ErrEmailTaken                       = &Error{Name: "EmailTakenError", Kind: ErrConflict, Message: "email is already taken"}
	ErrExamTaken                        = &Error{Name: "ExamTakenError", Kind: ErrConflict, Message: "exam for this category is already in progress"}
	ErrExamCompleted                    = &Error{Name: "ExamCompletedError", Kind: ErrConflict, Message: "exam is already completed"}
	ErrRatedAlready                     = &Error{Name: "RatedAlreadyError", Kind: ErrConflict, Message: "target is already rated"}
	ErrInvalidCredentials               = &Error{Name: "InvalidCredentialsError", Kind: ErrUnauthorized, Message: "invalid credentials"}

	ErrUserNotFound               = &Error{Name: "UserNotFoundError", Kind: ErrNotFound, Message: "user not found"}
	ErrCategoryNotFound           = &Error{Name: "CategoryNotFoundError", Kind: ErrNotFound, Message: "category not found"}
	ErrQuestionNotFound           = &Error{Name: "QuestionNotFoundError", Kind: ErrNotFound, Message: "question not found"}
	ErrExamNotFound               = &Error{Name: "ExamNotFoundError", Kind: ErrNotFound, Message: "exam not found"}
	ErrExamQuestionNumberNotFound = &Error{Name: "ExamQuestionNumberNotFoundError", Kind: ErrNotFound, Message: "exam question number not found"}
)

// WithMessage returns a copy of e carrying a more specific message.
func (e *Error) WithMessage(format string, args ...any) *Error {
	return &Error{Name: e.Name, Kind: e.Kind, Message: fmt.Sprintf(format, args...)}
}

// NewUserNotFoundError reports a missing or deleted user.
func NewUserNotFoundError(id ID) *Error {
	return ErrUserNotFound.WithMessage("user %s not found", id)
}

// NewCategoryNotFoundError reports a missing or deleted category.
func NewCategoryNotFoundError(id ID) *Error {
	return ErrCategoryNotFound.WithMessage("category %s not found", id)
}

// NewQuestionNotFoundError reports a missing or deleted question.
func NewQuestionNotFoundError(id ID) *Error {
	return ErrQuestionNotFound.WithMessage("question %s not found", id)
}

// NewExamNotFoundError reports a missing or deleted exam.
func NewExamNotFoundError(id ID) *Error {
	return ErrExamNotFound.WithMessage("exam %s not found", id)
}

// NewExamQuestionNumberNotFoundError reports an out of range question index.
func NewExamQuestionNumberNotFoundError(examID ID, number int) *Error {
	return ErrExamQuestionNumberNotFound.WithMessage("exam %s has no question number %d", examID, number)
}

// ErrorKind is the transport-facing classification of an error.
type ErrorKind struct {
	Name   string
	Status int
	Code   string
}

var (
	KindBadRequest            = ErrorKind{Name: "BadRequestError", Status: http.StatusBadRequest, Code: "VALIDATION"}
	KindAuthorizationRequired = ErrorKind{Name: "AuthorizationRequiredError", Status: http.StatusUnauthorized, Code: "UNAUTHENTICATED"}
	KindForbidden             = ErrorKind{Name: "ForbiddenError", Status: http.StatusForbidden, Code: "FORBIDDEN"}
	KindNotFound              = ErrorKind{Name: "NotFoundError", Status: http.StatusNotFound, Code: "NOT_FOUND"}
	KindAlreadyExists         = ErrorKind{Name: "ConflictError", Status: http.StatusConflict, Code: "ALREADY_EXISTS"}
	KindConflict              = ErrorKind{Name: "ConflictError", Status: http.StatusConflict, Code: "CONFLICT"}
	KindInternal              = ErrorKind{Name: "InternalServerError", Status: http.StatusInternalServerError, Code: "INTERNAL"}

	// KindRateLimited has no sentinel; only the rate limiter produces it.
	KindRateLimited = ErrorKind{Name: "TooManyRequestsError", Status: http.StatusTooManyRequests, Code: "RATE_LIMITED"}
)

var errorKinds = []struct {
	sentinel error
	kind     ErrorKind
}{
	{ErrValidation, KindBadRequest},
	{ErrUnauthorized, KindAuthorizationRequired},
	{ErrForbidden, KindForbidden},
	{ErrNotFound, KindNotFound},
	{ErrAlreadyExists, KindAlreadyExists},
	{ErrConflict, KindConflict},
}

// KindOf maps err to its taxonomy kind. Unknown errors are KindInternal.
func KindOf(err error) ErrorKind {
	for _, k := range errorKinds {
		if errors.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindInternal
}

// ReasonOf returns the name of the named domain error wrapped in err, if any.
func ReasonOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Name
	}
	return ""
}
