package apperror

import "fmt"

// FieldError is a single {field, message} entry of a problem response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
}

type AppError struct {
	Kind   Kind         // Failure class, decides status and default title
	Title  string       // Overrides the kind title when set
	Detail string       // Human readable summary
	Errors []FieldError // Per-field entries, defaulted per kind when empty
	Err    error        // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.title()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same kind, so errors.Is
// works against the package sentinels for errors built with details.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Status returns the HTTP status code of the error.
func (e *AppError) Status() int {
	return e.Kind.Status()
}

func (e *AppError) title() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Kind.Title()
}

// New creates a new AppError without wrapping
func New(kind Kind, detail string, errs ...FieldError) *AppError {
	return &AppError{
		Kind:   kind,
		Detail: detail,
		Errors: errs,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, kind Kind, detail string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind:   kind,
		Detail: detail,
		Err:    err,
	}
}
