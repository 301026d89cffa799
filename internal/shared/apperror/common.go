package apperror

import "fmt"

var (
	ErrNotFound        = New(KindNotFound, "Resource not found")
	ErrForbidden       = New(KindForbidden, "Access is denied")
	ErrVersionConflict = New(KindVersionConflict, "Version mismatch")
	ErrEmailConflict   = New(KindEmailConflict, "Email already in use")
)

// Validation groups field violations into one 400 error. The kind follows the
// first violation.
func Validation(errs ...FieldError) *AppError {
	kind := KindInvalidFieldFormat
	if len(errs) > 0 && errs[0].Kind != KindUnexpected {
		kind = errs[0].Kind
	}
	return &AppError{
		Kind:   kind,
		Detail: "Invalid request content",
		Errors: errs,
	}
}

func RequiredField(field string) *AppError {
	return Validation(FieldError{Field: field, Message: "must not be blank", Kind: KindRequiredFieldMissing})
}

func InvalidField(field, message string) *AppError {
	return Validation(FieldError{Field: field, Message: message, Kind: KindInvalidFieldFormat})
}

func UnrecognizedField(fields ...string) *AppError {
	errs := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		errs = append(errs, FieldError{Field: f, Message: "Field is not allowed", Kind: KindUnrecognizedField})
	}
	detail := "Unrecognized field in request body"
	if len(fields) == 1 {
		detail = fmt.Sprintf("Unrecognized field %q", fields[0])
	}
	return New(KindUnrecognizedField, detail, errs...)
}

func MalformedJSON(err error) *AppError {
	return &AppError{
		Kind:   KindMalformedInput,
		Title:  "Malformed JSON",
		Detail: "Request body is not valid JSON",
		Errors: []FieldError{{Field: "body", Message: "JSON is not valid", Kind: KindMalformedInput}},
		Err:    err,
	}
}

func WrongFieldType(field, expected string, err error) *AppError {
	return &AppError{
		Kind:   KindMalformedInput,
		Title:  "Wrong field type",
		Detail: fmt.Sprintf("Field '%s' has the wrong type", field),
		Errors: []FieldError{{Field: field, Message: "Expected type " + expected, Kind: KindMalformedInput}},
		Err:    err,
	}
}

func MissingBody() *AppError {
	return New(KindMissingBody, "Required request body is missing")
}

func MissingParameter(name string) *AppError {
	return New(KindMissingParameter,
		fmt.Sprintf("Required request parameter '%s' is not present", name),
		FieldError{Field: name, Message: "must not be null", Kind: KindMissingParameter},
	)
}

func NotFound(resource string, id any) *AppError {
	return New(KindNotFound,
		fmt.Sprintf("No %s with id: %v", resource, id),
		FieldError{Field: "resource", Message: fmt.Sprintf("%s %v not found", resource, id), Kind: KindNotFound},
	)
}

func VersionConflict(requested, actual int64) *AppError {
	return New(KindVersionConflict,
		fmt.Sprintf("Version mismatch: request %d but actual value is %d", requested, actual),
		FieldError{Field: "version", Message: fmt.Sprintf("Expected version %d but was %d", actual, requested), Kind: KindVersionConflict},
	)
}

func EmailConflict(email string) *AppError {
	return New(KindEmailConflict,
		"Email already in use: "+email,
		FieldError{Field: "email", Message: "Email already in use", Kind: KindEmailConflict},
	)
}

func Conflict(detail string, err error) *AppError {
	e := Wrap(err, KindConflict, detail)
	if e == nil {
		e = New(KindConflict, detail)
	}
	return e
}

func Forbidden() *AppError {
	return New(KindForbidden, "Access is denied")
}

func Unauthenticated(detail string) *AppError {
	return New(KindUnauthenticated, detail)
}

func Internal(err error) *AppError {
	e := Wrap(err, KindUnexpected, "An unexpected error occurred")
	if e == nil {
		e = New(KindUnexpected, "An unexpected error occurred")
	}
	return e
}
