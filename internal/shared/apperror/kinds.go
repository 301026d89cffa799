package apperror

import "net/http"

// Kind is the closed set of failure classes the API reports.
type Kind int

const (
	// Server errors (5xx)
	KindUnexpected Kind = iota

	// Client errors (4xx)
	KindRequiredFieldMissing
	KindInvalidFieldFormat
	KindUnrecognizedField
	KindMalformedInput
	KindMissingBody
	KindMissingParameter
	KindNotFound
	KindVersionConflict
	KindEmailConflict
	KindConflict
	KindForbidden
	KindUnauthenticated
)

type kindMeta struct {
	name    string
	status  int
	title   string
	field   string
	message string
}

var kinds = map[Kind]kindMeta{
	KindUnexpected:           {"UNEXPECTED", http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), "server", "Unexpected error"},
	KindRequiredFieldMissing: {"REQUIRED_FIELD_MISSING", http.StatusBadRequest, "Validation failed", "body", "must not be blank"},
	KindInvalidFieldFormat:   {"INVALID_FIELD_FORMAT", http.StatusBadRequest, "Validation failed", "body", "is invalid"},
	KindUnrecognizedField:    {"UNRECOGNIZED_FIELD", http.StatusBadRequest, "Unknown field in request", "body", "Field is not allowed"},
	KindMalformedInput:       {"MALFORMED_INPUT", http.StatusBadRequest, "Malformed JSON", "body", "JSON is not valid"},
	KindMissingBody:          {"MISSING_BODY", http.StatusBadRequest, "Request body is missing", "body", "Request body is required"},
	KindMissingParameter:     {"MISSING_PARAMETER", http.StatusBadRequest, "Validation failed", "parameter", "must not be null"},
	KindNotFound:             {"NOT_FOUND", http.StatusNotFound, "Not Found", "resource", "Resource not found"},
	KindVersionConflict:      {"VERSION_CONFLICT", http.StatusConflict, "Version conflict", "version", "Version mismatch"},
	KindEmailConflict:        {"EMAIL_CONFLICT", http.StatusConflict, "Email conflict", "email", "Email already in use"},
	KindConflict:             {"CONFLICT", http.StatusConflict, "Conflict", "conflict", "Data integrity violation"},
	KindForbidden:            {"FORBIDDEN", http.StatusForbidden, "Forbidden", "auth", "Insufficient privileges"},
	KindUnauthenticated:      {"UNAUTHENTICATED", http.StatusUnauthorized, "Unauthorized", "auth", "Missing or invalid credentials/session"},
}

func (k Kind) meta() kindMeta {
	if m, ok := kinds[k]; ok {
		return m
	}
	return kinds[KindUnexpected]
}

func (k Kind) String() string { return k.meta().name }

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int { return k.meta().status }

// Title returns the default problem title for the kind.
func (k Kind) Title() string { return k.meta().title }
