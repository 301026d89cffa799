package apperror

import "errors"

const (
	ProblemContentType = "application/problem+json"
	problemTypeBlank   = "about:blank"
)

// Problem is the uniform error body returned for every 4xx/5xx response.
type Problem struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail"`
	Instance string       `json:"instance"`
	Errors   []FieldError `json:"errors"`
}

// ToHTTP classifies any error into a Problem. Errors that are not an AppError
// are reported as unexpected and never leak their message.
func ToHTTP(err error, instance string) Problem {
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr == nil {
		appErr = Internal(err)
	}

	meta := appErr.Kind.meta()
	p := Problem{
		Type:     problemTypeBlank,
		Title:    appErr.title(),
		Status:   meta.status,
		Detail:   appErr.Detail,
		Instance: instance,
		Errors:   appErr.Errors,
	}
	if meta.status >= 500 {
		p.Title = meta.title
		p.Detail = "An unexpected error occurred"
		p.Errors = nil
	}
	if p.Detail == "" {
		p.Detail = p.Title
	}
	if len(p.Errors) == 0 {
		p.Errors = []FieldError{{Field: meta.field, Message: meta.message, Kind: appErr.Kind}}
	}
	return p
}
