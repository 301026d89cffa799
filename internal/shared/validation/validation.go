package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"go-employee/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	initOnce sync.Once
	initErr  error

	emailValidator = validator.New()
)

// NotBlank reports whether s is present and not empty after trimming.
func NotBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// NullOrNotBlank accepts an absent value; a present one must not be blank.
func NullOrNotBlank(s *string) bool {
	return s == nil || NotBlank(s)
}

// ValidEmail reports whether s has a well-formed email shape once surrounding
// whitespace is removed. Stored emails are trimmed the same way.
func ValidEmail(s string) bool {
	return emailValidator.Var(strings.TrimSpace(s), "email") == nil
}

// Init registers the custom tags on gin's validator and reports field names
// by their json tag.
func Init() error {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			initErr = errors.New("validation: unexpected binding engine")
			return
		}
		initErr = Register(v)
	})
	return initErr
}

// Register installs json field names and the notblank, nullornotblank and
// email tags. email replaces the built-in check so padded input is accepted.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	tags := map[string]func(s *string) bool{
		"notblank":       NotBlank,
		"nullornotblank": NullOrNotBlank,
		"email": func(s *string) bool {
			return s != nil && ValidEmail(*s)
		},
	}
	for tag, check := range tags {
		if err := v.RegisterValidation(tag, stringRule(check)); err != nil {
			return err
		}
	}
	return nil
}

func stringRule(check func(s *string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s, ok := stringValue(fl.Field())
		return ok && check(s)
	}
}

// stringValue unwraps string and *string fields. A nil pointer yields nil.
func stringValue(field reflect.Value) (*string, bool) {
	switch field.Kind() {
	case reflect.String:
		s := field.String()
		return &s, true
	case reflect.Ptr:
		if field.IsNil() {
			return nil, true
		}
		return stringValue(field.Elem())
	default:
		return nil, false
	}
}

// Struct validates obj with gin's validator and returns the violations as a
// single validation error.
func Struct(obj any) error {
	if err := Init(); err != nil {
		return apperror.Internal(err)
	}
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return ToAppError(err)
	}
	return nil
}

// ToAppError converts validator errors into field errors, keeping struct
// field order.
func ToAppError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Wrap(err, apperror.KindInvalidFieldFormat, "Invalid request content")
	}

	fieldErrs := make([]apperror.FieldError, 0, len(verrs))
	for _, e := range verrs {
		fieldErrs = append(fieldErrs, toFieldError(e))
	}
	return apperror.Validation(fieldErrs...)
}

func toFieldError(e validator.FieldError) apperror.FieldError {
	fe := apperror.FieldError{Field: e.Field(), Kind: apperror.KindInvalidFieldFormat}
	switch e.Tag() {
	case "required":
		fe.Message = "must not be null"
		fe.Kind = apperror.KindRequiredFieldMissing
	case "notblank", "nullornotblank":
		fe.Message = "must not be blank"
		fe.Kind = apperror.KindRequiredFieldMissing
	case "email":
		fe.Message = "must be a well-formed email address"
	case "gt":
		fe.Message = "must be greater than " + e.Param()
	case "gte", "min":
		fe.Message = "must be greater than or equal to " + e.Param()
	case "lte", "max":
		fe.Message = "must be less than or equal to " + e.Param()
	default:
		fe.Message = "is invalid"
	}
	return fe
}
