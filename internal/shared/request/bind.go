package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go-employee/internal/shared/apperror"
	"go-employee/internal/shared/validation"

	"github.com/gin-gonic/gin"
)

var fieldCache sync.Map // reflect.Type -> map[string]struct{}

// BindJSON strictly decodes the request body into obj and validates it.
// Unknown keys are rejected by exact name, wrong JSON types report the field
// and the expected type.
func BindJSON(c *gin.Context, obj any) error {
	if c.Request == nil || c.Request.Body == nil {
		return apperror.MissingBody()
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return apperror.MissingBody()
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	if err := Decode(body, obj); err != nil {
		return err
	}
	return validation.Struct(obj)
}

// Decode applies strict JSON decoding without validation.
func Decode(body []byte, obj any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return apperror.MissingBody()
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return decodeError(err)
	}
	if raw == nil {
		return apperror.MissingBody()
	}
	if unknown := unknownFields(raw, obj); len(unknown) > 0 {
		return apperror.UnrecognizedField(unknown...)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return decodeError(err)
	}
	if dec.More() {
		return apperror.MalformedJSON(errors.New("unexpected data after JSON object"))
	}
	return nil
}

func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return apperror.MalformedJSON(err)
		}
		return apperror.WrongFieldType(field, jsonTypeName(typeErr.Type), err)
	case errors.As(err, &syntaxErr),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF):
		return apperror.MalformedJSON(err)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		name := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return apperror.UnrecognizedField(name)
	default:
		return apperror.MalformedJSON(err)
	}
}

func unknownFields(raw map[string]json.RawMessage, obj any) []string {
	known := jsonFields(reflect.TypeOf(obj))
	var unknown []string
	for key := range raw {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func jsonFields(t reflect.Type) map[string]struct{} {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(map[string]struct{})
	}

	fields := make(map[string]struct{})
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				continue
			}
			if name == "" {
				name = f.Name
			}
			fields[name] = struct{}{}
		}
	}
	fieldCache.Store(t, fields)
	return fields
}

func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return t.Kind().String()
	}
}
