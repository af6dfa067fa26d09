package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"
)

var validate = newValidator()

// newValidator reports fields by their JSON names so messages match the wire.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// pathParam binds the named chi URL parameter into dest using the OpenAPI
// "simple" style.
func pathParam(r *http.Request, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dest,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return invalidParam(name, err)
	}
	return nil
}

// queryParam binds the named form-style query parameter into dest.
// Optional parameters must be bound into a pointer.
func queryParam(r *http.Request, name string, required bool, dest any) error {
	if err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), dest); err != nil {
		return invalidParam(name, err)
	}
	return nil
}

func invalidParam(name string, err error) error {
	return &requestError{
		status: http.StatusBadRequest,
		code:   "invalid_parameter",
		msg:    fmt.Sprintf("invalid format for parameter %s: %v", name, err),
	}
}

// decodeBody reads a JSON body into dst and validates it.
// Oversized bodies become 413, malformed JSON 400, rule violations 422.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return bodyError(err)
	}
	if err := validate.Struct(dst); err != nil {
		return &requestError{
			status: http.StatusUnprocessableEntity,
			code:   "validation_error",
			msg:    formatValidationError(err),
		}
	}
	return nil
}

// readBody returns the raw body for endpoints that parse it themselves.
func readBody(r *http.Request) ([]byte, error) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, bodyError(err)
	}
	return b, nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return &requestError{
			status: http.StatusRequestEntityTooLarge,
			code:   "body_too_large",
			msg:    fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
		}
	case errors.Is(err, io.EOF):
		return &requestError{status: http.StatusBadRequest, code: "invalid_body", msg: "request body is required"}
	default:
		return &requestError{status: http.StatusBadRequest, code: "invalid_body", msg: "can't decode JSON body: " + err.Error()}
	}
}

// formatValidationError joins every field error into one readable message.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
