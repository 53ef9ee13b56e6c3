package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name instead of the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationErrorResponse is written for bodies that decode but fail validation.
type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"error_description"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// BindJSON decodes the request body into T and validates it using struct tags.
// On failure it has already written a 400 response and returns the error.
func BindJSON[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var value T

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&value); err != nil {
		WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:   "invalid_request",
			Message: decodeMessage(err),
		})
		return value, err
	}

	if err := validate.Struct(value); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:   "invalid_request",
				Message: err.Error(),
			})
			return value, err
		}
		WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:   "validation_failed",
			Message: "request validation failed",
			Fields:  fieldMessages(verrs),
		})
		return value, err
	}

	return value, nil
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		return fmt.Sprintf("invalid data type for field '%s'", typeErr.Field)
	case errors.Is(err, io.EOF):
		return "request body is empty"
	default:
		return fmt.Sprintf("failed to parse JSON: %s", err.Error())
	}
}

func fieldMessages(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "this field is required"
		case "email":
			msg = "must be a valid email address"
		case "min":
			msg = fmt.Sprintf("value is too short (minimum %s)", fe.Param())
		case "max":
			msg = fmt.Sprintf("value is too long (maximum %s)", fe.Param())
		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())
		case "gte", "lte":
			msg = fmt.Sprintf("out of range (%s %s)", fe.Tag(), fe.Param())
		default:
			msg = "invalid value"
		}
		out[fe.Field()] = msg
	}
	return out
}
