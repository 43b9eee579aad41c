// Package response defines the JSON envelope returned by every API endpoint.
package response

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes let clients tell apart conditions that share an HTTP status.
const (
	CodeBadRequest   = "bad_request"
	CodeValidation   = "validation_error"
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeNoData       = "no_data"
	CodeConflict     = "conflict"
	CodeRateLimited  = "rate_limited"
	CodeServerError  = "server_error"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Response struct {
	Status  string            `json:"status"`
	Error   string            `json:"error,omitempty"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
	Data    any               `json:"data,omitempty"`
}

var (
	EmptyRequestBody = Error(CodeBadRequest, "empty request body")
	BadRequest       = Error(CodeBadRequest, "invalid request body")
	Unauthorized     = Error(CodeUnauthorized, "missing or invalid access token")
	TooManyRequests  = Error(CodeRateLimited, "too many requests, please try again later")
	ServerError      = Error(CodeServerError, "server error occurred")
)

func Success(msg string, data any) Response {
	return Response{
		Status:  StatusSuccess,
		Message: msg,
		Data:    data,
	}
}

func Error(code, msg string) Response {
	return Response{
		Status:  StatusError,
		Error:   code,
		Message: msg,
	}
}

// Validation converts validator errors into an error response listing each invalid field.
func Validation(err error) Response {
	resp := Error(CodeValidation, "validation error")
	resp.Errors = getValidationErrors(err)
	return resp
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "url":
		return "invalid url"
	case "oneof":
		return "unsupported value"
	case "min", "max":
		return "invalid length"
	case "alias":
		return "only letters, digits, '-' and '_' are allowed"
	default:
		return "invalid value"
	}
}

func getValidationErrors(err error) []ValidationError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	errs := make([]ValidationError, 0, len(validationErrs))
	for _, e := range validationErrs {
		errs = append(errs, ValidationError{
			Field:   e.Field(),
			Message: messageForTag(e.Tag()),
		})
	}

	return errs
}
