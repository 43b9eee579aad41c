package response

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		data any
		want Response
	}{
		{
			name: "without data",
			msg:  "Operation successful.",
			want: Response{
				Status:  StatusSuccess,
				Message: "Operation successful.",
			},
		},
		{
			name: "with data",
			msg:  "Operation successful.",
			data: map[string]any{"id": 1},
			want: Response{
				Status:  StatusSuccess,
				Message: "Operation successful.",
				Data:    map[string]any{"id": 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Success(tt.msg, tt.data)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestError(t *testing.T) {
	got := Error(CodeNoData, "no analytics data")

	assert.Equal(t, Response{
		Status:  StatusError,
		Error:   CodeNoData,
		Message: "no analytics data",
	}, got)
}

func TestValidation(t *testing.T) {
	type req struct {
		Name  string `json:"name" validate:"required"`
		URL   string `json:"url" validate:"required,url"`
		Topic string `json:"topic" validate:"omitempty,oneof=acquisition activation retention"`
	}

	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	tests := []struct {
		name string
		req  req
		want []ValidationError
	}{
		{
			name: "one error",
			req: req{
				Name: "",
				URL:  "https://example.com",
			},
			want: []ValidationError{
				{Field: "name", Message: "this field is required"},
			},
		},
		{
			name: "three errors",
			req: req{
				Name:  "",
				URL:   "not url",
				Topic: "unknown",
			},
			want: []ValidationError{
				{Field: "name", Message: "this field is required"},
				{Field: "url", Message: "invalid url"},
				{Field: "topic", Message: "unsupported value"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			got := Validation(err)

			assert.Equal(t, StatusError, got.Status)
			assert.Equal(t, CodeValidation, got.Error)
			assert.Equal(t, tt.want, got.Errors)
		})
	}

	t.Run("not validation error", func(t *testing.T) {
		got := Validation(errors.New("unknown error"))

		assert.Equal(t, CodeValidation, got.Error)
		assert.Empty(t, got.Errors)
	})
}
