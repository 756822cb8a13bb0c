package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"todolist/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var (
	errTrailingData = errors.New("unexpected data after the JSON body")

	validate = newValidate()
)

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate decodes one JSON document from r into data and checks its rules.
// A body that is not a single JSON document is a bad request. A decoded body
// that breaks a rule is an unprocessable entity.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if decoder.More() {
		return failure.BadRequest(errTrailingData) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.UnprocessableEntity(message(err)) //nolint:wrapcheck
	}

	return nil
}
