package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be at most {param} characters",
	"min":      "{field} must be at least {param}",
	"uuid":     "{field} must be a valid UUID",
}

// message describes every broken rule, fields named by their JSON path
// below the root, for example "tasks[1].name".
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, fieldErr := range valErrors {
		template, ok := messages[fieldErr.Tag()]
		if !ok {
			template = "{field} failed the " + fieldErr.Tag() + " rule"
		}

		replacer := strings.NewReplacer("{field}", path(fieldErr.Namespace()), "{param}", fieldErr.Param())
		parts = append(parts, replacer.Replace(template))
	}

	return strings.Join(parts, "; ")
}

func path(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return rest
}
