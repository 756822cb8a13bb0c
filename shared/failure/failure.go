// Package failure carries the HTTP status an error should surface as. Errors
// that are not a Failure surface as 500.
package failure

import (
	"errors"
	"net/http"
)

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// InvalidRequestBody is returned for a well-formed todo that breaks a content rule.
var InvalidRequestBody = &Failure{Code: http.StatusUnprocessableEntity, Message: "Invalid request body"}

func New(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest keeps the message of err. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func UnprocessableEntity(msg string) error {
	return New(http.StatusUnprocessableEntity, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

// GetCode finds the first Failure in the chain of err.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}

func IsUnprocessable(err error) bool {
	return GetCode(err) == http.StatusUnprocessableEntity
}
