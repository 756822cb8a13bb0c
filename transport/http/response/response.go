package response

import (
	"encoding/json"
	"net/http"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/shared/logger"
	"todolist/shared/result"
)

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends jsonPayload as the response body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithResult writes a service outcome: the body for OK and Created, an empty
// body for NoContent and a Location header for Redirect.
func WithResult[T any](writer http.ResponseWriter, res result.Result[T]) {
	code := res.Kind.StatusCode()

	switch res.Kind {
	case result.KindRedirect:
		writer.Header().Set(constant.RequestHeaderLocation, res.Location)
		writer.WriteHeader(code)
	case result.KindNoContent:
		writer.WriteHeader(code)
	default:
		response(writer, code, res.Body)
	}
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if code == http.StatusInternalServerError {
		errMsg = http.StatusText(code)
	}

	response(writer, code, Error{Error: &errMsg})
}

// WithUnauthorized sends a 401 carrying the basic auth challenge for realm
func WithUnauthorized(writer http.ResponseWriter, realm string, err error) {
	writer.Header().Set(constant.RequestHeaderWWWAuthenticate, constant.AuthSchemeBasic+` realm="`+realm+`"`)
	WithError(writer, err)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
