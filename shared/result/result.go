// Package result carries the success outcome of a service operation so the
// transport layer can pick a status code without inspecting the operation.
// Failures travel as errors; see package failure.
package result

import "net/http"

type Kind int

const (
	KindOK Kind = iota
	KindCreated
	KindNoContent
	KindRedirect
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindCreated:
		return "created"
	case KindNoContent:
		return "no_content"
	case KindRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// StatusCode maps the outcome to its wire status.
func (k Kind) StatusCode() int {
	switch k {
	case KindCreated:
		return http.StatusCreated
	case KindNoContent:
		return http.StatusNoContent
	case KindRedirect:
		return http.StatusMovedPermanently
	default:
		return http.StatusOK
	}
}

type Result[T any] struct {
	Kind     Kind
	Location string
	Body     *T
}

func OK[T any](body T) Result[T] {
	return Result[T]{Kind: KindOK, Body: &body}
}

func Created[T any](body T) Result[T] {
	return Result[T]{Kind: KindCreated, Body: &body}
}

func NoContent[T any]() Result[T] {
	return Result[T]{Kind: KindNoContent}
}

// Redirect tells the caller to resubmit at location.
func Redirect[T any](location string) Result[T] {
	return Result[T]{Kind: KindRedirect, Location: location}
}

func (r Result[T]) IsRedirect() bool {
	return r.Kind == KindRedirect
}
