package service

import (
	"context"
	"slices"
	"todolist/shared/failure"
)

//go:generate go run go.uber.org/mock/mockgen -source=./authenticator.go -destination=../mocks/authenticator_mock.go -package=mocks

const (
	errMessageBadCredentials = "invalid username or password"
	minUsernameLength        = 2
)

// Authenticator verifies a username and password and returns the owner
// every stored Todo is scoped to.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// ReversedNameAuthenticator accepts any username of two or more characters
// whose password is the username spelled backwards.
type ReversedNameAuthenticator struct{}

func NewReversedNameAuthenticator() Authenticator {
	return ReversedNameAuthenticator{}
}

func (ReversedNameAuthenticator) Authenticate(_ context.Context, username, password string) (string, error) {
	name := []rune(username)
	if len(name) < minUsernameLength {
		return "", failure.Unauthorized(errMessageBadCredentials)
	}

	slices.Reverse(name)

	if string(name) != password {
		return "", failure.Unauthorized(errMessageBadCredentials)
	}

	return username, nil
}
