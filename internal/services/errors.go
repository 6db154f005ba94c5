package services

import (
	"errors"

	"loja/internal/repositories"
)

// Error kinds. Handlers map ErrNotFound to 404 and the rest to 400.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicate         = errors.New("duplicate")
	ErrConflict          = errors.New("conflict")
	ErrInvalidReference  = errors.New("invalid reference")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Error is a domain rule violation carrying the message shown to the client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func isNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}
