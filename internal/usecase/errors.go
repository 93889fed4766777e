package usecase

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrAlreadyExists = errors.New("already exists")

	// ErrIncorrectCredentials is deliberately the same for unknown users and
	// wrong passwords so responses do not leak which accounts exist.
	ErrIncorrectCredentials = errors.New("incorrect username or password")
)
