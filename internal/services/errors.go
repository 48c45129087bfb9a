package services

import "errors"

// Failure taxonomy shared by all services. Handlers map these onto HTTP
// statuses; anything unrecognized surfaces as a generic 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrInvalidPayload     = errors.New("invalid payload")
)
