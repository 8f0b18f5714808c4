package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these onto HTTP status codes.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrDuplicateName       = errors.New("name already in use")
	ErrGroupNotEmpty       = errors.New("group still has guests")
	ErrProviderUnavailable = errors.New("messaging provider unavailable")
)
