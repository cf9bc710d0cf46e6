package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// ConflictError is a constraint violation translated into a message that
// names the offending value.
type ConflictError struct {
	Message string
	Detail  string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// CatalogInUseError is returned when deleting a catalog that artifacts still reference.
type CatalogInUseError struct {
	CatalogID string
	Artifacts int64
}

func (e *CatalogInUseError) Error() string {
	return fmt.Sprintf("Catalog %q still has %d artifact(s)", e.CatalogID, e.Artifacts)
}
