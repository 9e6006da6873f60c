// services/errors.go
package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// APIError is a typed service error carrying the HTTP status the boundary
// layer should surface.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: message}
}

// NewInvalidStateError reports an operation not permitted in the entity's
// current state (inactive merchant, already-deleted record).
func NewInvalidStateError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// IsDuplicateKeyError reports whether err is a unique-constraint violation,
// across the engines we run against (postgres in production, sqlite in tests).
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// PostgreSQL error code 23505
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
		return true
	}

	// SQLite
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsDatabaseError reports whether err came from the database engine rather
// than from service logic. Such errors are normalized to a generic
// "Database Error" response so internal detail never leaks.
func IsDatabaseError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return true
	}

	return errors.Is(err, gorm.ErrInvalidTransaction) ||
		errors.Is(err, gorm.ErrInvalidDB) ||
		errors.Is(err, gorm.ErrInvalidData)
}
