// Package apierr carries the failure taxonomy surfaced to API clients.
// Every failure maps to one HTTP status and a human-readable message; the
// response body mirrors the status as {"success":false,"status":s,"message":m}.
package apierr

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// Error is a client-visible failure.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func NotFound(message string) *Error        { return New(http.StatusNotFound, message) }
func Forbidden(message string) *Error       { return New(http.StatusForbidden, message) }
func Unauthenticated(message string) *Error { return New(http.StatusUnauthorized, message) }
func Conflict(message string) *Error        { return New(http.StatusConflict, message) }
func Invalid(message string) *Error         { return New(http.StatusBadRequest, message) }
func Internal(message string) *Error        { return New(http.StatusInternalServerError, message) }

// FromDB maps a storage error to the taxonomy: missing rows become NotFound
// with the given message, unique violations become Conflict, anything else is
// an internal failure.
func FromDB(err error, notFoundMessage string) *Error {
	if errors.Is(err, sql.ErrNoRows) {
		return NotFound(notFoundMessage)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return Conflict("Record already exists!")
	}
	return Internal("Something went wrong!")
}

// Status extracts the HTTP status for any error, defaulting to 500.
func Status(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
