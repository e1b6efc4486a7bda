package errors

import (
	"fmt"
	"net/http"
)

// IntegrityViolationError is returned when a delete is blocked because other
// rows still reference the entity. It carries the exact dependent count so the
// operator sees how many rows are in the way instead of a generic failure.
type IntegrityViolationError struct {
	kind          string
	key           string
	blockingCount int64
}

// NewIntegrityViolation creates an integrity-violation error for the given
// entity kind and key with the summed dependent count.
func NewIntegrityViolation(kind, key string, blockingCount int64) *IntegrityViolationError {
	return &IntegrityViolationError{
		kind:          kind,
		key:           key,
		blockingCount: blockingCount,
	}
}

// BlockingCount returns the number of dependent rows that blocked the delete.
func (e *IntegrityViolationError) BlockingCount() int64 {
	return e.blockingCount
}

// Error implements the error interface.
func (e *IntegrityViolationError) Error() string {
	return fmt.Sprintf("cannot delete %s %s: %d dependent rows", e.kind, e.key, e.blockingCount)
}

// HTTPCode returns the HTTP status code.
func (e *IntegrityViolationError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code.
func (e *IntegrityViolationError) ErrorCode() string {
	return "INTEGRITY_VIOLATION"
}

// Message returns the user-facing message.
func (e *IntegrityViolationError) Message() string {
	return "No se puede eliminar: existen registros relacionados"
}

// Details returns the dependent count as detail text.
func (e *IntegrityViolationError) Details() string {
	return fmt.Sprintf("%d registros dependen de este elemento", e.blockingCount)
}
