// Package errors defines the application error taxonomy. Every error that can
// reach an operator carries an HTTP status, a stable business code and a
// user-facing message; handlers render them into the response envelope.
package errors

import (
	"net/http"

	"comanda/internal/errors"
)

// AppError is the interface implemented by every user-visible error.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Stable business error code
	Message() string   // User-facing message
	Details() string   // Optional detail text
}

// BaseError is the plain value implementation of AppError.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detail text, empty unless set with WithDetails.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detail text.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error values. User-facing messages are in Spanish, matching the
// locale of the deployed site.
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		"",
	)

	ErrUnknownEntityKind = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_ENTITY_KIND",
		"Tipo de entidad no reconocido",
		"",
	)

	// Products
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Producto no encontrado",
		"",
	)

	ErrProductNameTaken = NewBaseError(
		http.StatusConflict,
		"PRODUCT_NAME_TAKEN",
		"Ya existe un producto con ese nombre",
		"",
	)

	// Tables
	ErrTableNotFound = NewBaseError(
		http.StatusNotFound,
		"TABLE_NOT_FOUND",
		"Mesa no encontrada",
		"",
	)

	ErrTableNumberTaken = NewBaseError(
		http.StatusConflict,
		"TABLE_NUMBER_TAKEN",
		"Ya existe una mesa con ese número",
		"",
	)

	ErrTableActionNotAllowed = NewBaseError(
		http.StatusConflict,
		"TABLE_ACTION_NOT_ALLOWED",
		"La mesa no admite esa acción en su estado actual",
		"",
	)

	// Suppliers / recipes
	ErrSupplierNotFound = NewBaseError(
		http.StatusNotFound,
		"SUPPLIER_NOT_FOUND",
		"Proveedor no encontrado",
		"",
	)

	ErrRecipeNotFound = NewBaseError(
		http.StatusNotFound,
		"RECIPE_NOT_FOUND",
		"Receta no encontrada",
		"",
	)

	// Restaurant state container
	ErrContainerNotInitialized = NewBaseError(
		http.StatusInternalServerError,
		"CONTAINER_NOT_INITIALIZED",
		"El estado del restaurante no está inicializado",
		"",
	)

	// General
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)
)

// DatabaseExecuteError represents a failed record-store call. The attempted
// mutation is not applied and the operator sees a generic failure banner.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a store-failure error wrapping the cause.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "store execution failed").Error()
}

// Unwrap exposes the underlying store error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

// Message returns the user-facing message.
func (e *DatabaseExecuteError) Message() string {
	return "No se pudo completar la operación, intente nuevamente"
}

// Details returns detail text.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
