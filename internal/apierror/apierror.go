// Package apierror provides the typed error taxonomy and the canonical JSON
// envelope for all 4xx/5xx responses. Handlers never string-match driver
// errors: services return one of these kinds and the HTTP layer maps it to a
// status code, so internal details (stack traces, SQL) never leak to clients.
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies every failure a mutation can produce.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindReferentialConflict
	KindInvalidInput
	KindEmptySelection
	KindInsufficientStock
)

// Error is the one error type services return to handlers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) *Error            { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error            { return &Error{Kind: KindReferentialConflict, Message: msg} }
func InvalidInput(msg string) *Error        { return &Error{Kind: KindInvalidInput, Message: msg} }
func EmptySelection(msg string) *Error      { return &Error{Kind: KindEmptySelection, Message: msg} }
func InsufficientStock(msg string) *Error   { return &Error{Kind: KindInsufficientStock, Message: msg} }
func Internal(msg string, err error) *Error { return &Error{Kind: KindInternal, Message: msg, Err: err} }

// Status maps an error to its HTTP status code. Unknown errors are 500.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindReferentialConflict, KindInsufficientStock:
		return http.StatusConflict
	case KindInvalidInput, KindEmptySelection:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the canonical error envelope for all error responses.
type APIError struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

var kindCodes = map[Kind]string{
	KindNotFound:            "not_found",
	KindReferentialConflict: "referential_conflict",
	KindInvalidInput:        "invalid_input",
	KindEmptySelection:      "empty_selection",
	KindInsufficientStock:   "insufficient_stock",
	KindInternal:            "internal",
}

// New builds the envelope for a plain message with no machine code.
func New(msg string) *APIError { return &APIError{Detail: msg} }

// From builds the envelope from a service error, including its machine code.
func From(err error) *APIError {
	var e *Error
	if errors.As(err, &e) {
		return &APIError{Detail: e.Message, Code: kindCodes[e.Kind]}
	}
	return &APIError{Detail: "Error interno del servidor", Code: "internal"}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
