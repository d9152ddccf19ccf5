// internal/app/system/apperr/apperr.go

// Package apperr defines the typed failure kinds raised by the service
// layer. Every expected business failure is one of these values so callers
// (and the transport layer) can branch on kind instead of string matching.
// Panics are reserved for programmer errors.
package apperr

import (
	"errors"
	"net/http"
)

// Kind identifies the class of failure.
type Kind string

const (
	KindInvalidArgument  Kind = "INVALID_ARGUMENT"
	KindNotAuthenticated Kind = "NOT_AUTHENTICATED"
	KindNotFound         Kind = "RESOURCE_NOT_FOUND"
	KindAlreadyExists    Kind = "RESOURCE_ALREADY_EXISTS"
	KindUpdateConflict   Kind = "RESOURCE_UPDATE_CONFLICT"
	KindValidationFailed Kind = "VALIDATION_FAILED"
)

// Error carries a failure kind, a client-safe detail string, and an
// optional cause kept for server-side logging only.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

// Unwrap lets errors.Is/errors.As traverse to the cause.
func (e *Error) Unwrap() error { return e.Cause }

// HTTPStatus maps the kind to the status code the transport layer writes.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidArgument, KindValidationFailed:
		return http.StatusBadRequest
	case KindNotAuthenticated:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists, KindUpdateConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// InvalidArgument reports a missing/blank/nil required parameter. It is
// always raised before any store call, so it never has side effects.
func InvalidArgument(msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: msg}
}

// NotAuthenticated reports that no actor identity could be resolved for an
// operation that requires one.
func NotAuthenticated(msg string) *Error {
	return &Error{Kind: KindNotAuthenticated, Message: msg}
}

// NotFound reports that a lookup by id found nothing, or that a
// status-gated conditional update matched zero documents.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// AlreadyExists reports a unique-index collision on insert or save.
func AlreadyExists(msg string, cause error) *Error {
	return &Error{Kind: KindAlreadyExists, Message: msg, Cause: cause}
}

// UpdateConflict reports a mutation rejected by the status gate, or a
// conditional update that matched but did not modify (lost a race).
func UpdateConflict(msg string) *Error {
	return &Error{Kind: KindUpdateConflict, Message: msg}
}

// ValidationFailed reports a filter/sort rule violation.
func ValidationFailed(msg string) *Error {
	return &Error{Kind: KindValidationFailed, Message: msg}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
