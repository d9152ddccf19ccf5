// internal/app/system/respond/respond.go

// Package respond centralizes JSON response writing for the API handlers so
// every success and failure uses the same envelope.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/grouphub/internal/app/system/apperr"
	"go.uber.org/zap"
)

// ErrorBody is the JSON shape of every failure response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageBody wraps list results with minimal paging metadata.
type PageBody struct {
	Content []any `json:"content"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
}

// JSON writes payload with the given status code.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response.
func OK(w http.ResponseWriter, payload any) { JSON(w, http.StatusOK, payload) }

// Created writes a 201 response.
func Created(w http.ResponseWriter, payload any) { JSON(w, http.StatusCreated, payload) }

// NoContent writes a 204 response with an empty body.
func NoContent(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) }

// Error converts err into the standard error envelope. Typed failures from
// apperr keep their kind and detail; anything else is logged and hidden
// behind a generic 500 so internals never leak to clients.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		JSON(w, appErr.HTTPStatus(), ErrorBody{Code: string(appErr.Kind), Message: appErr.Message})
		return
	}
	if log != nil {
		log.Error("unhandled error", zap.Error(err))
	}
	JSON(w, http.StatusInternalServerError, ErrorBody{
		Code:    "INTERNAL",
		Message: "An unexpected error occurred",
	})
}
