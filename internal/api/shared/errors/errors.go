package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/buxdao/holder-bot/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"

	// Server errors (5xx)
	ErrCodeInternalError      ErrorCode = "internal_error"
	ErrCodeStoreUnavailable   ErrorCode = "store_unavailable"
	ErrCodeUpstreamError      ErrorCode = "upstream_error"
	ErrCodeServiceUnavailable ErrorCode = "service_unavailable"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Response is the envelope every error body is sent in
type Response struct {
	Error *APIError `json:"error"`
}

func newError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details)
}

func NewConflictError(message string, details ...string) *APIError {
	return newError(ErrCodeConflict, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(ErrCodeUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *APIError {
	return newError(ErrCodeForbidden, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details)
}

// FromDomainError maps a service error to an HTTP status and an API error.
// Unrecognized errors map to 500.
func FromDomainError(err error) (int, *APIError) {
	switch {
	case errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest, NewBadRequestError("Invalid wallet address", err.Error())
	case errors.Is(err, domain.ErrWalletAlreadyLinked):
		return http.StatusConflict, NewConflictError("Wallet already linked")
	case errors.Is(err, domain.ErrWalletNotLinked):
		return http.StatusNotFound, NewNotFoundError("Wallet not linked")
	case errors.Is(err, domain.ErrAccrualConflict):
		return http.StatusConflict, NewConflictError("Rewards were updated concurrently, retry the request")
	case errors.Is(err, domain.ErrRegistry), errors.Is(err, domain.ErrAccrualStore):
		return http.StatusServiceUnavailable, newError(ErrCodeStoreUnavailable, "Storage unavailable", nil)
	case errors.Is(err, domain.ErrIdentityService):
		return http.StatusBadGateway, newError(ErrCodeUpstreamError, "Discord request failed", nil)
	case errors.Is(err, domain.ErrChainQuery):
		return http.StatusBadGateway, newError(ErrCodeUpstreamError, "Solana request failed", nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, newError(ErrCodeServiceUnavailable, "Request canceled", nil)
	default:
		return http.StatusInternalServerError, NewInternalError("Internal server error")
	}
}
