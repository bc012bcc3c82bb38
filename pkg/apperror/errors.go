package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Upstream Ledger API (UPSTREAM) ----

func ErrUpstreamUnavailable(err error) *AppError {
	return Wrap("UPSTREAM_001", "Ledger API unreachable", http.StatusBadGateway, err)
}

func ErrUpstreamStatus(status int) *AppError {
	return New("UPSTREAM_002", fmt.Sprintf("Ledger API returned status %d", status), http.StatusBadGateway)
}

func ErrUpstreamDecode(err error) *AppError {
	return Wrap("UPSTREAM_003", "Ledger API returned an undecodable payload", http.StatusBadGateway, err)
}

// ---- Explorer Requests (EXPLORE) ----

func ErrNotFound(entity string) *AppError {
	return New("EXPLORE_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInvalidID(id string) *AppError {
	return New("EXPLORE_002", fmt.Sprintf("Invalid id: %s", id), http.StatusBadRequest)
}

// Validation returns an EXPLORE_003 request validation error.
func Validation(message string) *AppError {
	return New("EXPLORE_003", message, http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrCacheError(err error) *AppError {
	return Wrap("SYS_002", "Cache failure", http.StatusInternalServerError, err)
}
