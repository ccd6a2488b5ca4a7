package common

import (
	"net/http"
)

// ErrorResponse is the JSON error envelope returned by the API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CustomError carries an error code and HTTP status alongside the cause.
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError creates a new CustomError.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError marks input that failed domain validation.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError creates a new validation error.
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// Predefined error codes.
const (
	ErrCodeInvalidRequest  = "INVALID_REQUEST"     // 400
	ErrCodeNotFound        = "NOT_FOUND"           // 404
	ErrCodeConflict        = "CONFLICT"            // 409
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"   // 429
	ErrCodeInternalError   = "INTERNAL_ERROR"      // 500
	ErrCodeBadGateway      = "BAD_GATEWAY"         // 502
	ErrCodeServiceUnavail  = "SERVICE_UNAVAILABLE" // 503
)

// Predefined errors.
var (
	ErrInvalidRequest = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrNotFound       = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrConflict       = NewError(ErrCodeConflict, "resource conflict", http.StatusConflict, nil)
	ErrTooManyReqs    = NewError(ErrCodeTooManyRequests, "too many requests", http.StatusTooManyRequests, nil)
	ErrInternalError  = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)

	// Domain errors.
	ErrRecipeNotFound   = NewError("RECIPE_NOT_FOUND", "recipe not found", http.StatusNotFound, nil)
	ErrMealPlanNotFound = NewError("MEAL_PLAN_NOT_FOUND", "meal plan entry not found", http.StatusNotFound, nil)
	ErrInvalidDay       = NewError("INVALID_DAY", "invalid day of week", http.StatusBadRequest, nil)
	ErrImportFailed     = NewError("IMPORT_FAILED", "recipe import failed", http.StatusBadGateway, nil)
	ErrCacheDisabled    = NewError("CACHE_DISABLED", "cache is disabled", http.StatusServiceUnavailable, nil)
)
