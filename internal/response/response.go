package response

import "github.com/gin-gonic/gin"

// Error codes used across the service layer. The handler package maps
// these to HTTP status codes.
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// AppError is the error type returned by the service layer
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewValidationError creates an AppError with the validation code
func NewValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, "")
}

// NewNotFoundError creates an AppError with the not-found code
func NewNotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, "")
}

// NewForbiddenError creates an AppError with the forbidden code
func NewForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, "")
}

// NewUnauthorizedError creates an AppError with the unauthorized code
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, "")
}

// ErrorDetail describes a single error in a response body
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned for every failed request
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// SendError writes a structured error response and aborts the request
func SendError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message},
	})
}

// SendSuccess writes a JSON response with the given status
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
