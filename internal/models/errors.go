package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried by AppError.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// FieldError is a single field-level validation message, rendered to
// clients as {"msg": "..."}.
type FieldError struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the standardized API error body. Validation and conflict
// errors carry an Errors list; everything else a single Error message.
type ErrorResponse struct {
	Error  string       `json:"error,omitempty"`
	Code   string       `json:"code,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// AppError is the application error type translated to HTTP at the handler
// boundary. Err holds the underlying cause; it is logged server-side and
// never serialized to clients.
type AppError struct {
	Code    string
	Message string
	Fields  []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a missing entity.
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

// NewValidationError reports a single invalid-input message.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Fields:  []string{message},
	}
}

// NewValidationErrors reports every violated field rule at once.
func NewValidationErrors(messages []string) *AppError {
	msg := "validation failed"
	if len(messages) > 0 {
		msg = messages[0]
	}
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Fields:  messages,
	}
}

// NewUnauthorizedError reports a failed authentication check.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

// NewConflictError reports a state conflict (duplicate email, double like).
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

// NewInternalError wraps an unexpected failure behind a generic message.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError writes a standardized error response. Validation and
// conflict errors are rendered as an errors array so clients always get the
// full list of violated rules.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		switch appErr.Code {
		case CodeValidation, CodeConflict:
			msgs := appErr.Fields
			if len(msgs) == 0 {
				msgs = []string{appErr.Message}
			}
			response.Code = appErr.Code
			for _, m := range msgs {
				response.Errors = append(response.Errors, FieldError{Msg: m})
			}
		default:
			response = ErrorResponse{
				Error: appErr.Message,
				Code:  appErr.Code,
			}
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
