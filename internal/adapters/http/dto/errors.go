// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/feedback-analyzer/internal/analysis/summary"
	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details holds field-level messages for validation errors.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeConflict     = "CONFLICT"
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeForbidden    = "FORBIDDEN"
	ErrorCodeUnauthorized = "UNAUTHORIZED"
	ErrorCodeUnavailable  = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal     = "INTERNAL_ERROR"
	ErrorCodeTimeout      = "TIMEOUT"
	ErrorCodeBadRequest   = "BAD_REQUEST"
	ErrorCodeTooLarge     = "PAYLOAD_TOO_LARGE"
)

// Messages for errors whose text is not shown to callers.
const (
	msgInternal       = "an internal error occurred"
	msgEmptyFeedback  = "feedback not found or empty"
	msgTimeout        = "request timeout exceeded"
	msgRequestTooLong = "request body too large"
)

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrorCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// MapError maps an error to an HTTP status code and error response.
// Unknown errors are mapped to 500 with a generic message.
func MapError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, summary.ErrEmptyInput):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, msgEmptyFeedback)

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, userMessage(err))

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, userMessage(err))

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, userMessage(err))

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsUnauthorized(err):
		return http.StatusUnauthorized, NewErrorResponse(ErrorCodeUnauthorized, userMessage(err))

	case domain.IsForbidden(err):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeForbidden, userMessage(err))

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, userMessage(err))

	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, NewErrorResponse(ErrorCodeTooLarge, msgRequestTooLong)

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, msgTimeout)

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, msgInternal)
	}
}

// userMessage returns the innermost domain error's text so wrapping added
// by the app layer ("getting feedback: ...") does not reach callers.
func userMessage(err error) string {
	var (
		notFound     *domain.NotFoundError
		conflict     *domain.ConflictError
		validation   *domain.ValidationError
		unauthorized *domain.UnauthorizedError
		forbidden    *domain.ForbiddenError
		unavailable  *domain.UnavailableError
	)

	switch {
	case errors.As(err, &notFound):
		return notFound.Error()
	case errors.As(err, &conflict):
		return conflict.Error()
	case errors.As(err, &validation):
		return validation.Error()
	case errors.As(err, &unauthorized):
		return unauthorized.Error()
	case errors.As(err, &forbidden):
		return forbidden.Error()
	case errors.As(err, &unavailable):
		return unavailable.Error()
	default:
		return err.Error()
	}
}

// GetTraceID returns the current span's trace ID, or "" when tracing is off.
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

// HandleError writes the mapped error response. Internal errors are logged
// with full detail since callers only see a generic message.
func HandleError(c *gin.Context, err error) {
	status, resp := MapError(err)
	resp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.Any("error", err),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.JSON(status, resp)
}

// AbortWithError aborts the request chain with the mapped error response.
func AbortWithError(c *gin.Context, err error) {
	status, resp := MapError(err)
	resp.TraceID = GetTraceID(c)

	c.AbortWithStatusJSON(status, resp)
}

// AbortWithCode aborts the request chain with a specific error code.
func AbortWithCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithValidationErrors writes a 400 response with field-level messages.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	c.JSON(http.StatusBadRequest, NewErrorResponseWithDetails(
		ErrorCodeValidation,
		"request validation failed",
		fieldErrors,
	).WithTraceID(GetTraceID(c)))
}
