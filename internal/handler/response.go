package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"techfest/internal/repository"
	"techfest/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: clientMessage(err)})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Bad input or failed verification - Bad Request
	case errors.Is(err, service.ErrInvalidTeam),
		errors.Is(err, service.ErrInvalidPricing),
		errors.Is(err, service.ErrInvalidSignature),
		errors.Is(err, service.ErrPaymentNotCaptured),
		errors.Is(err, service.ErrPaymentRecordNotFound),
		errors.Is(err, service.ErrInvalidTeamID),
		errors.Is(err, service.ErrInvalidEventID),
		errors.Is(err, service.ErrInvalidTeamName),
		errors.Is(err, service.ErrInvalidTeamSize),
		errors.Is(err, service.ErrTeamSizeExceedsLimit),
		errors.Is(err, service.ErrInvalidScore):
		return http.StatusBadRequest

	// Upstream gateway failure - retryable by the client
	case errors.Is(err, service.ErrGateway):
		return http.StatusBadGateway

	// Configuration and persistence failures - generic 500
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage returns the user-facing message for an error. Wrapped
// detail for server-side failures stays in the logs; the client only ever
// sees a generic message for those.
func clientMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		return "server misconfigured"
	case errors.Is(err, service.ErrPersistence):
		return "internal error"
	case errors.Is(err, service.ErrGateway):
		return service.ErrGateway.Error()
	default:
		return err.Error()
	}
}
