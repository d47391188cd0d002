package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned on any non-2xx response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func RespondError(c *gin.Context, code int, message string, details ...string) {
	c.JSON(code, ErrorResponse{Error: message, Details: details})
}

// HandleServiceError maps service-layer errors onto HTTP status codes.
// Retrieval-tier failures never reach this point; only validation and
// generation failures are surfaced to the caller.
func HandleServiceError(c *gin.Context, err error) {
	var validationErr *ValidationError

	switch {
	case errors.As(err, &validationErr):
		RespondError(c, http.StatusBadRequest, "Invalid trip data", validationErr.Details...)
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Authorization required")
	case errors.Is(err, ErrRateLimited):
		RespondError(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again in a moment.")
	case errors.Is(err, ErrQuotaExceeded):
		RespondError(c, http.StatusPaymentRequired, "Generation credits exhausted. Please contact support.")
	case errors.Is(err, ErrDatabaseError):
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondError(c, http.StatusInternalServerError, "Failed to generate itinerary")
	}
}
