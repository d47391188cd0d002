package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDatabaseError    = errors.New("database error")
	ErrEmbeddingFailed  = errors.New("embedding generation failed")
	ErrWebSearchFailed  = errors.New("web search failed")
	ErrRateLimited      = errors.New("generation rate limited")
	ErrQuotaExceeded    = errors.New("generation quota exceeded")
	ErrGenerationFailed = errors.New("itinerary generation failed")
	ErrUnauthorized     = errors.New("unauthorized")
)

// ValidationError carries one message per violated field constraint.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid trip data: %s", strings.Join(e.Details, "; "))
}

func NewValidationError(details []string) *ValidationError {
	return &ValidationError{Details: details}
}
