package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/himanshupdev123/YouFocus/internal/config"
)

// ErrorResponse returns the flat {error} body the search API contract uses
// for client errors.
func ErrorResponse(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// InternalErrorResponse returns the 500 envelope with the underlying
// failure message alongside the generic error.
func InternalErrorResponse(c fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal server error",
		"message": err.Error(),
	})
}

// ValidateSearchQuery trims and checks the q parameter.
func ValidateSearchQuery(raw string) (string, string) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", `Query parameter "q" is required`
	}
	return q, ""
}

// ParseMaxResults parses the maxResults parameter, applying the default
// when absent and rejecting non-integers and out-of-range values.
func ParseMaxResults(raw string) (int, string) {
	if raw == "" {
		return config.DefaultMaxResults, ""
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "maxResults must be a valid integer"
	}
	if n < 1 || n > config.MaxResultsLimit {
		return 0, fmt.Sprintf("maxResults must be between 1 and %d", config.MaxResultsLimit)
	}
	return n, ""
}
