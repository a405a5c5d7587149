package handlers

import (
	"errors"
	"net/http"

	"github.com/ameetempireone721/employeemonitoringsystem/internal/models"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// respondError maps a domain error to its HTTP status. Every sentinel kind
// has exactly one status; anything unmapped is a 500 with a generic body so
// driver details never leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid email or password.",
		})
	case errors.Is(err, models.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Employee not found.",
		})
	case errors.Is(err, models.ErrStatusNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Unknown status name.",
		})
	case errors.Is(err, models.ErrIntervalNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "No matching open status interval.",
		})
	case errors.Is(err, models.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "conflict",
			Message: "User already exists in the system with that email.",
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Something went wrong. Please try again.",
		})
	}
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid_request",
		Message: message,
	})
}

func respondMissingUserContext(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   "unauthorized",
		Message: "User context not found. Auth middleware may not be applied.",
		Code:    "MISSING_USER_CONTEXT",
	})
}
