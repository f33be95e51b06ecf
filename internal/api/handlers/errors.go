package handlers

import (
	"errors"
	"net/http"

	apperrors "linkedlist-backend/internal/errors"
	"linkedlist-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"Link not found"`
}

// SuccessResponse is returned by deletes and link-label changes
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

const invalidBodyMessage = "Invalid request body"

// respondError maps a lookup or update failure onto a status code.
// Unknown ids are 404, validation failures 400 with the field message,
// everything else 500 with the cause kept out of the response.
func respondError(c *gin.Context, err error, notFoundMessage, failureMessage string) {
	var validationErr *apperrors.ValidationError
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundMessage})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Detail()})
	default:
		logger.WithContext(c).WithError(err).Error(failureMessage)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: failureMessage})
	}
}

// respondMutationError is respondError for deletes and link-label changes,
// where a missing target is reported as a failed mutation.
func respondMutationError(c *gin.Context, err error, failureMessage string) {
	switch {
	case apperrors.IsNotFound(err), apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: failureMessage})
	default:
		logger.WithContext(c).WithError(err).Error(failureMessage)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: failureMessage})
	}
}

func respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
