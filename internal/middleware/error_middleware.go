package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edukit/school-api/internal/app/models/dto"
	"github.com/edukit/school-api/internal/pkg/apperrors"
)

// HandleAPIError converts a service error into the terminal response for the
// request. Nothing propagates past this boundary.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	default:
		// Storage errors are propagated as-is with no message normalization.
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	}
}
