package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/user/notecart/backend/pkg/errors"
)

// respondError renders an AppError with its status code, or a generic 500
// for anything unexpected.
func respondError(c *gin.Context, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		c.JSON(appErr.StatusCode, gin.H{"error": appErr})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": apperrors.ErrInternalError})
}

// respondBindError renders a 400 for a malformed request body.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": apperrors.ValidationError(err.Error()),
	})
}
