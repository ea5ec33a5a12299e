package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/notecart/backend/internal/dto"
	"github.com/user/notecart/backend/internal/middleware"
	"github.com/user/notecart/backend/internal/service"
)

type ShareHandler struct {
	shareService *service.ShareService
}

func NewShareHandler(shareService *service.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

// Share grants a registered user access to the list by email.
func (h *ShareHandler) Share(c *gin.Context) {
	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := h.shareService.Share(c.Param("id"), middleware.MustGetUserID(c), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Unshare revokes a user's access to the list.
func (h *ShareHandler) Unshare(c *gin.Context) {
	var req dto.UnshareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := h.shareService.Unshare(c.Param("id"), middleware.MustGetUserID(c), req.TargetUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// SharedUsers returns the display profiles of everyone the list is shared
// with.
func (h *ShareHandler) SharedUsers(c *gin.Context) {
	users, err := h.shareService.SharedUserProfiles(c.Param("id"), middleware.MustGetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
