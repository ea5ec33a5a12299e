package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/notecart/backend/internal/dto"
	"github.com/user/notecart/backend/internal/middleware"
	"github.com/user/notecart/backend/internal/service"
)

type ListHandler struct {
	listService *service.ListService
}

func NewListHandler(listService *service.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

// List returns the caller's own lists, newest first.
func (h *ListHandler) List(c *gin.Context) {
	lists, err := h.listService.List(middleware.MustGetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// Shared returns the lists other users have shared with the caller.
func (h *ListHandler) Shared(c *gin.Context) {
	lists, err := h.listService.SharedWithUser(middleware.MustGetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (h *ListHandler) Get(c *gin.Context) {
	list, err := h.listService.Get(c.Param("id"), middleware.MustGetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetPublic serves the unauthenticated share-link projection.
func (h *ListHandler) GetPublic(c *gin.Context) {
	list, err := h.listService.GetPublic(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ListHandler) Create(c *gin.Context) {
	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := h.listService.Create(middleware.MustGetUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

func (h *ListHandler) Update(c *gin.Context) {
	var req dto.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := h.listService.Update(c.Param("id"), middleware.MustGetUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ListHandler) Delete(c *gin.Context) {
	list, err := h.listService.Delete(c.Param("id"), middleware.MustGetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteListResponse{
		Message: "List deleted successfully",
		List:    *list,
	})
}

func (h *ListHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := h.listService.AddItem(c.Param("id"), middleware.MustGetUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ListHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := h.listService.UpdateItem(c.Param("id"), middleware.MustGetUserID(c), c.Param("itemId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// AdjustItemQuantity nudges one item's quantity. The floor comes from the
// client: 0 unless it asks for 1.
func (h *ListHandler) AdjustItemQuantity(c *gin.Context) {
	var req dto.AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	floor := 0
	if req.Floor != nil {
		floor = *req.Floor
	}

	list, err := h.listService.AdjustItemQuantity(c.Param("id"), middleware.MustGetUserID(c), c.Param("itemId"), req.Delta, floor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ListHandler) RemoveItem(c *gin.Context) {
	list, err := h.listService.RemoveItem(c.Param("id"), middleware.MustGetUserID(c), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
