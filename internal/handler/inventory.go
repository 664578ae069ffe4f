package handler

import (
	"net/http"

	"candystock/internal/dto"
	"candystock/internal/service"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func (h *InventoryHandler) List(c *gin.Context) {
	resp, err := h.svc.ListStocked(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) OutOfStock(c *gin.Context) {
	resp, err := h.svc.ListOutOfStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Overstocked(c *gin.Context) {
	resp, err := h.svc.ListOverstocked(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	resp, err := h.svc.ListLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) GetByItem(c *gin.Context) {
	itemID, ok := idParam(c, "itemId")
	if !ok {
		return
	}
	resp, err := h.svc.GetStockedItem(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Add(c *gin.Context) {
	var req dto.AddInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddToInventory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	itemID, ok := idParam(c, "itemId")
	if !ok {
		return
	}
	var req dto.UpdateInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateInventory(c.Request.Context(), itemID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	itemID, ok := idParam(c, "itemId")
	if !ok {
		return
	}
	if err := h.svc.RemoveFromInventory(c.Request.Context(), itemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
