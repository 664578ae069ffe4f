package handler

import (
	"net/http"
	"strconv"

	"candystock/internal/apierror"
	"candystock/internal/dto"
	"candystock/internal/service"

	"github.com/gin-gonic/gin"
)

// ItemsHandler serves the item catalog plus the per-item distributor views
// (offerings and the restock-price quote).
type ItemsHandler struct {
	inv  service.InventoryService
	dist service.DistributorService
}

func NewItemsHandler(inv service.InventoryService, dist service.DistributorService) *ItemsHandler {
	return &ItemsHandler{inv: inv, dist: dist}
}

func (h *ItemsHandler) List(c *gin.Context) {
	resp, err := h.inv.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ItemsHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.inv.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ItemsHandler) Offerings(c *gin.Context) {
	itemID, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.dist.ListOfferings(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RestockPrice returns the cheapest way to buy ?quantity units of an item.
// The quantity is validated here, before any repository call.
func (h *ItemsHandler) RestockPrice(c *gin.Context) {
	itemID, ok := idParam(c, "id")
	if !ok {
		return
	}

	raw := c.Query("quantity")
	if raw == "" {
		c.JSON(http.StatusBadRequest, apierror.New("quantity query parameter is required"))
		return
	}
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("quantity must be a valid number"))
		return
	}
	if quantity <= 0 {
		c.JSON(http.StatusBadRequest, apierror.New("quantity must be positive"))
		return
	}

	resp, svcErr := h.dist.CheapestRestock(c.Request.Context(), itemID, quantity)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
