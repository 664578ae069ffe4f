package handler

import (
	"net/http"

	"candystock/internal/dto"
	"candystock/internal/service"

	"github.com/gin-gonic/gin"
)

type DistributorsHandler struct{ svc service.DistributorService }

func NewDistributorsHandler(svc service.DistributorService) *DistributorsHandler {
	return &DistributorsHandler{svc: svc}
}

func (h *DistributorsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DistributorsHandler) Create(c *gin.Context) {
	var req dto.CreateDistributorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Catalog lists the items a distributor offers with their unit costs.
func (h *DistributorsHandler) Catalog(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListCatalog(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DistributorsHandler) AddCatalogEntry(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.AddCatalogEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddCatalogEntry(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DistributorsHandler) UpdateCatalogPrice(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := idParam(c, "itemId")
	if !ok {
		return
	}
	var req dto.UpdateCatalogPriceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateCatalogPrice(c.Request.Context(), id, itemID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DistributorsHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
