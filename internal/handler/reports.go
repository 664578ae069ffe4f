package handler

import (
	"net/http"
	"path/filepath"

	"candystock/internal/apierror"
	"candystock/internal/infra"
	"candystock/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportsHandler serves generated PDF reports synchronously. The async
// counterpart (email delivery) lives in the worker pool.
type ReportsHandler struct {
	inv         service.InventoryService
	storagePath string
}

func NewReportsHandler(inv service.InventoryService, storagePath string) *ReportsHandler {
	return &ReportsHandler{inv: inv, storagePath: storagePath}
}

// LowStockPDF generates a low-stock report on the fly and returns it as a download.
func (h *ReportsHandler) LowStockPDF(c *gin.Context) {
	rows, err := h.inv.ListLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	path, err := infra.GenerateLowStockPDF(rows, h.storagePath)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("failed to generate report"))
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}
