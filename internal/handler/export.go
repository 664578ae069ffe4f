package handler

import (
	"net/http"

	"candystock/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct{ svc service.ExportService }

func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportTable streams a whitelisted table as a CSV download.
func (h *ExportHandler) ExportTable(c *gin.Context) {
	table := c.Param("table")
	csv, err := h.svc.ExportCSV(c.Request.Context(), table)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+table+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
