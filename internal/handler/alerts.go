package handler

import (
	"net/http"

	"candystock/internal/apierror"
	"candystock/internal/dto"
	"candystock/internal/worker"

	"github.com/gin-gonic/gin"
)

// AlertsHandler triggers on-demand low-stock alert emails. The actual report
// generation and delivery happen asynchronously in the worker pool.
type AlertsHandler struct {
	dispatcher       *worker.Dispatcher
	defaultRecipient string
}

func NewAlertsHandler(dispatcher *worker.Dispatcher, defaultRecipient string) *AlertsHandler {
	return &AlertsHandler{dispatcher: dispatcher, defaultRecipient: defaultRecipient}
}

func (h *AlertsHandler) LowStock(c *gin.Context) {
	var req dto.LowStockAlertRequest
	if !bindAndValidate(c, &req) {
		return
	}

	recipient := h.defaultRecipient
	if req.Recipient != nil {
		recipient = *req.Recipient
	}
	if recipient == "" {
		c.JSON(http.StatusBadRequest, apierror.New("no alert recipient configured; set ALERT_RECIPIENT or pass one in the request"))
		return
	}

	jobID, err := h.dispatcher.EnqueueLowStockAlert(c.Request.Context(), recipient)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("failed to enqueue alert"))
		return
	}
	c.JSON(http.StatusAccepted, dto.LowStockAlertResponse{JobID: jobID, Enqueued: true})
}
