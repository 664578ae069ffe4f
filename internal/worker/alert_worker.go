package worker

// alert_worker.go
// Processes low-stock alert jobs from QueueAlerts: queries the items below
// the low-stock threshold, renders the PDF report, and emails it.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"candystock/internal/infra"
	"candystock/internal/service"

	"github.com/rs/zerolog/log"
)

type AlertWorker struct {
	inv         service.InventoryService
	mailer      *infra.Mailer
	storagePath string
}

func NewAlertWorker(inv service.InventoryService, mailer *infra.Mailer, storagePath string) *AlertWorker {
	return &AlertWorker{inv: inv, mailer: mailer, storagePath: storagePath}
}

// Process builds and sends one low-stock report. A returned error moves the
// job to the DLQ.
func (w *AlertWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload AlertJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("alert_worker: invalid payload: %w", err)
	}
	if payload.Recipient == "" {
		return fmt.Errorf("alert_worker: empty recipient")
	}

	rows, err := w.inv.ListLowStock(ctx)
	if err != nil {
		return fmt.Errorf("alert_worker: query low stock: %w", err)
	}

	pdfPath, err := infra.GenerateLowStockPDF(rows, w.storagePath)
	if err != nil {
		return fmt.Errorf("alert_worker: generate report: %w", err)
	}

	subject := fmt.Sprintf("Low stock report — %s", time.Now().Format("2006-01-02"))
	body := fmt.Sprintf("%d item(s) are below 35%% of capacity. Report attached.", len(rows))
	if err := w.mailer.SendReport(payload.Recipient, subject, body, pdfPath); err != nil {
		return fmt.Errorf("alert_worker: send email: %w", err)
	}

	log.Info().
		Str("job_id", payload.JobID).
		Str("to", payload.Recipient).
		Int("low_stock_items", len(rows)).
		Msg("alert_worker: low-stock report sent")
	return nil
}
