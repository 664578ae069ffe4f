package infra

// pdf.go — Low-stock report generation using go-pdf/fpdf.
// Produces an A4 table of every item below the low-stock threshold:
// item id, name, current stock, capacity, and fill percentage.
// The output file is saved to storagePath/low_stock_{date}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"candystock/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateLowStockPDF renders the low-stock rows as a PDF report.
// storagePath is the directory where the PDF will be written (created if
// needed). Returns the absolute path to the generated file.
func GenerateLowStockPDF(rows []dto.StockedItem, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	now := time.Now()
	fileName := fmt.Sprintf("low_stock_%s.pdf", now.Format("2006-01-02"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "Low Stock Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, now.Format("January 2, 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ──────────────────────────────────────────────────────────
	colID := contentW * 0.10
	colName := contentW * 0.46
	colStock := contentW * 0.14
	colCap := contentW * 0.14
	colFill := contentW * 0.16

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colID, 7, "ID", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colName, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colStock, 7, "Stock", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colCap, 7, "Capacity", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colFill, 7, "Fill", "B", 1, "R", false, 0, "")

	// ── Rows ──────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		name := row.Name
		if len(name) > 48 {
			name = name[:47] + "…"
		}
		fill := 0.0
		if row.Capacity > 0 {
			fill = float64(row.Stock) / float64(row.Capacity) * 100
		}
		pdf.CellFormat(colID, 6, fmt.Sprintf("%d", row.ID), "", 0, "L", false, 0, "")
		pdf.CellFormat(colName, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(colStock, 6, fmt.Sprintf("%d", row.Stock), "", 0, "R", false, 0, "")
		pdf.CellFormat(colCap, 6, fmt.Sprintf("%d", row.Capacity), "", 0, "R", false, 0, "")
		pdf.CellFormat(colFill, 6, fmt.Sprintf("%.0f%%", fill), "", 1, "R", false, 0, "")
	}

	if len(rows) == 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 6, "No items below the low-stock threshold.", "", 1, "C", false, 0, "")
	}

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%d item(s) below 35%% of capacity", len(rows)), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
