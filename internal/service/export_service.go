package service

import (
	"context"
	"strings"

	"candystock/internal/apperr"
	"candystock/internal/repository"
)

// exportableTables is the fixed whitelist of table names the export endpoint
// accepts. The table name is the only identifier ever interpolated into SQL,
// and only after passing this check.
var exportableTables = map[string]struct{}{
	"items":              {},
	"inventory":          {},
	"distributors":       {},
	"distributor_prices": {},
}

// ExportService serializes whitelisted tables to CSV text.
type ExportService interface {
	ExportCSV(ctx context.Context, table string) (string, error)
}

type exportService struct {
	repo repository.ExportRepository
}

func NewExportService(repo repository.ExportRepository) ExportService {
	return &exportService{repo: repo}
}

// ExportCSV renders a whole table as CSV: a header row of column names, then
// one line per row. Every field is double-quoted with internal quotes
// doubled; NULL renders as an empty quoted field. Rows end with \n.
func (s *exportService) ExportCSV(ctx context.Context, table string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(table))
	if name == "" {
		return "", apperr.Validation("table name is required")
	}
	if _, ok := exportableTables[name]; !ok {
		return "", apperr.Validation("invalid table name; allowed tables: items, inventory, distributors, distributor_prices")
	}

	cols, rows, err := s.repo.TableRows(ctx, name)
	if err != nil {
		return "", apperr.Database(err, "failed to export table")
	}

	var b strings.Builder
	for i, col := range cols {
		if i > 0 {
			b.WriteByte(',')
		}
		writeQuoted(&b, col)
	}
	b.WriteByte('\n')

	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			if field.Valid {
				writeQuoted(&b, field.String)
			} else {
				b.WriteString(`""`)
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(s, `"`, `""`))
	b.WriteByte('"')
}
