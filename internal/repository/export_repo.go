package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type ExportRepository interface {
	// TableRows streams every row of a table as text, NULLs preserved.
	// Callers MUST whitelist table before calling — the name is interpolated.
	TableRows(ctx context.Context, table string) ([]string, [][]sql.NullString, error)
}

type exportRepo struct{ db *gorm.DB }

func NewExportRepository(db *gorm.DB) ExportRepository { return &exportRepo{db: db} }

func (r *exportRepo) TableRows(ctx context.Context, table string) ([]string, [][]sql.NullString, error) {
	rows, err := r.db.WithContext(ctx).Raw("SELECT * FROM " + table).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]sql.NullString
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		out = append(out, vals)
	}
	return cols, out, rows.Err()
}
