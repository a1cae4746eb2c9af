package db

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DocumentsTable holds one JSONB document per (collection, id).
const DocumentsTable = "documents"

// EnsureDocumentTable creates the document table if it does not exist.
func EnsureDocumentTable(d *gorm.DB, table string) error {
	sql := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			collection text        NOT NULL,
			id         text        NOT NULL,
			fields     jsonb       NOT NULL DEFAULT '{}'::jsonb,
			updated_at timestamptz NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, id)
		)`, pq.QuoteIdentifier(table))
	return d.Exec(sql).Error
}
