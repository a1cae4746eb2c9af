package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/EmpoweredVote/emotodo-seed/internal/db"
)

// Postgres stores documents as JSONB rows keyed by (collection, id).
type Postgres struct {
	db    *gorm.DB
	table string
}

type documentRow struct {
	ID     string `gorm:"column:id"`
	Fields string `gorm:"column:fields"`
}

// OpenPostgres connects to dsn and makes sure the document table exists.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	gdb, err := db.Connect(dsn)
	if err != nil {
		return nil, err
	}
	return adoptPostgres(ctx, gdb, db.DocumentsTable)
}

// adoptPostgres is NewPostgres for a handle the store owns: gdb is closed if
// the table cannot be prepared.
func adoptPostgres(ctx context.Context, gdb *gorm.DB, table string) (*Postgres, error) {
	p, err := NewPostgres(ctx, gdb, table)
	if err != nil {
		closeHandle(gdb)
		return nil, err
	}
	return p, nil
}

func closeHandle(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}
}

// NewPostgres wraps an existing handle.
func NewPostgres(ctx context.Context, gdb *gorm.DB, table string) (*Postgres, error) {
	if err := db.EnsureDocumentTable(gdb.WithContext(ctx), table); err != nil {
		return nil, pgError("create document table", err)
	}
	return &Postgres{db: gdb, table: table}, nil
}

func (p *Postgres) List(ctx context.Context, collection string) ([]Document, error) {
	var rows []documentRow
	q := fmt.Sprintf(`SELECT id, fields::text AS fields FROM %s WHERE collection = ? ORDER BY id`,
		pq.QuoteIdentifier(p.table))
	if err := p.db.WithContext(ctx).Raw(q, collection).Scan(&rows).Error; err != nil {
		return nil, pgError("list "+collection, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, r := range rows {
		fields := map[string]any{}
		if err := json.Unmarshal([]byte(r.Fields), &fields); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", collection, r.ID, err)
		}
		docs = append(docs, Document{ID: r.ID, Fields: fields})
	}
	return docs, nil
}

// SetMerge relies on jsonb || so keys missing from fields survive.
func (p *Postgres) SetMerge(ctx context.Context, collection, id string, fields map[string]any) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}

	table := pq.QuoteIdentifier(p.table)
	q := fmt.Sprintf(`
		INSERT INTO %[1]s (collection, id, fields, updated_at)
		VALUES (?, ?, CAST(? AS jsonb), now())
		ON CONFLICT (collection, id) DO UPDATE
		SET fields = %[1]s.fields || EXCLUDED.fields,
		    updated_at = now()`, table)

	if err := p.db.WithContext(ctx).Exec(q, collection, id, string(body)).Error; err != nil {
		return pgError(fmt.Sprintf("set %s/%s", collection, id), err)
	}
	return nil
}

func (p *Postgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// pgError adds the SQLSTATE to server-side errors.
func pgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %s (SQLSTATE %s): %w", op, pgErr.Message, pgErr.Code, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
