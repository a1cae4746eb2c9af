package store

import (
	"context"
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestAdoptPostgres_ClosesHandleOnFailure verifies the connection pool does not
// leak when the document table cannot be created.
func TestAdoptPostgres_ClosesHandleOnFailure(t *testing.T) {
	gdb, err := gorm.Open(postgres.Open("postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm.Open failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := adoptPostgres(ctx, gdb, "documents"); err == nil {
		t.Fatal("expected table creation to fail")
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("gdb.DB failed: %v", err)
	}
	err = sqlDB.Ping()
	if err == nil || !strings.Contains(err.Error(), "database is closed") {
		t.Errorf("expected closed pool, got %v", err)
	}
}
