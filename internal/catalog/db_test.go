package catalog

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Greenkack/pvoffer-backend/pkg/db"
)

func openTestClient(t *testing.T) *db.Client {
	t.Helper()

	// A single pooled connection keeps the in-memory database alive and
	// isolated for the duration of the test.
	conn, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to get sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(conn); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db.NewFromConn(conn)
}
