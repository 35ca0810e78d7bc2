package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abeliasun/backoffice/internal/domain"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&domain.Customer{},
		&domain.Employee{},
		&domain.Service{},
		&domain.SubService{},
		&domain.Invoice{},
		&domain.InvoiceEmployee{},
	)
	require.NoError(t, err, "failed to migrate test database")
	return db
}

func ptr[T any](v T) *T { return &v }
