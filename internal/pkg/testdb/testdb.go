// Package testdb opens isolated in-memory sqlite databases carrying the catalog schema.
package testdb

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/murkotick/storefront-catalog-service/internal/models/m_category"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_item"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_outbox"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_store"
)

// Models lists the row types in dependency order.
func Models() []interface{} {
	return []interface{}{&m_store.Row{}, &m_category.Row{}, &m_item.Row{}, &m_outbox.Row{}}
}

// New returns a fresh database with foreign keys enforced. Every call gets its
// own database; it is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the in-memory database alive and serializes transactions.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(Models()...))
	return db
}

// SeedStore inserts a store owned by ownerID.
func SeedStore(t testing.TB, db *gorm.DB, storeID, ownerID string) {
	t.Helper()
	require.NoError(t, db.Create(&m_store.Row{
		StoreID:   storeID,
		OwnerID:   ownerID,
		Name:      "Store " + storeID,
		Slug:      "store-" + storeID,
		CreatedAt: time.Now().UTC(),
	}).Error)
}

// Count returns the number of rows of model matching the optional condition.
func Count(t testing.TB, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
