package create_category

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/repo"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_category"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_outbox"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/clock"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/metrics"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/testdb"
)

func TestCreateCategory(t *testing.T) {
	db := testdb.New(t)
	testdb.SeedStore(t, db, "s1", "u1")
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	uc := NewInteractor(repo.NewGormStore(db), clock.NewFake(now), metrics.New())

	c, err := uc.Execute(context.Background(), Request{StoreID: "s1", Name: "  Cuts ", Order: 1})
	require.NoError(t, err)
	assert.Equal(t, "Cuts", c.Name())
	assert.True(t, c.Active())
	assert.Empty(t, c.DomainEvents())

	// Duplicate names and orders are allowed.
	_, err = uc.Execute(context.Background(), Request{StoreID: "s1", Name: "Cuts", Order: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(2), testdb.Count(t, db, &m_category.Row{}, "store_id = ?", "s1"))
	assert.Equal(t, int64(2), testdb.Count(t, db, &m_outbox.Row{}, "event_type = ?", "category.created"))
}

func TestCreateCategory_Validation(t *testing.T) {
	db := testdb.New(t)
	uc := NewInteractor(repo.NewGormStore(db), clock.RealClock{}, nil)

	_, err := uc.Execute(context.Background(), Request{StoreID: "s1", Name: " "})
	assert.ErrorIs(t, err, domain.ErrEmptyCategoryName)

	_, err = uc.Execute(context.Background(), Request{StoreID: "s1", Name: "Cuts", Order: -1})
	assert.ErrorIs(t, err, domain.ErrNegativeOrder)

	assert.Equal(t, int64(0), testdb.Count(t, db, &m_category.Row{}, ""))
}

func TestCreateCategory_UnknownStore(t *testing.T) {
	db := testdb.New(t)
	uc := NewInteractor(repo.NewGormStore(db), clock.RealClock{}, nil)

	_, err := uc.Execute(context.Background(), Request{StoreID: "missing", Name: "Cuts"})
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	assert.Equal(t, int64(0), testdb.Count(t, db, &m_category.Row{}, ""))
	assert.Equal(t, int64(0), testdb.Count(t, db, &m_outbox.Row{}, ""))
}
