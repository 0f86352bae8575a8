package delete_item

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/repo"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/create_category"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/create_item"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_item"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/clock"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/metrics"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/testdb"
)

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	testdb.SeedStore(t, db, "s1", "u1")
	store := repo.NewGormStore(db)
	clk := clock.RealClock{}

	cat, err := create_category.NewInteractor(store, clk, nil).Execute(ctx, create_category.Request{StoreID: "s1", Name: "Cuts"})
	require.NoError(t, err)
	ci := create_item.NewInteractor(store, clk, nil)
	keep, err := ci.Execute(ctx, create_item.Request{StoreID: "s1", CategoryID: cat.ID(), Name: "Keep", Price: decimal.NewFromInt(1)})
	require.NoError(t, err)
	drop, err := ci.Execute(ctx, create_item.Request{StoreID: "s1", CategoryID: cat.ID(), Name: "Drop", Price: decimal.NewFromInt(2)})
	require.NoError(t, err)

	uc := NewInteractor(store, clk, metrics.New())

	err = uc.Execute(ctx, Request{StoreID: "s2", ItemID: drop.ID()})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	require.NoError(t, uc.Execute(ctx, Request{StoreID: "s1", ItemID: drop.ID()}))

	err = uc.Execute(ctx, Request{StoreID: "s1", ItemID: drop.ID()})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	assert.Equal(t, int64(1), testdb.Count(t, db, &m_item.Row{}, ""))
	_, err = store.GetItem(ctx, keep.ID())
	assert.NoError(t, err)
}
