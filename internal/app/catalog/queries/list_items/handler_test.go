package list_items

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
	"github.com/murkotick/storefront-catalog-service/internal/pkg/clock"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/testdb"
)

func TestListItems(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	testdb.SeedStore(t, db, "s1", "u1")
	testdb.SeedStore(t, db, "s2", "u2")
	store := repo.NewGormStore(db)
	clk := clock.RealClock{}

	cc := create_category.NewInteractor(store, clk, nil)
	cuts, err := cc.Execute(ctx, create_category.Request{StoreID: "s1", Name: "Cuts", Order: 1})
	require.NoError(t, err)
	beard, err := cc.Execute(ctx, create_category.Request{StoreID: "s1", Name: "Beard", Order: 2})
	require.NoError(t, err)
	foreign, err := cc.Execute(ctx, create_category.Request{StoreID: "s2", Name: "Other", Order: 1})
	require.NoError(t, err)

	ci := create_item.NewInteractor(store, clk, nil)
	_, err = ci.Execute(ctx, create_item.Request{StoreID: "s1", CategoryID: cuts.ID(), Name: "Skin Fade", Price: decimal.RequireFromString("40")})
	require.NoError(t, err)
	_, err = ci.Execute(ctx, create_item.Request{StoreID: "s1", CategoryID: beard.ID(), Name: "Beard Trim", Description: "hot towel", Price: decimal.RequireFromString("19.995")})
	require.NoError(t, err)
	_, err = ci.Execute(ctx, create_item.Request{StoreID: "s2", CategoryID: foreign.ID(), Name: "Elsewhere", Price: decimal.NewFromInt(1)})
	require.NoError(t, err)

	h := NewHandler(store)

	all, err := h.Execute(ctx, "s1", nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Beard Trim", all[0].Name)
	assert.Equal(t, int64(2000), all[0].PriceMinorUnits)
	assert.Equal(t, "20.00", all[0].Price)
	require.NotNil(t, all[0].Description)
	assert.Equal(t, "hot towel", *all[0].Description)
	assert.Nil(t, all[1].Description)
	assert.NotEmpty(t, all[1].CreatedAt)

	id := cuts.ID()
	narrowed, err := h.Execute(ctx, "s1", &id)
	require.NoError(t, err)
	require.Len(t, narrowed, 1)
	assert.Equal(t, "Skin Fade", narrowed[0].Name)

	foreignID := foreign.ID()
	_, err = h.Execute(ctx, "s1", &foreignID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	missing := "missing"
	_, err = h.Execute(ctx, "s1", &missing)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
