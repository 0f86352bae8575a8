package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_category"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_item"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_outbox"
)

func mustMoney(t *testing.T, s string) domain.Money {
	t.Helper()
	m, err := domain.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestCategoryInsertValues(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c, err := domain.NewCategory("cat-1", "store-1", "Cuts", 1, now)
	require.NoError(t, err)

	values := categoryInsertValues(c)
	assert.Equal(t, "cat-1", values[m_category.ColCategoryID])
	assert.Equal(t, "store-1", values[m_category.ColStoreID])
	assert.Equal(t, int64(1), values[m_category.ColDisplayOrder])
	assert.Equal(t, true, values[m_category.ColActive])
	assert.Equal(t, now, values[m_category.ColCreatedAt])

	require.NotNil(t, NewCategoryRepo().InsertMut(c))
}

func TestCategoryUpdateValues_OnlyDirtyFields(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := domain.ReconstructCategory("cat-1", "store-1", "Cuts", 1, true, now, now)

	assert.Nil(t, categoryUpdateValues(c))
	assert.Nil(t, NewCategoryRepo().UpdateMut(c))

	order := int64(7)
	later := now.Add(time.Hour)
	require.NoError(t, c.Update(domain.CategoryPatch{Order: &order}, later))

	values := categoryUpdateValues(c)
	assert.Len(t, values, 2)
	assert.Equal(t, int64(7), values[m_category.ColDisplayOrder])
	assert.Equal(t, later, values[m_category.ColUpdatedAt])
	assert.NotContains(t, values, m_category.ColName)
}

func TestItemInsertValues_NullDescription(t *testing.T) {
	now := time.Now().UTC()
	cat := domain.ReconstructCategory("cat-1", "store-1", "Cuts", 1, true, now, now)
	it, err := domain.NewItem("item-1", "store-1", cat, "Classic Cut", "", mustMoney(t, "19.995"), true, false, now)
	require.NoError(t, err)

	values := itemInsertValues(it)
	v, ok := values[m_item.ColDescription]
	require.True(t, ok, "description key missing")
	assert.Nil(t, v)
	assert.Equal(t, int64(2000), values[m_item.ColPriceMinorUnits])
	assert.Equal(t, "cat-1", values[m_item.ColCategoryID])

	require.NotNil(t, NewItemRepo().InsertMut(it))
}

func TestItemUpdateValues_SparsePatch(t *testing.T) {
	now := time.Now().UTC()
	price := mustMoney(t, "10.00")
	it := domain.ReconstructItem("item-1", "cat-1", "store-1", "Cut", "desc", price, true, false, now, now)

	newPrice := mustMoney(t, "12.50")
	empty := ""
	require.NoError(t, it.Update(domain.ItemPatch{Price: &newPrice, Description: &empty}, now))

	values := itemUpdateValues(it)
	assert.Equal(t, int64(1250), values[m_item.ColPriceMinorUnits])
	v, ok := values[m_item.ColDescription]
	require.True(t, ok)
	assert.Nil(t, v)
	assert.NotContains(t, values, m_item.ColName)
	assert.NotContains(t, values, m_item.ColActive)
	assert.Contains(t, values, m_item.ColUpdatedAt)
}

func TestItemUpdateValues_Move(t *testing.T) {
	now := time.Now().UTC()
	it := domain.ReconstructItem("item-1", "cat-1", "store-1", "Cut", "", domain.Money{}, true, false, now, now)
	target := domain.ReconstructCategory("cat-2", "store-1", "Beard", 2, true, now, now)
	require.NoError(t, it.MoveTo(target, now))

	values := itemUpdateValues(it)
	assert.Equal(t, "cat-2", values[m_item.ColCategoryID])
	require.NotNil(t, NewItemRepo().UpdateMut(it))
}

func TestOutboxInsertValues_DefaultsPending(t *testing.T) {
	values := outboxInsertValues(&contracts.OutboxEvent{
		EventID:     "e1",
		EventType:   "catalog.template_applied",
		AggregateID: "store-1",
		PayloadJSON: "{}",
	})
	assert.Equal(t, contracts.OutboxStatusPending, values[m_outbox.ColStatus])
	assert.Nil(t, values[m_outbox.ColProcessedAt])

	assert.Nil(t, NewOutboxRepo().InsertMut(nil))
}
