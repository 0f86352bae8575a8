package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) Money {
	t.Helper()
	m, err := NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewItem_RequiresCategoryOfSameStore(t *testing.T) {
	now := time.Now().UTC()
	cat := ReconstructCategory("cat-1", "store-A", "Cuts", 1, true, now, now)

	_, err := NewItem("item-1", "store-B", cat, "Fade", "", mustMoney(t, "30"), true, false, now)
	assert.ErrorIs(t, err, ErrReferentialViolation)

	_, err = NewItem("item-1", "store-A", nil, "Fade", "", mustMoney(t, "30"), true, false, now)
	assert.ErrorIs(t, err, ErrReferentialViolation)

	it, err := NewItem("item-1", "store-A", cat, " Fade ", " Skin fade ", mustMoney(t, "30"), true, false, now)
	require.NoError(t, err)
	assert.Equal(t, "cat-1", it.CategoryID())
	assert.Equal(t, "store-A", it.StoreID())
	assert.Equal(t, "Fade", it.Name())
	assert.Equal(t, "Skin fade", it.Description())
	assert.Equal(t, int64(3000), it.Price().MinorUnits())
	require.Len(t, it.DomainEvents(), 1)
	assert.Equal(t, "item.created", it.DomainEvents()[0].EventType())
}

func TestNewItem_Validation(t *testing.T) {
	now := time.Now().UTC()
	cat := ReconstructCategory("cat-1", "store-A", "Cuts", 1, true, now, now)

	_, err := NewItem("i", "store-A", cat, "", "", mustMoney(t, "1"), true, false, now)
	assert.ErrorIs(t, err, ErrEmptyItemName)

	long := make([]byte, 2001)
	for i := range long {
		long[i] = 'x'
	}
	_, err = NewItem("i", "store-A", cat, "Fade", string(long), mustMoney(t, "1"), true, false, now)
	assert.ErrorIs(t, err, ErrItemDescriptionTooLong)
}

func TestItem_UpdateOnlyTouchesSuppliedFields(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	it := ReconstructItem("item-1", "cat-1", "store-A", "Fade", "Skin fade", mustMoney(t, "30"), true, false, created, created)

	price := mustMoney(t, "35.50")
	archived := true
	require.NoError(t, it.Update(ItemPatch{Price: &price, Archived: &archived}, created.Add(time.Hour)))

	assert.Equal(t, "Fade", it.Name())
	assert.Equal(t, "Skin fade", it.Description())
	assert.True(t, it.Active())
	assert.True(t, it.Archived())
	assert.Equal(t, int64(3550), it.Price().MinorUnits())
	assert.Equal(t, []string{FieldItemArchived, FieldItemPrice}, it.Changes().DirtyFields())
}

func TestItem_UpdateClearsDescription(t *testing.T) {
	now := time.Now().UTC()
	it := ReconstructItem("item-1", "cat-1", "store-A", "Fade", "Skin fade", mustMoney(t, "30"), true, false, now, now)

	empty := ""
	require.NoError(t, it.Update(ItemPatch{Description: &empty}, now))
	assert.Equal(t, "", it.Description())
	assert.True(t, it.Changes().Dirty(FieldItemDescription))
}

func TestItem_MoveTo(t *testing.T) {
	now := time.Now().UTC()
	it := ReconstructItem("item-1", "cat-1", "store-A", "Fade", "", mustMoney(t, "30"), true, false, now, now)

	foreign := ReconstructCategory("cat-9", "store-B", "Other", 1, true, now, now)
	assert.ErrorIs(t, it.MoveTo(foreign, now), ErrReferentialViolation)
	assert.Equal(t, "cat-1", it.CategoryID())

	same := ReconstructCategory("cat-2", "store-A", "Beard", 2, true, now, now)
	require.NoError(t, it.MoveTo(same, now))
	assert.Equal(t, "cat-2", it.CategoryID())
	assert.True(t, it.Changes().Dirty(FieldItemCategory))
}
