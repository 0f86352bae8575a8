package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
)

func TestMarshalDomainEventPayload_ItemCreated(t *testing.T) {
	price, err := domain.NewMoneyFromString("19.99")
	require.NoError(t, err)

	s, err := MarshalDomainEventPayload(&domain.ItemCreatedEvent{
		ItemID: "i1", StoreID: "s1", CategoryID: "c1", Name: "Cut", Price: price, CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &got))
	assert.Equal(t, float64(1999), got["price_minor_units"])
	assert.Equal(t, "c1", got["category_id"])
}

func TestMarshalDomainEventPayload_TemplateApplied(t *testing.T) {
	s, err := MarshalDomainEventPayload(&domain.TemplateAppliedEvent{
		StoreID: "s1", TemplateID: "barbershop", CategoriesRemoved: 2, ItemsRemoved: 5, CategoriesCreated: 3, ItemsCreated: 4,
	})
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &got))
	assert.Equal(t, "barbershop", got["template_id"])
	assert.Equal(t, float64(5), got["items_removed"])
	assert.Equal(t, float64(4), got["items_created"])
}

func TestMarshalDomainEventPayload_Nil(t *testing.T) {
	s, err := MarshalDomainEventPayload(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", s)
}
