package templates

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
)

func TestBuiltin_AllTemplatesAreValid(t *testing.T) {
	c := Builtin()
	for _, s := range c.ListAvailable() {
		def, err := c.Resolve(s.ID)
		require.NoError(t, err)
		assert.NoError(t, def.Validate(), s.ID)
		for _, it := range def.Items {
			assert.False(t, it.Price.IsNegative(), "%s/%s", s.ID, it.Name)
		}
	}
}

func TestBuiltin_Barbershop(t *testing.T) {
	def, err := Builtin().Resolve(Barbershop)
	require.NoError(t, err)

	names := make([]string, 0, len(def.Categories))
	for i, c := range def.Categories {
		names = append(names, c.Name)
		assert.Equal(t, i+1, c.Order)
	}
	assert.Equal(t, []string{"Cuts", "Beard", "Treatments"}, names)
	assert.Len(t, def.Items, 4)
}

func TestResolve_Unknown(t *testing.T) {
	_, err := Builtin().Resolve("does-not-exist")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestResolve_ReturnsCopy(t *testing.T) {
	c := Builtin()
	def, err := c.Resolve(Barbershop)
	require.NoError(t, err)
	def.Categories[0].Name = "Mutated"
	def.Items = nil

	again, err := c.Resolve(Barbershop)
	require.NoError(t, err)
	assert.Equal(t, "Cuts", again.Categories[0].Name)
	assert.Len(t, again.Items, 4)
}

func TestListAvailable(t *testing.T) {
	list := Builtin().ListAvailable()
	require.Len(t, list, 4)

	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{Barbershop, CoffeeShop, Pizzeria, SnackBar}, ids)
	assert.Equal(t, Summary{ID: Barbershop, DisplayName: "Barbershop", CategoryCount: 3, ItemCount: 4}, list[0])

	// Restartable: callers get an independent slice each time.
	list[0].ID = "x"
	assert.Equal(t, Barbershop, Builtin().ListAvailable()[0].ID)
}

func TestNewCatalog_Rejects(t *testing.T) {
	_, err := NewCatalog(Definition{ID: ""})
	assert.Error(t, err)

	_, err = NewCatalog(Definition{ID: "a"}, Definition{ID: "a"})
	assert.Error(t, err)

	_, err = NewCatalog(Definition{ID: "a", Categories: []CategorySpec{{Name: "X", Order: 2}}})
	assert.Error(t, err)
}

func TestValidate_DanglingReference(t *testing.T) {
	def := Definition{
		ID:         "broken",
		Categories: []CategorySpec{{Name: "Cuts"}},
		Items:      []ItemSpec{{Category: "Nails", Name: "Manicure", Price: decimal.RequireFromString("10")}},
	}
	assert.Error(t, def.Validate())

	def.Items[0].Category = "Cuts"
	assert.NoError(t, def.Validate())

	def.Categories = append(def.Categories, CategorySpec{Name: "Cuts"})
	assert.Error(t, def.Validate())
}
