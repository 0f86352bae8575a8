package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_category"
)

// CategoryRepo builds Spanner mutations for categories. It never applies them.
type CategoryRepo struct{}

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{}
}

func categoryInsertValues(c *domain.Category) map[string]interface{} {
	return m_category.BuildInsertMap(c.ID(), c.StoreID(), c.Name(), c.Order(), c.Active(),
		c.CreatedAt().UTC(), c.UpdatedAt().UTC())
}

// categoryUpdateValues returns the dirty columns of c plus updated_at,
// or nil when nothing changed.
func categoryUpdateValues(c *domain.Category) map[string]interface{} {
	if c == nil || c.Changes() == nil || !c.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}
	if c.Changes().Dirty(domain.FieldCategoryName) {
		updates[m_category.ColName] = c.Name()
	}
	if c.Changes().Dirty(domain.FieldCategoryOrder) {
		updates[m_category.ColDisplayOrder] = c.Order()
	}
	if c.Changes().Dirty(domain.FieldCategoryActive) {
		updates[m_category.ColActive] = c.Active()
	}
	if len(updates) == 0 {
		return nil
	}
	updates[m_category.ColUpdatedAt] = c.UpdatedAt().UTC()
	return updates
}

func (r *CategoryRepo) InsertMut(c *domain.Category) *spanner.Mutation {
	if c == nil {
		return nil
	}
	return m_category.InsertMutation(categoryInsertValues(c))
}

// UpdateMut writes only the fields the ChangeTracker marked dirty.
func (r *CategoryRepo) UpdateMut(c *domain.Category) *spanner.Mutation {
	updates := categoryUpdateValues(c)
	if updates == nil {
		return nil
	}
	return m_category.UpdateMutation(c.ID(), updates)
}

func (r *CategoryRepo) DeleteMut(categoryID string) *spanner.Mutation {
	return m_category.DeleteMutation(categoryID)
}
