package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_item"
)

// ItemRepo builds Spanner mutations for items. It never applies them.
type ItemRepo struct{}

func NewItemRepo() *ItemRepo {
	return &ItemRepo{}
}

func itemInsertValues(it *domain.Item) map[string]interface{} {
	return m_item.BuildInsertMap(it.ID(), it.CategoryID(), it.StoreID(), it.Name(), nullableString(it.Description()),
		it.Price().MinorUnits(), it.Active(), it.Archived(), it.CreatedAt().UTC(), it.UpdatedAt().UTC())
}

// itemUpdateValues returns the dirty columns of it plus updated_at,
// or nil when nothing changed.
func itemUpdateValues(it *domain.Item) map[string]interface{} {
	if it == nil || it.Changes() == nil || !it.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}
	if it.Changes().Dirty(domain.FieldItemName) {
		updates[m_item.ColName] = it.Name()
	}
	if it.Changes().Dirty(domain.FieldItemDescription) {
		if d := nullableString(it.Description()); d != nil {
			updates[m_item.ColDescription] = *d
		} else {
			updates[m_item.ColDescription] = nil
		}
	}
	if it.Changes().Dirty(domain.FieldItemPrice) {
		updates[m_item.ColPriceMinorUnits] = it.Price().MinorUnits()
	}
	if it.Changes().Dirty(domain.FieldItemActive) {
		updates[m_item.ColActive] = it.Active()
	}
	if it.Changes().Dirty(domain.FieldItemArchived) {
		updates[m_item.ColArchived] = it.Archived()
	}
	if it.Changes().Dirty(domain.FieldItemCategory) {
		updates[m_item.ColCategoryID] = it.CategoryID()
	}
	if len(updates) == 0 {
		return nil
	}
	updates[m_item.ColUpdatedAt] = it.UpdatedAt().UTC()
	return updates
}

func (r *ItemRepo) InsertMut(it *domain.Item) *spanner.Mutation {
	if it == nil {
		return nil
	}
	return m_item.InsertMutation(itemInsertValues(it))
}

// UpdateMut writes only the fields the ChangeTracker marked dirty.
func (r *ItemRepo) UpdateMut(it *domain.Item) *spanner.Mutation {
	updates := itemUpdateValues(it)
	if updates == nil {
		return nil
	}
	return m_item.UpdateMutation(it.ID(), updates)
}

func (r *ItemRepo) DeleteMut(itemID string) *spanner.Mutation {
	return m_item.DeleteMutation(itemID)
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
