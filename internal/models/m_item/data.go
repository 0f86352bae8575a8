package m_item

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the canonical fields for insertion.
// A nil description is stored as NULL.
func BuildInsertMap(itemID, categoryID, storeID, name string, description *string,
	priceMinorUnits int64, active, archived bool, createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColItemID:          itemID,
		ColCategoryID:      categoryID,
		ColStoreID:         storeID,
		ColName:            name,
		ColPriceMinorUnits: priceMinorUnits,
		ColActive:          active,
		ColArchived:        archived,
		ColCreatedAt:       createdAt,
		ColUpdatedAt:       updatedAt,
	}
	if description != nil {
		m[ColDescription] = *description
	} else {
		m[ColDescription] = nil
	}
	return m
}

// InsertMutation builds a spanner.Insert mutation from a values map keyed by column.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation with item_id as the key column.
func UpdateMutation(itemID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColItemID}
	vals := []interface{}{itemID}
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Update(TableName, cols, vals)
}

// DeleteMutation deletes a single item by key.
func DeleteMutation(itemID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{itemID})
}
