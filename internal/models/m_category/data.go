package m_category

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the canonical fields for insertion.
func BuildInsertMap(categoryID, storeID, name string, order int64, active bool, createdAt, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColCategoryID:   categoryID,
		ColStoreID:      storeID,
		ColName:         name,
		ColDisplayOrder: order,
		ColActive:       active,
		ColCreatedAt:    createdAt,
		ColUpdatedAt:    updatedAt,
	}
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

// UpdateMutation builds a spanner.Update mutation. The values map must not contain
// category_id; it is added as the first column.
func UpdateMutation(categoryID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColCategoryID}
	vals := []interface{}{categoryID}
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Update(TableName, cols, vals)
}

// DeleteMutation deletes a single category by key.
func DeleteMutation(categoryID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{categoryID})
}
