package m_store

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the fields for inserting a store.
// Stores are owned by store-management flows; this exists for seeding and tests.
func BuildInsertMap(storeID, ownerID, name, slug string, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColStoreID:   storeID,
		ColOwnerID:   ownerID,
		ColName:      name,
		ColSlug:      slug,
		ColCreatedAt: createdAt,
	}
}

// InsertMutation builds a spanner.Insert mutation for a store.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}
