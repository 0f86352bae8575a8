package m_store

// Field constants for the stores table.
const (
	TableName = "stores"

	ColStoreID   = "store_id"
	ColOwnerID   = "owner_id"
	ColName      = "name"
	ColSlug      = "slug"
	ColCreatedAt = "created_at"
)

// Columns lists the columns read back into a Store.
var Columns = []string{ColStoreID, ColOwnerID, ColName, ColSlug}
