package m_category

// Field constants for the categories table.
const (
	TableName = "categories"

	ColCategoryID   = "category_id"
	ColStoreID      = "store_id"
	ColName         = "name"
	ColDisplayOrder = "display_order"
	ColActive       = "active"
	ColCreatedAt    = "created_at"
	ColUpdatedAt    = "updated_at"
)

// Columns lists the columns read back into a Category, in scan order.
var Columns = []string{ColCategoryID, ColStoreID, ColName, ColDisplayOrder, ColActive, ColCreatedAt, ColUpdatedAt}
