package m_item

// Field constants for the items table.
const (
	TableName = "items"

	ColItemID          = "item_id"
	ColCategoryID      = "category_id"
	ColStoreID         = "store_id"
	ColName            = "name"
	ColDescription     = "description"
	ColPriceMinorUnits = "price_minor_units"
	ColActive          = "active"
	ColArchived        = "archived"
	ColCreatedAt       = "created_at"
	ColUpdatedAt       = "updated_at"
)

// Columns lists the columns read back into an Item, in scan order.
var Columns = []string{
	ColItemID, ColCategoryID, ColStoreID, ColName, ColDescription,
	ColPriceMinorUnits, ColActive, ColArchived, ColCreatedAt, ColUpdatedAt,
}
