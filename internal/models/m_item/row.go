package m_item

import "time"

// Row is the SQL mapping of an item.
type Row struct {
	ItemID          string    `gorm:"column:item_id;primaryKey;size:36"`
	CategoryID      string    `gorm:"column:category_id;size:36;not null;index"`
	StoreID         string    `gorm:"column:store_id;size:36;not null;index"`
	Name            string    `gorm:"column:name;size:255;not null"`
	Description     *string   `gorm:"column:description;size:2000"`
	PriceMinorUnits int64     `gorm:"column:price_minor_units;not null"`
	Active          bool      `gorm:"column:active;not null"`
	Archived        bool      `gorm:"column:archived;not null"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null"`
}

func (Row) TableName() string { return TableName }
