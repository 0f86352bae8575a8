package m_category

import (
	"time"

	"github.com/murkotick/storefront-catalog-service/internal/models/m_item"
)

// Row is the SQL mapping of a category.
type Row struct {
	CategoryID   string    `gorm:"column:category_id;primaryKey;size:36"`
	StoreID      string    `gorm:"column:store_id;size:36;not null;index:idx_categories_store_order,priority:1"`
	Name         string    `gorm:"column:name;size:100;not null"`
	DisplayOrder int64     `gorm:"column:display_order;not null;index:idx_categories_store_order,priority:2"`
	Active       bool      `gorm:"column:active;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"`

	// Items declares the items.category_id foreign key. Never loaded or saved.
	Items []m_item.Row `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (Row) TableName() string { return TableName }
