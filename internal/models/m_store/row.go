package m_store

import (
	"time"

	"github.com/murkotick/storefront-catalog-service/internal/models/m_category"
)

// Row is the SQL mapping of a store.
type Row struct {
	StoreID   string    `gorm:"column:store_id;primaryKey;size:36"`
	OwnerID   string    `gorm:"column:owner_id;size:36;not null;index"`
	Name      string    `gorm:"column:name;size:255;not null"`
	Slug      string    `gorm:"column:slug;size:255;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`

	Categories []m_category.Row `gorm:"foreignKey:StoreID;references:StoreID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (Row) TableName() string { return TableName }
