package dto

import (
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/templates"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/utils"
)

// CategoryDTO contains category fields returned by read queries.
// Timestamps are RFC3339 strings in UTC.
type CategoryDTO struct {
	CategoryID string `json:"category_id"`
	StoreID    string `json:"store_id"`
	Name       string `json:"name"`
	Order      int64  `json:"order"`
	Active     bool   `json:"active"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ItemDTO contains item fields returned by read queries.
type ItemDTO struct {
	ItemID      string  `json:"item_id"`
	CategoryID  string  `json:"category_id"`
	StoreID     string  `json:"store_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`

	// PriceMinorUnits is the stored integer amount; Price is the same value as a
	// two-place decimal string.
	PriceMinorUnits int64  `json:"price_minor_units"`
	Price           string `json:"price"`

	Active    bool   `json:"active"`
	Archived  bool   `json:"archived"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TemplateSummaryDTO describes one available template.
type TemplateSummaryDTO struct {
	TemplateID    string `json:"template_id"`
	DisplayName   string `json:"display_name"`
	CategoryCount int    `json:"category_count"`
	ItemCount     int    `json:"item_count"`
}

// ProvisioningResultDTO is the summary of a committed template application.
type ProvisioningResultDTO struct {
	StoreID           string `json:"store_id"`
	TemplateID        string `json:"template_id"`
	CategoriesRemoved int64  `json:"categories_removed"`
	ItemsRemoved      int64  `json:"items_removed"`
	CategoriesCreated int    `json:"categories_created"`
	ItemsCreated      int    `json:"items_created"`
}

func FromCategory(c *domain.Category) *CategoryDTO {
	return &CategoryDTO{
		CategoryID: c.ID(),
		StoreID:    c.StoreID(),
		Name:       c.Name(),
		Order:      c.Order(),
		Active:     c.Active(),
		CreatedAt:  utils.FormatTime(c.CreatedAt()),
		UpdatedAt:  utils.FormatTime(c.UpdatedAt()),
	}
}

func FromItem(it *domain.Item) *ItemDTO {
	out := &ItemDTO{
		ItemID:          it.ID(),
		CategoryID:      it.CategoryID(),
		StoreID:         it.StoreID(),
		Name:            it.Name(),
		PriceMinorUnits: it.Price().MinorUnits(),
		Price:           it.Price().String(),
		Active:          it.Active(),
		Archived:        it.Archived(),
		CreatedAt:       utils.FormatTime(it.CreatedAt()),
		UpdatedAt:       utils.FormatTime(it.UpdatedAt()),
	}
	if d := it.Description(); d != "" {
		out.Description = &d
	}
	return out
}

func FromSummary(s templates.Summary) *TemplateSummaryDTO {
	return &TemplateSummaryDTO{
		TemplateID:    s.ID,
		DisplayName:   s.DisplayName,
		CategoryCount: s.CategoryCount,
		ItemCount:     s.ItemCount,
	}
}
