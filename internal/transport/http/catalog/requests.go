package catalog

import "github.com/shopspring/decimal"

type applyTemplateRequest struct {
	TemplateID string `json:"template_id" binding:"required,max=100"`
}

type createCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Order int64  `json:"order" binding:"min=0"`
}

// Nil fields are left unchanged.
type updateCategoryRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=100"`
	Order  *int64  `json:"order" binding:"omitempty,min=0"`
	Active *bool   `json:"active"`
}

// Price accepts a JSON number or a decimal string, in major units.
type createItemRequest struct {
	CategoryID  string           `json:"category_id" binding:"required"`
	Name        string           `json:"name" binding:"required,max=255"`
	Description string           `json:"description" binding:"max=2000"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Active      *bool            `json:"active"`
	Archived    bool             `json:"archived"`
}

type updateItemRequest struct {
	CategoryID  *string          `json:"category_id" binding:"omitempty,min=1"`
	Name        *string          `json:"name" binding:"omitempty,max=255"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	Active      *bool            `json:"active"`
	Archived    *bool            `json:"archived"`
}

func (r updateItemRequest) empty() bool {
	return r.CategoryID == nil && r.Name == nil && r.Description == nil &&
		r.Price == nil && r.Active == nil && r.Archived == nil
}

func (r updateCategoryRequest) empty() bool {
	return r.Name == nil && r.Order == nil && r.Active == nil
}
