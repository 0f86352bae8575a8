package list_items

import (
	"context"
	"errors"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/dto"
)

type Handler struct {
	reader contracts.CatalogReader
}

func NewHandler(r contracts.CatalogReader) *Handler {
	return &Handler{reader: r}
}

// Execute lists the store's items. A non-nil categoryID narrows the result to
// that category and must name a category of the same store.
func (h *Handler) Execute(ctx context.Context, storeID string, categoryID *string) ([]*dto.ItemDTO, error) {
	if categoryID != nil {
		c, err := h.reader.GetCategory(ctx, *categoryID)
		if err != nil && !errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, err
		}
		if !c.BelongsTo(storeID) {
			return nil, domain.ErrCategoryNotFound
		}
	}

	items, err := h.reader.ListItems(ctx, storeID, categoryID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FromItem(it))
	}
	return out, nil
}
