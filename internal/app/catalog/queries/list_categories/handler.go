package list_categories

import (
	"context"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/dto"
)

type Handler struct {
	reader contracts.CatalogReader
}

func NewHandler(r contracts.CatalogReader) *Handler {
	return &Handler{reader: r}
}

// Execute returns the store's categories in display order, ties broken by id.
func (h *Handler) Execute(ctx context.Context, storeID string) ([]*dto.CategoryDTO, error) {
	cats, err := h.reader.ListCategories(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.FromCategory(c))
	}
	return out, nil
}
