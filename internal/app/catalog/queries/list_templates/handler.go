package list_templates

import (
	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/dto"
)

type Handler struct {
	catalog contracts.TemplateCatalog
}

func NewHandler(c contracts.TemplateCatalog) *Handler {
	return &Handler{catalog: c}
}

// Execute returns every available template ordered by id.
func (h *Handler) Execute() []*dto.TemplateSummaryDTO {
	summaries := h.catalog.ListAvailable()
	out := make([]*dto.TemplateSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.FromSummary(s))
	}
	return out
}
