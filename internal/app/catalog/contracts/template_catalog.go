package contracts

import "github.com/murkotick/storefront-catalog-service/internal/app/catalog/templates"

// TemplateCatalog resolves business templates by id.
type TemplateCatalog interface {
	Resolve(templateID string) (*templates.Definition, error)
	ListAvailable() []templates.Summary
}
