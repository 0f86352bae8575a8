package shared

import (
	"encoding/json"
	"fmt"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the outbox.
// Money is written as integer minor units so consumers never parse decimals.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.CategoryCreatedEvent:
		payload = map[string]interface{}{
			"category_id": e.CategoryID,
			"store_id":    e.StoreID,
			"name":        e.Name,
			"order":       e.Order,
			"created_at":  e.CreatedAt,
		}

	case *domain.CategoryUpdatedEvent:
		payload = map[string]interface{}{
			"category_id": e.CategoryID,
			"store_id":    e.StoreID,
			"changes":     e.Changes,
			"updated_at":  e.UpdatedAt,
		}

	case *domain.CategoryDeletedEvent:
		payload = map[string]interface{}{
			"category_id": e.CategoryID,
			"store_id":    e.StoreID,
			"deleted_at":  e.DeletedAt,
		}

	case *domain.ItemCreatedEvent:
		payload = map[string]interface{}{
			"item_id":           e.ItemID,
			"store_id":          e.StoreID,
			"category_id":       e.CategoryID,
			"name":              e.Name,
			"price_minor_units": e.Price.MinorUnits(),
			"created_at":        e.CreatedAt,
		}

	case *domain.ItemUpdatedEvent:
		payload = map[string]interface{}{
			"item_id":    e.ItemID,
			"store_id":   e.StoreID,
			"changes":    e.Changes,
			"updated_at": e.UpdatedAt,
		}

	case *domain.ItemDeletedEvent:
		payload = map[string]interface{}{
			"item_id":    e.ItemID,
			"store_id":   e.StoreID,
			"deleted_at": e.DeletedAt,
		}

	case *domain.TemplateAppliedEvent:
		payload = map[string]interface{}{
			"store_id":           e.StoreID,
			"template_id":        e.TemplateID,
			"categories_removed": e.CategoriesRemoved,
			"items_removed":      e.ItemsRemoved,
			"categories_created": e.CategoriesCreated,
			"items_created":      e.ItemsCreated,
			"applied_at":         e.AppliedAt,
		}
	}

	if payload != nil {
		b, err := json.Marshal(payload)
		return string(b), err
	}

	// Fallback: try to marshal the event directly.
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}
