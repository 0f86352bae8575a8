package repo

import (
	"fmt"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_category"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_item"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_outbox"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_store"
)

func storeFromRow(r *m_store.Row) *domain.Store {
	return &domain.Store{ID: r.StoreID, OwnerID: r.OwnerID, Name: r.Name, Slug: r.Slug}
}

func categoryFromRow(r *m_category.Row) *domain.Category {
	return domain.ReconstructCategory(r.CategoryID, r.StoreID, r.Name, r.DisplayOrder, r.Active, r.CreatedAt, r.UpdatedAt)
}

func categoryToRow(c *domain.Category) *m_category.Row {
	return &m_category.Row{
		CategoryID:   c.ID(),
		StoreID:      c.StoreID(),
		Name:         c.Name(),
		DisplayOrder: c.Order(),
		Active:       c.Active(),
		CreatedAt:    c.CreatedAt().UTC(),
		UpdatedAt:    c.UpdatedAt().UTC(),
	}
}

func itemFromRow(r *m_item.Row) (*domain.Item, error) {
	price, err := domain.NewMoneyFromMinorUnits(r.PriceMinorUnits)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", r.ItemID, err)
	}
	var desc string
	if r.Description != nil {
		desc = *r.Description
	}
	return domain.ReconstructItem(r.ItemID, r.CategoryID, r.StoreID, r.Name, desc, price,
		r.Active, r.Archived, r.CreatedAt, r.UpdatedAt), nil
}

func itemToRow(it *domain.Item) *m_item.Row {
	return &m_item.Row{
		ItemID:          it.ID(),
		CategoryID:      it.CategoryID(),
		StoreID:         it.StoreID(),
		Name:            it.Name(),
		Description:     nullableString(it.Description()),
		PriceMinorUnits: it.Price().MinorUnits(),
		Active:          it.Active(),
		Archived:        it.Archived(),
		CreatedAt:       it.CreatedAt().UTC(),
		UpdatedAt:       it.UpdatedAt().UTC(),
	}
}

func outboxToRow(e *contracts.OutboxEvent) *m_outbox.Row {
	status := e.Status
	if status == "" {
		status = contracts.OutboxStatusPending
	}
	return &m_outbox.Row{
		EventID:     e.EventID,
		EventType:   e.EventType,
		AggregateID: e.AggregateID,
		Payload:     e.PayloadJSON,
		Status:      status,
		CreatedAt:   e.CreatedAtUTC.UTC(),
	}
}
