package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
)

// AppendEvents enriches domain events into pending outbox rows written through tx,
// so they commit or roll back together with the change that raised them.
func AppendEvents(ctx context.Context, tx contracts.CatalogTx, events []domain.DomainEvent, now time.Time) error {
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			return err
		}
		if err := tx.AppendOutbox(ctx, &contracts.OutboxEvent{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       contracts.OutboxStatusPending,
			CreatedAtUTC: now.UTC(),
		}); err != nil {
			return err
		}
	}
	return nil
}
