package repo

import (
	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_outbox"
)

// OutboxRepo is the Spanner implementation of the transactional outbox repository.
// It returns *spanner.Mutation but never applies it.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}
	return m_outbox.InsertMutation(outboxInsertValues(e))
}

func outboxInsertValues(e *contracts.OutboxEvent) map[string]interface{} {
	status := e.Status
	if status == "" {
		status = contracts.OutboxStatusPending
	}
	return m_outbox.BuildInsertMap(e.EventID, e.EventType, e.AggregateID, e.PayloadJSON, status, e.CreatedAtUTC.UTC())
}
