package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-catalog-service/internal/models/m_store"
)

type outboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	Status      string
	CreatedAt   time.Time
}

func mustFetchOutboxEvents(ctx context.Context, t *testing.T, client *spanner.Client, aggregateID string) []outboxEvent {
	t.Helper()
	items, err := fetchOutboxEvents(ctx, client, aggregateID)
	require.NoError(t, err)
	return items
}

func fetchOutboxEvents(ctx context.Context, client *spanner.Client, aggregateID string) ([]outboxEvent, error) {
	stmt := spanner.Statement{
		SQL: `SELECT event_id, event_type, aggregate_id, payload, status, created_at
        FROM outbox_events
        WHERE aggregate_id = @id
        ORDER BY created_at ASC, event_id ASC`,
		Params: map[string]any{"id": aggregateID},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]outboxEvent, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var e outboxEvent
		if err := row.Columns(&e.EventID, &e.EventType, &e.AggregateID, &e.Payload, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

// mustCount returns the number of rows in table owned by storeID.
func mustCount(ctx context.Context, t *testing.T, table, storeID string) int64 {
	t.Helper()
	iter := spClient.Single().Query(ctx, spanner.Statement{
		SQL:    fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE store_id = @store_id", table),
		Params: map[string]any{"store_id": storeID},
	})
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err)
	var n int64
	require.NoError(t, row.Columns(&n))
	return n
}

// mustSeedStore inserts a fresh store owned by ownerID and returns its id.
func mustSeedStore(ctx context.Context, t *testing.T, ownerID string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := spClient.Apply(ctx, []*spanner.Mutation{
		m_store.InsertMutation(m_store.BuildInsertMap(id, ownerID, "Store "+id[:8], "store-"+id, clk.Now())),
	})
	require.NoError(t, err)
	return id
}
