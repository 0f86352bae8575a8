package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// Adapter applies commit plans against a Spanner client.
type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

// Apply atomically writes a prepared plan.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}
	return a.ReadWrite(ctx, func(ctx context.Context, _ *spanner.ReadWriteTransaction, p *Plan) error {
		for _, m := range plan.Mutations() {
			p.Add(m)
		}
		return nil
	})
}

// ReadWrite runs fn in a read-write transaction with a fresh plan. The plan's
// mutations are buffered after fn returns nil and commit with the transaction.
// Spanner may call fn again when it aborts the transaction, so fn must not
// carry state across attempts.
func (a *Adapter) ReadWrite(ctx context.Context, fn func(ctx context.Context, rwt *spanner.ReadWriteTransaction, plan *Plan) error) error {
	if a.client == nil {
		return fmt.Errorf("committer: spanner client is nil")
	}

	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, rwt *spanner.ReadWriteTransaction) error {
		plan := NewPlan()
		if err := fn(ctx, rwt, plan); err != nil {
			return err
		}
		if plan.IsEmpty() {
			return nil
		}
		return rwt.BufferWrite(plan.Mutations())
	})
	return err
}
