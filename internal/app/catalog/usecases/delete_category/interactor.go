package delete_category

import (
	"context"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	shared "github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/shared"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/clock"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/metrics"
)

const operation = "delete_category"

type Request struct {
	StoreID    string
	CategoryID string
}

type Interactor struct {
	Store   contracts.CatalogStore
	Clock   clock.Clock
	Metrics *metrics.Metrics
}

func NewInteractor(store contracts.CatalogStore, clk clock.Clock, m *metrics.Metrics) *Interactor {
	return &Interactor{Store: store, Clock: clk, Metrics: m}
}

// Execute deletes an empty category. It fails with domain.ErrNotEmpty while any
// item still references it; callers must delete those items first.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	err := it.execute(ctx, req)
	it.Metrics.ObserveMutation(operation, err)
	return err
}

func (it *Interactor) execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	return it.Store.RunInTx(ctx, func(ctx context.Context, tx contracts.CatalogTx) error {
		c, err := tx.GetCategory(ctx, req.CategoryID)
		if err != nil {
			return err
		}
		if !c.BelongsTo(req.StoreID) {
			return domain.ErrCategoryNotFound
		}
		if err := tx.DeleteCategory(ctx, c.ID()); err != nil {
			return err
		}
		return shared.AppendEvents(ctx, tx, []domain.DomainEvent{&domain.CategoryDeletedEvent{
			CategoryID: c.ID(),
			StoreID:    c.StoreID(),
			DeletedAt:  now,
		}}, now)
	})
}
