package delete_item

import (
	"context"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	shared "github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/shared"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/clock"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/metrics"
)

const operation = "delete_item"

type Request struct {
	StoreID string
	ItemID  string
}

type Interactor struct {
	Store   contracts.CatalogStore
	Clock   clock.Clock
	Metrics *metrics.Metrics
}

func NewInteractor(store contracts.CatalogStore, clk clock.Clock, m *metrics.Metrics) *Interactor {
	return &Interactor{Store: store, Clock: clk, Metrics: m}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	err := it.execute(ctx, req)
	it.Metrics.ObserveMutation(operation, err)
	return err
}

func (it *Interactor) execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	return it.Store.RunInTx(ctx, func(ctx context.Context, tx contracts.CatalogTx) error {
		item, err := tx.GetItem(ctx, req.ItemID)
		if err != nil {
			return err
		}
		if item.StoreID() != req.StoreID {
			return domain.ErrItemNotFound
		}
		if err := tx.DeleteItem(ctx, item.ID()); err != nil {
			return err
		}
		return shared.AppendEvents(ctx, tx, []domain.DomainEvent{&domain.ItemDeletedEvent{
			ItemID:    item.ID(),
			StoreID:   item.StoreID(),
			DeletedAt: now,
		}}, now)
	})
}
