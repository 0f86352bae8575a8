package update_category

import (
	"context"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	shared "github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/shared"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/clock"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/metrics"
)

const operation = "update_category"

// Request carries a sparse update. Nil fields keep their stored value.
type Request struct {
	StoreID    string
	CategoryID string
	Name       *string
	Order      *int64
	Active     *bool
}

type Interactor struct {
	Store   contracts.CatalogStore
	Clock   clock.Clock
	Metrics *metrics.Metrics
}

func NewInteractor(store contracts.CatalogStore, clk clock.Clock, m *metrics.Metrics) *Interactor {
	return &Interactor{Store: store, Clock: clk, Metrics: m}
}

// Execute loads the category, applies the patch and writes only the changed columns.
func (it *Interactor) Execute(ctx context.Context, req Request) (*domain.Category, error) {
	c, err := it.execute(ctx, req)
	it.Metrics.ObserveMutation(operation, err)
	return c, err
}

func (it *Interactor) execute(ctx context.Context, req Request) (*domain.Category, error) {
	now := it.Clock.Now()
	patch := domain.CategoryPatch{Name: req.Name, Order: req.Order, Active: req.Active}

	var updated *domain.Category
	err := it.Store.RunInTx(ctx, func(ctx context.Context, tx contracts.CatalogTx) error {
		c, err := tx.GetCategory(ctx, req.CategoryID)
		if err != nil {
			return err
		}
		if !c.BelongsTo(req.StoreID) {
			return domain.ErrCategoryNotFound
		}
		if err := c.Update(patch, now); err != nil {
			return err
		}
		if !c.Changes().HasChanges() {
			updated = c
			return nil
		}
		if err := tx.UpdateCategory(ctx, c); err != nil {
			return err
		}
		if err := shared.AppendEvents(ctx, tx, c.DomainEvents(), now); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated.ClearEvents()
	return updated, nil
}
