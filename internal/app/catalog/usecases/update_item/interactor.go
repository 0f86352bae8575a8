package update_item

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	shared "github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/shared"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/clock"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/metrics"
)

const operation = "update_item"

// Request carries a sparse update. Nil fields keep their stored value.
// An empty Description clears it. CategoryID moves the item.
type Request struct {
	StoreID     string
	ItemID      string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Active      *bool
	Archived    *bool
	CategoryID  *string
}

type Interactor struct {
	Store   contracts.CatalogStore
	Clock   clock.Clock
	Metrics *metrics.Metrics
}

func NewInteractor(store contracts.CatalogStore, clk clock.Clock, m *metrics.Metrics) *Interactor {
	return &Interactor{Store: store, Clock: clk, Metrics: m}
}

// Execute applies the supplied fields only. Moving to a category that is missing
// or owned by another store fails with domain.ErrReferentialViolation.
func (it *Interactor) Execute(ctx context.Context, req Request) (*domain.Item, error) {
	item, err := it.execute(ctx, req)
	it.Metrics.ObserveMutation(operation, err)
	return item, err
}

func (it *Interactor) execute(ctx context.Context, req Request) (*domain.Item, error) {
	now := it.Clock.Now()

	patch := domain.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
		Archived:    req.Archived,
	}
	if req.Price != nil {
		price, err := domain.NewMoneyFromDecimal(*req.Price)
		if err != nil {
			return nil, err
		}
		patch.Price = &price
	}

	var updated *domain.Item
	err := it.Store.RunInTx(ctx, func(ctx context.Context, tx contracts.CatalogTx) error {
		item, err := tx.GetItem(ctx, req.ItemID)
		if err != nil {
			return err
		}
		if item.StoreID() != req.StoreID {
			return domain.ErrItemNotFound
		}

		if req.CategoryID != nil {
			target, err := tx.GetCategory(ctx, *req.CategoryID)
			if errors.Is(err, domain.ErrCategoryNotFound) {
				return domain.ErrReferentialViolation
			}
			if err != nil {
				return err
			}
			if err := item.MoveTo(target, now); err != nil {
				return err
			}
		}
		if err := item.Update(patch, now); err != nil {
			return err
		}

		updated = item
		if !item.Changes().HasChanges() {
			return nil
		}
		if err := tx.UpdateItem(ctx, item); err != nil {
			return err
		}
		return shared.AppendEvents(ctx, tx, item.DomainEvents(), now)
	})
	if err != nil {
		return nil, err
	}

	updated.ClearEvents()
	return updated, nil
}
