package create_item

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	shared "github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/shared"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/clock"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/metrics"
)

const operation = "create_item"

// Request is the application-level create-item request. Price is in major
// units and is rounded to minor units half away from zero.
type Request struct {
	StoreID     string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal
	Active      bool
	Archived    bool
}

type Interactor struct {
	Store   contracts.CatalogStore
	Clock   clock.Clock
	Metrics *metrics.Metrics
}

func NewInteractor(store contracts.CatalogStore, clk clock.Clock, m *metrics.Metrics) *Interactor {
	return &Interactor{Store: store, Clock: clk, Metrics: m}
}

// Execute creates an item in an existing category of the same store.
// A missing or foreign category yields domain.ErrReferentialViolation.
func (it *Interactor) Execute(ctx context.Context, req Request) (*domain.Item, error) {
	item, err := it.execute(ctx, req)
	it.Metrics.ObserveMutation(operation, err)
	return item, err
}

func (it *Interactor) execute(ctx context.Context, req Request) (*domain.Item, error) {
	now := it.Clock.Now()
	id := uuid.New().String()

	price, err := domain.NewMoneyFromDecimal(req.Price)
	if err != nil {
		return nil, err
	}

	var created *domain.Item
	err = it.Store.RunInTx(ctx, func(ctx context.Context, tx contracts.CatalogTx) error {
		category, err := tx.GetCategory(ctx, req.CategoryID)
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return domain.ErrReferentialViolation
		}
		if err != nil {
			return err
		}

		item, err := domain.NewItem(id, req.StoreID, category, req.Name, req.Description, price, req.Active, req.Archived, now)
		if err != nil {
			return err
		}
		if err := tx.InsertItem(ctx, item); err != nil {
			return err
		}
		if err := shared.AppendEvents(ctx, tx, item.DomainEvents(), now); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	created.ClearEvents()
	return created, nil
}
