package create_category

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	shared "github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/shared"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/clock"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/metrics"
)

const operation = "create_category"

// Request is the application-level create-category request.
// Names need not be unique and orders may repeat.
type Request struct {
	StoreID string
	Name    string
	Order   int64
}

// Interactor implements the create-category usecase.
type Interactor struct {
	Store   contracts.CatalogStore
	Clock   clock.Clock
	Metrics *metrics.Metrics
}

// NewInteractor constructs the interactor.
func NewInteractor(store contracts.CatalogStore, clk clock.Clock, m *metrics.Metrics) *Interactor {
	return &Interactor{Store: store, Clock: clk, Metrics: m}
}

// Execute inserts one category row and its outbox event in a single transaction.
func (it *Interactor) Execute(ctx context.Context, req Request) (*domain.Category, error) {
	c, err := it.execute(ctx, req)
	it.Metrics.ObserveMutation(operation, err)
	return c, err
}

func (it *Interactor) execute(ctx context.Context, req Request) (*domain.Category, error) {
	now := it.Clock.Now()

	category, err := domain.NewCategory(uuid.New().String(), req.StoreID, req.Name, req.Order, now)
	if err != nil {
		return nil, err
	}

	err = it.Store.RunInTx(ctx, func(ctx context.Context, tx contracts.CatalogTx) error {
		if err := tx.InsertCategory(ctx, category); err != nil {
			return err
		}
		return shared.AppendEvents(ctx, tx, category.DomainEvents(), now)
	})
	if err != nil {
		return nil, err
	}

	category.ClearEvents()
	return category, nil
}
