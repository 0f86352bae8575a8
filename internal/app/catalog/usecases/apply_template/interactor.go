package apply_template

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/templates"
	shared "github.com/murkotick/storefront-catalog-service/internal/app/catalog/usecases/shared"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/clock"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/logger"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/metrics"
)

// unknownTemplate labels metrics for calls that never resolved a template.
const unknownTemplate = "unknown"

// Request identifies the store to reprovision, who asks for it, and the template.
type Request struct {
	StoreID     string
	PrincipalID string
	TemplateID  string
}

// Result summarises a committed template application.
type Result struct {
	StoreID           string
	TemplateID        string
	CategoriesRemoved int64
	ItemsRemoved      int64
	CategoriesCreated int
	ItemsCreated      int
}

// Interactor replaces a store's whole catalog with a template in one transaction.
//
// Every failure is one of domain.ErrUnauthorized, domain.ErrTemplateNotFound,
// domain.ErrTemplateIntegrity or domain.ErrProvisioningFailed. The last two are
// returned only after the transaction rolled back, so the prior catalog is intact.
// Nothing is retried here; reapplying is always safe.
type Interactor struct {
	Store     contracts.CatalogStore
	Templates contracts.TemplateCatalog
	Clock     clock.Clock
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	// Timeout bounds the transactional boundary. Zero means no bound beyond ctx.
	Timeout time.Duration
}

// NewInteractor constructs the interactor.
func NewInteractor(
	store contracts.CatalogStore,
	catalog contracts.TemplateCatalog,
	clk clock.Clock,
	log *zap.Logger,
	m *metrics.Metrics,
	timeout time.Duration,
) *Interactor {
	return &Interactor{
		Store:     store,
		Templates: catalog,
		Clock:     clk,
		Logger:    log,
		Metrics:   m,
		Timeout:   timeout,
	}
}

// Execute authorizes, resolves the template and swaps the catalog.
func (it *Interactor) Execute(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	res, label, err := it.execute(ctx, req)
	it.Metrics.ObserveProvisioning(label, time.Since(start), err)
	return res, err
}

// execute also returns the metric label: the resolved template ID, or
// unknownTemplate before resolution succeeded.
func (it *Interactor) execute(ctx context.Context, req Request) (*Result, string, error) {
	log := logger.FromContext(ctx, it.Logger).With(
		zap.String("store_id", req.StoreID),
		zap.String("template_id", req.TemplateID),
	)

	// 1. Authorize. No mutation has happened yet, so nothing to roll back.
	if _, err := it.Store.FindStoreOwnedBy(ctx, req.StoreID, req.PrincipalID); err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			log.Warn("template application denied", zap.String("principal_id", req.PrincipalID))
			return nil, unknownTemplate, domain.ErrUnauthorized
		}
		log.Warn("store lookup failed", zap.Error(err))
		return nil, unknownTemplate, fmt.Errorf("%w: %w", domain.ErrProvisioningFailed, err)
	}

	// 2. Resolve template.
	def, err := it.Templates.Resolve(req.TemplateID)
	if err != nil {
		return nil, unknownTemplate, err
	}

	// 3. Open the boundary, bounded by the configured timeout.
	if it.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, it.Timeout)
		defer cancel()
	}

	var res *Result
	err = it.Store.RunInTx(ctx, func(ctx context.Context, tx contracts.CatalogTx) error {
		// The backend may rerun this callback; every attempt starts from scratch.
		r, err := it.replaceCatalog(ctx, tx, req.StoreID, def)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrReferentialViolation) && !errors.Is(err, domain.ErrTemplateIntegrity) {
			err = fmt.Errorf("%w: %w", domain.ErrTemplateIntegrity, err)
		}
		if errors.Is(err, domain.ErrTemplateIntegrity) {
			log.Error("template integrity violation, catalog rolled back", zap.Error(err))
			return nil, def.ID, err
		}
		log.Warn("template application failed, catalog rolled back", zap.Error(err))
		return nil, def.ID, fmt.Errorf("%w: %w", domain.ErrProvisioningFailed, err)
	}

	log.Info("template applied",
		zap.Int64("categories_removed", res.CategoriesRemoved),
		zap.Int64("items_removed", res.ItemsRemoved),
		zap.Int("categories_created", res.CategoriesCreated),
		zap.Int("items_created", res.ItemsCreated),
	)
	return res, def.ID, nil
}

// replaceCatalog runs steps 4 to 7 against tx. Categories are written before any
// item that references them, each in template order.
func (it *Interactor) replaceCatalog(ctx context.Context, tx contracts.CatalogTx, storeID string, def *templates.Definition) (*Result, error) {
	now := it.Clock.Now()
	res := &Result{StoreID: storeID, TemplateID: def.ID}

	// 4. Items first so no item outlives its category, even transiently.
	var err error
	if res.ItemsRemoved, err = tx.DeleteItemsByStore(ctx, storeID); err != nil {
		return nil, fmt.Errorf("clear items: %w", err)
	}
	if res.CategoriesRemoved, err = tx.DeleteCategoriesByStore(ctx, storeID); err != nil {
		return nil, fmt.Errorf("clear categories: %w", err)
	}

	// 5. Categories, order = 1-based position. The name map lives for this call only.
	byName := make(map[string]*domain.Category, len(def.Categories))
	for i, spec := range def.Categories {
		if _, dup := byName[spec.Name]; dup {
			return nil, fmt.Errorf("%w: template %s declares category %q twice", domain.ErrTemplateIntegrity, def.ID, spec.Name)
		}
		c, err := domain.NewCategory(uuid.New().String(), storeID, spec.Name, int64(i+1), now)
		if err != nil {
			return nil, fmt.Errorf("%w: template %s category %q: %w", domain.ErrTemplateIntegrity, def.ID, spec.Name, err)
		}
		if err := tx.InsertCategory(ctx, c); err != nil {
			return nil, fmt.Errorf("insert category %q: %w", spec.Name, err)
		}
		byName[spec.Name] = c
		res.CategoriesCreated++
	}

	// 6. Items, bound through the name map.
	for _, spec := range def.Items {
		c, ok := byName[spec.Category]
		if !ok {
			return nil, fmt.Errorf("%w: template %s item %q references unknown category %q",
				domain.ErrTemplateIntegrity, def.ID, spec.Name, spec.Category)
		}
		price, err := domain.NewMoneyFromDecimal(spec.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: template %s item %q: %w", domain.ErrTemplateIntegrity, def.ID, spec.Name, err)
		}
		item, err := domain.NewItem(uuid.New().String(), storeID, c, spec.Name, spec.Description, price, true, false, now)
		if err != nil {
			return nil, fmt.Errorf("%w: template %s item %q: %w", domain.ErrTemplateIntegrity, def.ID, spec.Name, err)
		}
		if err := tx.InsertItem(ctx, item); err != nil {
			if errors.Is(err, domain.ErrReferentialViolation) {
				return nil, fmt.Errorf("%w: item %q: %w", domain.ErrTemplateIntegrity, spec.Name, err)
			}
			return nil, fmt.Errorf("insert item %q: %w", spec.Name, err)
		}
		res.ItemsCreated++
	}

	// 7. One summary event; commit happens when the callback returns.
	ev := &domain.TemplateAppliedEvent{
		StoreID:           storeID,
		TemplateID:        def.ID,
		CategoriesRemoved: res.CategoriesRemoved,
		ItemsRemoved:      res.ItemsRemoved,
		CategoriesCreated: res.CategoriesCreated,
		ItemsCreated:      res.ItemsCreated,
		AppliedAt:         now,
	}
	if err := shared.AppendEvents(ctx, tx, []domain.DomainEvent{ev}, now); err != nil {
		return nil, fmt.Errorf("append outbox: %w", err)
	}
	return res, nil
}
