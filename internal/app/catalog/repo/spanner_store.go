package repo

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_category"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_item"
	"github.com/murkotick/storefront-catalog-service/internal/pkg/committer"
)

// SpannerStore is the Cloud Spanner implementation of contracts.CatalogStore.
//
// Inside a boundary, bulk deletes run as DML so their effect is visible to
// later reads; inserts, updates and point deletes are collected as mutations in
// a commit plan and buffered when the callback returns.
type SpannerStore struct {
	spannerReader
	committer  *committer.Adapter
	categories *CategoryRepo
	items      *ItemRepo
	outbox     *OutboxRepo
}

func NewSpannerStore(client *spanner.Client) *SpannerStore {
	return &SpannerStore{
		spannerReader: spannerReader{q: func() querier { return client.Single() }},
		committer:     committer.NewAdapter(client),
		categories:    NewCategoryRepo(),
		items:         NewItemRepo(),
		outbox:        NewOutboxRepo(),
	}
}

func (s *SpannerStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx contracts.CatalogTx) error) error {
	err := s.committer.ReadWrite(ctx, func(ctx context.Context, rwt *spanner.ReadWriteTransaction, plan *committer.Plan) error {
		return fn(ctx, &spannerTx{
			spannerReader:   spannerReader{q: func() querier { return rwt }},
			rwt:             rwt,
			plan:            plan,
			store:           s,
			pendingCats:     make(map[string]*domain.Category),
			pendingItemRefs: make(map[string]int),
		})
	})
	if err != nil && isSpannerForeignKeyViolation(err) {
		return fmt.Errorf("%w: %w", domain.ErrReferentialViolation, err)
	}
	return err
}

// spannerTx implements contracts.CatalogTx on a read-write transaction.
// Buffered mutations are not visible to reads, so rows inserted in this
// transaction are tracked to keep integrity checks accurate.
type spannerTx struct {
	spannerReader
	rwt   *spanner.ReadWriteTransaction
	plan  *committer.Plan
	store *SpannerStore

	pendingCats     map[string]*domain.Category
	pendingItemRefs map[string]int
}

func (t *spannerTx) InsertCategory(ctx context.Context, c *domain.Category) error {
	t.plan.Add(t.store.categories.InsertMut(c))
	t.pendingCats[c.ID()] = c
	return nil
}

func (t *spannerTx) UpdateCategory(ctx context.Context, c *domain.Category) error {
	t.plan.Add(t.store.categories.UpdateMut(c))
	return nil
}

func (t *spannerTx) DeleteCategory(ctx context.Context, categoryID string) error {
	n, err := t.CountItemsInCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if n+int64(t.pendingItemRefs[categoryID]) > 0 {
		return domain.ErrNotEmpty
	}
	t.plan.Add(t.store.categories.DeleteMut(categoryID))
	delete(t.pendingCats, categoryID)
	return nil
}

func (t *spannerTx) InsertItem(ctx context.Context, it *domain.Item) error {
	if err := t.checkCategory(ctx, it.StoreID(), it.CategoryID()); err != nil {
		return err
	}
	t.plan.Add(t.store.items.InsertMut(it))
	t.pendingItemRefs[it.CategoryID()]++
	return nil
}

func (t *spannerTx) UpdateItem(ctx context.Context, it *domain.Item) error {
	if it.Changes().Dirty(domain.FieldItemCategory) {
		if err := t.checkCategory(ctx, it.StoreID(), it.CategoryID()); err != nil {
			return err
		}
	}
	t.plan.Add(t.store.items.UpdateMut(it))
	return nil
}

func (t *spannerTx) DeleteItem(ctx context.Context, itemID string) error {
	t.plan.Add(t.store.items.DeleteMut(itemID))
	return nil
}

func (t *spannerTx) DeleteItemsByStore(ctx context.Context, storeID string) (int64, error) {
	return t.rwt.Update(ctx, spanner.Statement{
		SQL:    fmt.Sprintf(`DELETE FROM %s WHERE %s = @store_id`, m_item.TableName, m_item.ColStoreID),
		Params: map[string]interface{}{"store_id": storeID},
	})
}

func (t *spannerTx) DeleteCategoriesByStore(ctx context.Context, storeID string) (int64, error) {
	return t.rwt.Update(ctx, spanner.Statement{
		SQL:    fmt.Sprintf(`DELETE FROM %s WHERE %s = @store_id`, m_category.TableName, m_category.ColStoreID),
		Params: map[string]interface{}{"store_id": storeID},
	})
}

func (t *spannerTx) AppendOutbox(ctx context.Context, e *contracts.OutboxEvent) error {
	t.plan.Add(t.store.outbox.InsertMut(e))
	return nil
}

func (t *spannerTx) checkCategory(ctx context.Context, storeID, categoryID string) error {
	c, ok := t.pendingCats[categoryID]
	if !ok {
		var err error
		c, err = t.GetCategory(ctx, categoryID)
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return domain.ErrReferentialViolation
		}
		if err != nil {
			return err
		}
	}
	if !c.BelongsTo(storeID) {
		return domain.ErrReferentialViolation
	}
	return nil
}
