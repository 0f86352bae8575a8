package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	contracts "github.com/murkotick/storefront-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_category"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_item"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_store"
)

// GormStore is the SQL implementation of contracts.CatalogStore (postgres in
// production, sqlite in tests). Open the *gorm.DB with TranslateError enabled
// so constraint failures map onto domain errors.
type GormStore struct {
	gormReader
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{gormReader{db: db}}
}

func (s *GormStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx contracts.CatalogTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &gormTx{gormReader{db: tx}})
	})
}

type gormReader struct {
	db *gorm.DB
}

func (r gormReader) FindStoreOwnedBy(ctx context.Context, storeID, principalID string) (*domain.Store, error) {
	if principalID == "" {
		return nil, domain.ErrStoreNotFound
	}
	var row m_store.Row
	err := r.db.WithContext(ctx).
		Where(m_store.ColStoreID+" = ? AND "+m_store.ColOwnerID+" = ?", storeID, principalID).
		Take(&row).Error
	if err != nil {
		return nil, translateGormError(err, nil, domain.ErrStoreNotFound)
	}
	return storeFromRow(&row), nil
}

func (r gormReader) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	var row m_category.Row
	err := r.db.WithContext(ctx).Where(m_category.ColCategoryID+" = ?", categoryID).Take(&row).Error
	if err != nil {
		return nil, translateGormError(err, nil, domain.ErrCategoryNotFound)
	}
	return categoryFromRow(&row), nil
}

func (r gormReader) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	var row m_item.Row
	err := r.db.WithContext(ctx).Where(m_item.ColItemID+" = ?", itemID).Take(&row).Error
	if err != nil {
		return nil, translateGormError(err, nil, domain.ErrItemNotFound)
	}
	return itemFromRow(&row)
}

func (r gormReader) ListCategories(ctx context.Context, storeID string) ([]*domain.Category, error) {
	var rows []m_category.Row
	err := r.db.WithContext(ctx).
		Where(m_category.ColStoreID+" = ?", storeID).
		Order(m_category.ColDisplayOrder + " ASC").
		Order(m_category.ColCategoryID + " ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Category, 0, len(rows))
	for i := range rows {
		out = append(out, categoryFromRow(&rows[i]))
	}
	return out, nil
}

func (r gormReader) ListItems(ctx context.Context, storeID string, categoryID *string) ([]*domain.Item, error) {
	q := r.db.WithContext(ctx).Where(m_item.ColStoreID+" = ?", storeID)
	if categoryID != nil {
		q = q.Where(m_item.ColCategoryID+" = ?", *categoryID)
	}
	var rows []m_item.Row
	if err := q.Order(m_item.ColName + " ASC").Order(m_item.ColItemID + " ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Item, 0, len(rows))
	for i := range rows {
		it, err := itemFromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func (r gormReader) CountItemsInCategory(ctx context.Context, categoryID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&m_item.Row{}).Where(m_item.ColCategoryID+" = ?", categoryID).Count(&n).Error
	return n, err
}

// gormTx implements contracts.CatalogTx on a *gorm.DB bound to one transaction.
type gormTx struct {
	gormReader
}

func (t *gormTx) InsertCategory(ctx context.Context, c *domain.Category) error {
	err := t.db.WithContext(ctx).Create(categoryToRow(c)).Error
	return translateGormError(err, domain.ErrStoreNotFound, nil)
}

func (t *gormTx) UpdateCategory(ctx context.Context, c *domain.Category) error {
	values := categoryUpdateValues(c)
	if values == nil {
		return nil
	}
	res := t.db.WithContext(ctx).Model(&m_category.Row{}).
		Where(m_category.ColCategoryID+" = ?", c.ID()).
		Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (t *gormTx) DeleteCategory(ctx context.Context, categoryID string) error {
	n, err := t.CountItemsInCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrNotEmpty
	}
	res := t.db.WithContext(ctx).Where(m_category.ColCategoryID+" = ?", categoryID).Delete(&m_category.Row{})
	if res.Error != nil {
		return translateGormError(res.Error, domain.ErrNotEmpty, nil)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (t *gormTx) InsertItem(ctx context.Context, it *domain.Item) error {
	if err := t.checkCategory(ctx, it.StoreID(), it.CategoryID()); err != nil {
		return err
	}
	err := t.db.WithContext(ctx).Create(itemToRow(it)).Error
	return translateGormError(err, domain.ErrReferentialViolation, nil)
}

func (t *gormTx) UpdateItem(ctx context.Context, it *domain.Item) error {
	values := itemUpdateValues(it)
	if values == nil {
		return nil
	}
	if it.Changes().Dirty(domain.FieldItemCategory) {
		if err := t.checkCategory(ctx, it.StoreID(), it.CategoryID()); err != nil {
			return err
		}
	}
	res := t.db.WithContext(ctx).Model(&m_item.Row{}).
		Where(m_item.ColItemID+" = ?", it.ID()).
		Updates(values)
	if res.Error != nil {
		return translateGormError(res.Error, domain.ErrReferentialViolation, nil)
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (t *gormTx) DeleteItem(ctx context.Context, itemID string) error {
	res := t.db.WithContext(ctx).Where(m_item.ColItemID+" = ?", itemID).Delete(&m_item.Row{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (t *gormTx) DeleteItemsByStore(ctx context.Context, storeID string) (int64, error) {
	res := t.db.WithContext(ctx).Where(m_item.ColStoreID+" = ?", storeID).Delete(&m_item.Row{})
	return res.RowsAffected, res.Error
}

func (t *gormTx) DeleteCategoriesByStore(ctx context.Context, storeID string) (int64, error) {
	res := t.db.WithContext(ctx).Where(m_category.ColStoreID+" = ?", storeID).Delete(&m_category.Row{})
	if res.Error != nil {
		return 0, translateGormError(res.Error, domain.ErrNotEmpty, nil)
	}
	return res.RowsAffected, nil
}

func (t *gormTx) AppendOutbox(ctx context.Context, e *contracts.OutboxEvent) error {
	return t.db.WithContext(ctx).Create(outboxToRow(e)).Error
}

func (t *gormTx) checkCategory(ctx context.Context, storeID, categoryID string) error {
	c, err := t.GetCategory(ctx, categoryID)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return domain.ErrReferentialViolation
	}
	if err != nil {
		return err
	}
	if !c.BelongsTo(storeID) {
		return domain.ErrReferentialViolation
	}
	return nil
}

var (
	_ contracts.CatalogStore = (*GormStore)(nil)
	_ contracts.CatalogTx    = (*gormTx)(nil)
	_ contracts.CatalogStore = (*SpannerStore)(nil)
	_ contracts.CatalogTx    = (*spannerTx)(nil)
)
