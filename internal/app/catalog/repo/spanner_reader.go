package repo

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_category"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_item"
	"github.com/murkotick/storefront-catalog-service/internal/models/m_store"
)

// querier is satisfied by both *spanner.ReadOnlyTransaction and
// *spanner.ReadWriteTransaction.
type querier interface {
	Query(ctx context.Context, stmt spanner.Statement) *spanner.RowIterator
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
}

// spannerReader implements contracts.CatalogReader. q returns the transaction to
// read from: a single-use snapshot outside a boundary, the read-write
// transaction inside one.
type spannerReader struct {
	q func() querier
}

func (r spannerReader) FindStoreOwnedBy(ctx context.Context, storeID, principalID string) (*domain.Store, error) {
	row, err := r.q().ReadRow(ctx, m_store.TableName, spanner.Key{storeID}, m_store.Columns)
	if err != nil {
		if isSpannerNotFound(err) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	var s domain.Store
	if err := row.Columns(&s.ID, &s.OwnerID, &s.Name, &s.Slug); err != nil {
		return nil, err
	}
	if !s.OwnedBy(principalID) {
		return nil, domain.ErrStoreNotFound
	}
	return &s, nil
}

func (r spannerReader) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	row, err := r.q().ReadRow(ctx, m_category.TableName, spanner.Key{categoryID}, m_category.Columns)
	if err != nil {
		if isSpannerNotFound(err) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return scanCategory(row)
}

func (r spannerReader) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	row, err := r.q().ReadRow(ctx, m_item.TableName, spanner.Key{itemID}, m_item.Columns)
	if err != nil {
		if isSpannerNotFound(err) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return scanItem(row)
}

func (r spannerReader) ListCategories(ctx context.Context, storeID string) ([]*domain.Category, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`SELECT %s FROM %s WHERE %s = @store_id ORDER BY %s ASC, %s ASC`,
			strings.Join(m_category.Columns, ", "), m_category.TableName,
			m_category.ColStoreID, m_category.ColDisplayOrder, m_category.ColCategoryID),
		Params: map[string]interface{}{"store_id": storeID},
	}
	iter := r.q().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*domain.Category, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		c, err := scanCategory(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
}

func (r spannerReader) ListItems(ctx context.Context, storeID string, categoryID *string) ([]*domain.Item, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = @store_id`,
		strings.Join(m_item.Columns, ", "), m_item.TableName, m_item.ColStoreID)
	params := map[string]interface{}{"store_id": storeID}
	if categoryID != nil {
		sql += fmt.Sprintf(" AND %s = @category_id", m_item.ColCategoryID)
		params["category_id"] = *categoryID
	}
	sql += fmt.Sprintf(" ORDER BY %s ASC, %s ASC", m_item.ColName, m_item.ColItemID)

	iter := r.q().Query(ctx, spanner.Statement{SQL: sql, Params: params})
	defer iter.Stop()

	out := make([]*domain.Item, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		it, err := scanItem(row)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
}

func (r spannerReader) CountItemsInCategory(ctx context.Context, categoryID string) (int64, error) {
	stmt := spanner.Statement{
		SQL:    fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = @category_id`, m_item.TableName, m_item.ColCategoryID),
		Params: map[string]interface{}{"category_id": categoryID},
	}
	iter := r.q().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := row.Columns(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanCategory(row *spanner.Row) (*domain.Category, error) {
	var r m_category.Row
	if err := row.Columns(&r.CategoryID, &r.StoreID, &r.Name, &r.DisplayOrder, &r.Active, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return categoryFromRow(&r), nil
}

func scanItem(row *spanner.Row) (*domain.Item, error) {
	var (
		r           m_item.Row
		description spanner.NullString
	)
	if err := row.Columns(&r.ItemID, &r.CategoryID, &r.StoreID, &r.Name, &description,
		&r.PriceMinorUnits, &r.Active, &r.Archived, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		d := description.StringVal
		r.Description = &d
	}
	return itemFromRow(&r)
}
