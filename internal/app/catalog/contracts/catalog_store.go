package contracts

import (
	"context"

	"github.com/murkotick/storefront-catalog-service/internal/app/catalog/domain"
)

// CatalogReader is the read side shared by the store and its transactions.
// Lookups by id that miss return ErrStoreNotFound, ErrCategoryNotFound or ErrItemNotFound.
type CatalogReader interface {
	// FindStoreOwnedBy returns the store only when principalID owns it.
	FindStoreOwnedBy(ctx context.Context, storeID, principalID string) (*domain.Store, error)
	GetCategory(ctx context.Context, categoryID string) (*domain.Category, error)
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)
	// ListCategories returns the store's categories by ascending order, ties broken by id.
	ListCategories(ctx context.Context, storeID string) ([]*domain.Category, error)
	// ListItems returns the store's items, optionally narrowed to one category.
	ListItems(ctx context.Context, storeID string, categoryID *string) ([]*domain.Item, error)
	CountItemsInCategory(ctx context.Context, categoryID string) (int64, error)
}

// CatalogTx is a transactional handle. Every call made through it belongs to
// the same transaction and becomes visible only when the transaction commits.
type CatalogTx interface {
	CatalogReader

	InsertCategory(ctx context.Context, c *domain.Category) error
	// UpdateCategory writes only the fields marked dirty on c.
	UpdateCategory(ctx context.Context, c *domain.Category) error
	// DeleteCategory returns ErrNotEmpty while items still reference the category.
	DeleteCategory(ctx context.Context, categoryID string) error

	// InsertItem returns ErrReferentialViolation when the category is missing
	// or owned by another store.
	InsertItem(ctx context.Context, it *domain.Item) error
	UpdateItem(ctx context.Context, it *domain.Item) error
	DeleteItem(ctx context.Context, itemID string) error

	DeleteItemsByStore(ctx context.Context, storeID string) (int64, error)
	DeleteCategoriesByStore(ctx context.Context, storeID string) (int64, error)

	AppendOutbox(ctx context.Context, e *OutboxEvent) error
}

// CatalogStore opens transactional boundaries over the catalog.
type CatalogStore interface {
	CatalogReader

	// RunInTx runs fn inside one dedicated transaction. The transaction commits
	// when fn returns nil and rolls back on error, panic or context cancellation.
	// fn may be invoked more than once if the backend retries aborted transactions.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx CatalogTx) error) error
}
