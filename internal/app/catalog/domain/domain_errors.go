package domain

import "errors"

// Provisioning errors. Every failure of a template application is one of these.
var (
	// ErrUnauthorized indicates the requesting principal does not own the target store.
	ErrUnauthorized = errors.New("principal does not own the store")

	// ErrTemplateNotFound indicates an unknown template identifier.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateIntegrity indicates the template data itself is malformed,
	// e.g. an item referencing a category name absent from the template.
	ErrTemplateIntegrity = errors.New("template integrity violation")

	// ErrProvisioningFailed wraps a storage failure inside the transactional boundary.
	// The store's catalog is unchanged when this is returned.
	ErrProvisioningFailed = errors.New("provisioning failed")
)

// Catalog mutation errors.
var (
	// ErrReferentialViolation indicates an item references a category that does not
	// exist in the same store.
	ErrReferentialViolation = errors.New("category does not exist in store")

	// ErrNotEmpty indicates a category still owns items and cannot be deleted.
	ErrNotEmpty = errors.New("category still has items")

	// ErrStoreNotFound indicates no store matched the lookup.
	ErrStoreNotFound = errors.New("store not found")

	// ErrCategoryNotFound indicates a category with the given ID does not exist in the store.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrItemNotFound indicates an item with the given ID does not exist in the store.
	ErrItemNotFound = errors.New("item not found")
)

// Validation errors for Category and Item.
var (
	// ErrEmptyCategoryName indicates an attempt to create/rename a category with an empty name.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrCategoryNameTooLong indicates the category name exceeds maximum length.
	ErrCategoryNameTooLong = errors.New("category name exceeds maximum length of 100 characters")

	// ErrNegativeOrder indicates a negative display order.
	ErrNegativeOrder = errors.New("category order cannot be negative")

	// ErrEmptyItemName indicates an attempt to create/rename an item with an empty name.
	ErrEmptyItemName = errors.New("item name cannot be empty")

	// ErrItemNameTooLong indicates the item name exceeds maximum length.
	ErrItemNameTooLong = errors.New("item name exceeds maximum length of 255 characters")

	// ErrItemDescriptionTooLong indicates the item description exceeds maximum length.
	ErrItemDescriptionTooLong = errors.New("item description exceeds maximum length of 2000 characters")
)

// Money errors.
var (
	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidPrice indicates a price that cannot be parsed or does not fit in minor units.
	ErrInvalidPrice = errors.New("invalid price")
)
