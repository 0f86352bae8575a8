package domain

import (
	"strings"
	"time"
)

// Field constants for category change tracking.
const (
	FieldCategoryName   = "category.name"
	FieldCategoryOrder  = "category.order"
	FieldCategoryActive = "category.active"
)

const maxCategoryNameLength = 100

// Category is a named grouping within a store's catalog.
// Categories are presented by ascending order, ties broken by ID.
type Category struct {
	id        string
	storeID   string
	name      string
	order     int64
	active    bool
	createdAt time.Time
	updatedAt time.Time
	changes   *ChangeTracker
	events    []DomainEvent
}

// NewCategory creates an active category owned by storeID.
func NewCategory(id, storeID, name string, order int64, now time.Time) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if order < 0 {
		return nil, ErrNegativeOrder
	}

	c := &Category{
		id:        id,
		storeID:   storeID,
		name:      strings.TrimSpace(name),
		order:     order,
		active:    true,
		createdAt: now,
		updatedAt: now,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}

	c.events = append(c.events, &CategoryCreatedEvent{
		CategoryID: c.id,
		StoreID:    c.storeID,
		Name:       c.name,
		Order:      c.order,
		CreatedAt:  now,
	})

	return c, nil
}

// ReconstructCategory rebuilds a Category from persisted state.
func ReconstructCategory(id, storeID, name string, order int64, active bool, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:        id,
		storeID:   storeID,
		name:      name,
		order:     order,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}
}

func (c *Category) ID() string {
	return c.id
}

func (c *Category) StoreID() string {
	return c.storeID
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Order() int64 {
	return c.order
}

func (c *Category) Active() bool {
	return c.active
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Category) Changes() *ChangeTracker {
	return c.changes
}

func (c *Category) DomainEvents() []DomainEvent {
	return c.events
}

// BelongsTo reports whether the category is owned by storeID.
func (c *Category) BelongsTo(storeID string) bool {
	return c != nil && c.storeID == storeID
}

// CategoryPatch carries the fields of a sparse category update. Nil means unchanged.
type CategoryPatch struct {
	Name   *string
	Order  *int64
	Active *bool
}

// Update applies the supplied fields and leaves the rest untouched.
func (c *Category) Update(patch CategoryPatch, now time.Time) error {
	changes := make(map[string]interface{})

	if patch.Name != nil {
		if err := validateCategoryName(*patch.Name); err != nil {
			return err
		}
		name := strings.TrimSpace(*patch.Name)
		if name != c.name {
			c.name = name
			c.changes.MarkDirty(FieldCategoryName)
			changes["name"] = name
		}
	}

	if patch.Order != nil {
		if *patch.Order < 0 {
			return ErrNegativeOrder
		}
		if *patch.Order != c.order {
			c.order = *patch.Order
			c.changes.MarkDirty(FieldCategoryOrder)
			changes["order"] = c.order
		}
	}

	if patch.Active != nil && *patch.Active != c.active {
		c.active = *patch.Active
		c.changes.MarkDirty(FieldCategoryActive)
		changes["active"] = c.active
	}

	if len(changes) > 0 {
		c.updatedAt = now
		c.events = append(c.events, &CategoryUpdatedEvent{
			CategoryID: c.id,
			StoreID:    c.storeID,
			Changes:    changes,
			UpdatedAt:  now,
		})
	}

	return nil
}

// ClearEvents drops the accumulated domain events.
func (c *Category) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}

func validateCategoryName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyCategoryName
	}
	if len(trimmed) > maxCategoryNameLength {
		return ErrCategoryNameTooLong
	}
	return nil
}
