package domain

import (
	"strings"
	"time"
)

// Field constants for item change tracking.
const (
	FieldItemName        = "item.name"
	FieldItemDescription = "item.description"
	FieldItemPrice       = "item.price"
	FieldItemActive      = "item.active"
	FieldItemArchived    = "item.archived"
	FieldItemCategory    = "item.category"
)

const (
	maxItemNameLength        = 255
	maxItemDescriptionLength = 2000
)

// Item is a sellable unit within a category.
// Invariant: storeID always equals the owning category's store.
type Item struct {
	id          string
	categoryID  string
	storeID     string
	name        string
	description string
	price       Money
	active      bool
	archived    bool
	createdAt   time.Time
	updatedAt   time.Time
	changes     *ChangeTracker
	events      []DomainEvent
}

// NewItem creates an item inside category. The category must belong to storeID,
// otherwise ErrReferentialViolation is returned.
func NewItem(id, storeID string, category *Category, name, description string, price Money, active, archived bool, now time.Time) (*Item, error) {
	if !category.BelongsTo(storeID) {
		return nil, ErrReferentialViolation
	}
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	if err := validateItemDescription(description); err != nil {
		return nil, err
	}

	it := &Item{
		id:          id,
		categoryID:  category.ID(),
		storeID:     storeID,
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		price:       price,
		active:      active,
		archived:    archived,
		createdAt:   now,
		updatedAt:   now,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	it.events = append(it.events, &ItemCreatedEvent{
		ItemID:     it.id,
		StoreID:    it.storeID,
		CategoryID: it.categoryID,
		Name:       it.name,
		Price:      it.price,
		CreatedAt:  now,
	})

	return it, nil
}

// ReconstructItem rebuilds an Item from persisted state.
func ReconstructItem(
	id, categoryID, storeID, name, description string,
	price Money,
	active, archived bool,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		categoryID:  categoryID,
		storeID:     storeID,
		name:        name,
		description: description,
		price:       price,
		active:      active,
		archived:    archived,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

// Getters

func (it *Item) ID() string {
	return it.id
}

func (it *Item) CategoryID() string {
	return it.categoryID
}

func (it *Item) StoreID() string {
	return it.storeID
}

func (it *Item) Name() string {
	return it.name
}

// Description returns the description, empty when none was given.
func (it *Item) Description() string {
	return it.description
}

func (it *Item) Price() Money {
	return it.price
}

func (it *Item) Active() bool {
	return it.active
}

func (it *Item) Archived() bool {
	return it.archived
}

func (it *Item) CreatedAt() time.Time {
	return it.createdAt
}

func (it *Item) UpdatedAt() time.Time {
	return it.updatedAt
}

func (it *Item) Changes() *ChangeTracker {
	return it.changes
}

func (it *Item) DomainEvents() []DomainEvent {
	return it.events
}

// ItemPatch carries the fields of a sparse item update. Nil means unchanged.
// Description set to an empty string clears it.
type ItemPatch struct {
	Name        *string
	Description *string
	Price       *Money
	Active      *bool
	Archived    *bool
}

// Update applies the supplied fields and leaves the rest untouched.
func (it *Item) Update(patch ItemPatch, now time.Time) error {
	changes := make(map[string]interface{})

	if patch.Name != nil {
		if err := validateItemName(*patch.Name); err != nil {
			return err
		}
		name := strings.TrimSpace(*patch.Name)
		if name != it.name {
			it.name = name
			it.changes.MarkDirty(FieldItemName)
			changes["name"] = name
		}
	}

	if patch.Description != nil {
		if err := validateItemDescription(*patch.Description); err != nil {
			return err
		}
		desc := strings.TrimSpace(*patch.Description)
		if desc != it.description {
			it.description = desc
			it.changes.MarkDirty(FieldItemDescription)
			changes["description"] = desc
		}
	}

	if patch.Price != nil && !patch.Price.Equals(it.price) {
		it.price = *patch.Price
		it.changes.MarkDirty(FieldItemPrice)
		changes["price_minor_units"] = it.price.MinorUnits()
	}

	if patch.Active != nil && *patch.Active != it.active {
		it.active = *patch.Active
		it.changes.MarkDirty(FieldItemActive)
		changes["active"] = it.active
	}

	if patch.Archived != nil && *patch.Archived != it.archived {
		it.archived = *patch.Archived
		it.changes.MarkDirty(FieldItemArchived)
		changes["archived"] = it.archived
	}

	it.recordUpdate(changes, now)
	return nil
}

// MoveTo rebinds the item to another category of the same store.
func (it *Item) MoveTo(category *Category, now time.Time) error {
	if !category.BelongsTo(it.storeID) {
		return ErrReferentialViolation
	}
	if category.ID() == it.categoryID {
		return nil
	}
	it.categoryID = category.ID()
	it.changes.MarkDirty(FieldItemCategory)
	it.recordUpdate(map[string]interface{}{"category_id": it.categoryID}, now)
	return nil
}

// ClearEvents drops the accumulated domain events.
func (it *Item) ClearEvents() {
	it.events = make([]DomainEvent, 0)
}

func (it *Item) recordUpdate(changes map[string]interface{}, now time.Time) {
	if len(changes) == 0 {
		return
	}
	it.updatedAt = now
	it.events = append(it.events, &ItemUpdatedEvent{
		ItemID:    it.id,
		StoreID:   it.storeID,
		Changes:   changes,
		UpdatedAt: now,
	})
}

func validateItemName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyItemName
	}
	if len(trimmed) > maxItemNameLength {
		return ErrItemNameTooLong
	}
	return nil
}

func validateItemDescription(description string) error {
	if len(strings.TrimSpace(description)) > maxItemDescriptionLength {
		return ErrItemDescriptionTooLong
	}
	return nil
}
