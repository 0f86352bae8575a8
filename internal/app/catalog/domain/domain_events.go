package domain

import "time"

// DomainEvent is a marker interface for all domain events.
// Domain events represent facts about things that have happened in the catalog.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// CategoryCreatedEvent is raised when a category is created.
type CategoryCreatedEvent struct {
	CategoryID string
	StoreID    string
	Name       string
	Order      int64
	CreatedAt  time.Time
}

func (e *CategoryCreatedEvent) EventType() string     { return "category.created" }
func (e *CategoryCreatedEvent) AggregateID() string   { return e.CategoryID }
func (e *CategoryCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// CategoryUpdatedEvent is raised when category fields change.
type CategoryUpdatedEvent struct {
	CategoryID string
	StoreID    string
	Changes    map[string]interface{}
	UpdatedAt  time.Time
}

func (e *CategoryUpdatedEvent) EventType() string     { return "category.updated" }
func (e *CategoryUpdatedEvent) AggregateID() string   { return e.CategoryID }
func (e *CategoryUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

// CategoryDeletedEvent is raised when an empty category is deleted.
type CategoryDeletedEvent struct {
	CategoryID string
	StoreID    string
	DeletedAt  time.Time
}

func (e *CategoryDeletedEvent) EventType() string     { return "category.deleted" }
func (e *CategoryDeletedEvent) AggregateID() string   { return e.CategoryID }
func (e *CategoryDeletedEvent) OccurredAt() time.Time { return e.DeletedAt }

// ItemCreatedEvent is raised when an item is created.
type ItemCreatedEvent struct {
	ItemID     string
	StoreID    string
	CategoryID string
	Name       string
	Price      Money
	CreatedAt  time.Time
}

func (e *ItemCreatedEvent) EventType() string     { return "item.created" }
func (e *ItemCreatedEvent) AggregateID() string   { return e.ItemID }
func (e *ItemCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// ItemUpdatedEvent is raised when item fields change.
type ItemUpdatedEvent struct {
	ItemID    string
	StoreID   string
	Changes   map[string]interface{}
	UpdatedAt time.Time
}

func (e *ItemUpdatedEvent) EventType() string     { return "item.updated" }
func (e *ItemUpdatedEvent) AggregateID() string   { return e.ItemID }
func (e *ItemUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

// ItemDeletedEvent is raised when an item is deleted individually.
type ItemDeletedEvent struct {
	ItemID    string
	StoreID   string
	DeletedAt time.Time
}

func (e *ItemDeletedEvent) EventType() string     { return "item.deleted" }
func (e *ItemDeletedEvent) AggregateID() string   { return e.ItemID }
func (e *ItemDeletedEvent) OccurredAt() time.Time { return e.DeletedAt }

// TemplateAppliedEvent is raised when a store's catalog is replaced by a template.
// The aggregate is the store.
type TemplateAppliedEvent struct {
	StoreID           string
	TemplateID        string
	CategoriesRemoved int64
	ItemsRemoved      int64
	CategoriesCreated int
	ItemsCreated      int
	AppliedAt         time.Time
}

func (e *TemplateAppliedEvent) EventType() string     { return "catalog.template_applied" }
func (e *TemplateAppliedEvent) AggregateID() string   { return e.StoreID }
func (e *TemplateAppliedEvent) OccurredAt() time.Time { return e.AppliedAt }
