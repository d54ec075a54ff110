package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrItemNotFound is returned when no item with the given id exists
var ErrItemNotFound = errors.New("item not found")

// ErrStoreUnavailable is returned when the document store cannot be reached.
// Operations are never retried at this layer; retry policy belongs to callers.
var ErrStoreUnavailable = errors.New("store unavailable")

// ValidationError indicates rejected input. It is surfaced to clients as a
// client error and never reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Item is a catalog record. ID is assigned by the store on creation and is
// immutable, as is CreatedDate.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       float64
	CreatedDate time.Time
}

// ItemsStore abstracts item storage operations
type ItemsStore interface {
	// ListItems returns all stored items in store-defined order.
	ListItems(ctx context.Context) ([]Item, error)

	// GetItem retrieves a single item by id.
	// Returns ErrItemNotFound if the item doesn't exist.
	GetItem(ctx context.Context, id string) (*Item, error)

	// CreateItem assigns a new id, stamps the creation time and stores the
	// record. Returns the stored item.
	CreateItem(ctx context.Context, name, description string, price float64) (*Item, error)

	// UpdateItem replaces the mutable fields of the item matching id.
	// ID and CreatedDate are never altered.
	// Returns ErrItemNotFound if the item doesn't exist.
	UpdateItem(ctx context.Context, id, name, description string, price float64) error

	// DeleteItem removes the item matching id.
	// Returns ErrItemNotFound if the item doesn't exist.
	DeleteItem(ctx context.Context, id string) error
}

// ValidateItemInput checks the caller-supplied fields shared by create and
// update. It does not touch the store.
func ValidateItemInput(name string, price float64) error {
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}
