// Package memory provides an in-memory ItemsStore. It backs unit tests and
// local development where no document store is available.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"catalog-in-go/pkg/server/store"
)

// Ensure ItemsStore implements store.ItemsStore
var _ store.ItemsStore = (*ItemsStore)(nil)

// ItemsStore implements store.ItemsStore with a map from id to item. It is
// safe for concurrent use; like the document store, concurrent writes to the
// same id are last-writer-wins.
type ItemsStore struct {
	mu    sync.RWMutex
	items map[string]store.Item
}

// NewItemsStore creates an empty ItemsStore
func NewItemsStore() *ItemsStore {
	return &ItemsStore{items: make(map[string]store.Item)}
}

// ListItems returns all stored items. Iteration order is deliberately
// unstable; callers get no ordering guarantee.
func (s *ItemsStore) ListItems(ctx context.Context) ([]store.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]store.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return items, nil
}

// GetItem retrieves a single item by id.
func (s *ItemsStore) GetItem(ctx context.Context, id string) (*store.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	return &item, nil
}

// CreateItem assigns a new id, stamps the creation time and stores the record.
func (s *ItemsStore) CreateItem(ctx context.Context, name, description string, price float64) (*store.Item, error) {
	if err := store.ValidateItemInput(name, price); err != nil {
		return nil, err
	}

	item := store.Item{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		CreatedDate: time.Now(),
	}

	s.mu.Lock()
	s.items[item.ID] = item
	s.mu.Unlock()

	return &item, nil
}

// UpdateItem replaces the mutable fields of the item matching id.
func (s *ItemsStore) UpdateItem(ctx context.Context, id, name, description string, price float64) error {
	if err := store.ValidateItemInput(name, price); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return store.ErrItemNotFound
	}

	item.Name = name
	item.Description = description
	item.Price = price
	s.items[id] = item
	return nil
}

// DeleteItem removes the item matching id.
func (s *ItemsStore) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return store.ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}
