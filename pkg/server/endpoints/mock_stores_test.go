package endpoints

import (
	"context"

	"github.com/stretchr/testify/mock"

	"catalog-in-go/pkg/server/store"
)

// MockItemsStore implements store.ItemsStore for testing using testify/mock
type MockItemsStore struct {
	mock.Mock
}

func NewMockItemsStore() *MockItemsStore {
	return &MockItemsStore{}
}

func (m *MockItemsStore) ListItems(ctx context.Context) ([]store.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Item), args.Error(1)
}

func (m *MockItemsStore) GetItem(ctx context.Context, id string) (*store.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Item), args.Error(1)
}

func (m *MockItemsStore) CreateItem(ctx context.Context, name, description string, price float64) (*store.Item, error) {
	args := m.Called(ctx, name, description, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Item), args.Error(1)
}

func (m *MockItemsStore) UpdateItem(ctx context.Context, id, name, description string, price float64) error {
	args := m.Called(ctx, id, name, description, price)
	return args.Error(0)
}

func (m *MockItemsStore) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
