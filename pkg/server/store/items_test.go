package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The contract types are what every backend, handler and test builds
// against; this suite pins them down independently of any backend.

func TestValidateItemInput(t *testing.T) {
	t.Run("accepts valid input", func(t *testing.T) {
		assert.NoError(t, ValidateItemInput("Potion", 5))
	})

	t.Run("accepts zero price", func(t *testing.T) {
		assert.NoError(t, ValidateItemInput("Pebble", 0))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := ValidateItemInput("", 1)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name", validationErr.Field)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		err := ValidateItemInput("x", -1)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "price", validationErr.Field)
	})
}

func TestValidationError(t *testing.T) {
	t.Run("message names the rejected field", func(t *testing.T) {
		err := &ValidationError{Field: "price", Reason: "must not be negative"}
		assert.Equal(t, "invalid price: must not be negative", err.Error())
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := errors.Join(errors.New("create failed"), &ValidationError{Field: "name", Reason: "must not be empty"})

		var validationErr *ValidationError
		assert.True(t, errors.As(wrapped, &validationErr))
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.False(t, errors.Is(ErrItemNotFound, ErrStoreUnavailable))
	assert.False(t, errors.Is(ErrStoreUnavailable, ErrItemNotFound))
}

// Compile-time shape check: a conforming backend satisfies the interface.
type noopStore struct{}

func (noopStore) ListItems(ctx context.Context) ([]Item, error)     { return nil, nil }
func (noopStore) GetItem(ctx context.Context, id string) (*Item, error) { return nil, ErrItemNotFound }
func (noopStore) CreateItem(ctx context.Context, name, description string, price float64) (*Item, error) {
	return nil, nil
}
func (noopStore) UpdateItem(ctx context.Context, id, name, description string, price float64) error {
	return nil
}
func (noopStore) DeleteItem(ctx context.Context, id string) error { return nil }

var _ ItemsStore = noopStore{}
