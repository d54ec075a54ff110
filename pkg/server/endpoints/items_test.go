package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-in-go/pkg/server/store"
)

var testItem = store.Item{
	ID:          "0f8fad5b-d9cb-469f-a165-70867728950e",
	Name:        "Potion",
	Description: "Restores a small amount of HP",
	Price:       5,
	CreatedDate: time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("", 2*3600)),
}

func TestHandleListItems(t *testing.T) {
	t.Run("returns all items", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("ListItems", mock.Anything).Return([]store.Item{testItem}, nil)

		req := httptest.NewRequest("GET", "/items", nil)
		w := httptest.NewRecorder()
		handleListItems(itemsStore)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, testItem.ID, response[0].ID)
		assert.Equal(t, testItem.Name, response[0].Name)
		itemsStore.AssertExpectations(t)
	})

	t.Run("returns empty JSON array when store is empty", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("ListItems", mock.Anything).Return([]store.Item{}, nil)

		req := httptest.NewRequest("GET", "/items", nil)
		w := httptest.NewRecorder()
		handleListItems(itemsStore)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("returns 503 when the store is unreachable", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("ListItems", mock.Anything).Return(nil, store.ErrStoreUnavailable)

		req := httptest.NewRequest("GET", "/items", nil)
		w := httptest.NewRecorder()
		handleListItems(itemsStore)(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestHandleGetItem(t *testing.T) {
	t.Run("returns the item", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("GetItem", mock.Anything, testItem.ID).Return(&testItem, nil)

		req := httptest.NewRequest("GET", "/items/"+testItem.ID, nil)
		req = mux.SetURLVars(req, map[string]string{"id": testItem.ID})
		w := httptest.NewRecorder()
		handleGetItem(itemsStore)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, testItem.Price, response.Price)
		assert.True(t, testItem.CreatedDate.Equal(response.CreatedDate))
	})

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("GetItem", mock.Anything, "missing").Return(nil, store.ErrItemNotFound)

		req := httptest.NewRequest("GET", "/items/missing", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})
		w := httptest.NewRecorder()
		handleGetItem(itemsStore)(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleCreateItem(t *testing.T) {
	t.Run("creates and returns the item with Location header", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("CreateItem", mock.Anything, "Potion", "Restores a small amount of HP", 5.0).
			Return(&testItem, nil)

		body := `{"name":"Potion","description":"Restores a small amount of HP","price":5}`
		req := httptest.NewRequest("POST", "/items", strings.NewReader(body))
		w := httptest.NewRecorder()
		handleCreateItem(itemsStore)(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/items/"+testItem.ID, w.Header().Get("Location"))

		var response ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, testItem.ID, response.ID)
	})

	t.Run("returns 400 on validation failure", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("CreateItem", mock.Anything, "", "x", 1.0).
			Return(nil, &store.ValidationError{Field: "name", Reason: "must not be empty"})

		req := httptest.NewRequest("POST", "/items", strings.NewReader(`{"name":"","description":"x","price":1}`))
		w := httptest.NewRecorder()
		handleCreateItem(itemsStore)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "name")
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		itemsStore := NewMockItemsStore()

		req := httptest.NewRequest("POST", "/items", strings.NewReader("{not json"))
		w := httptest.NewRecorder()
		handleCreateItem(itemsStore)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		itemsStore.AssertNotCalled(t, "CreateItem")
	})
}

func TestHandleUpdateItem(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("UpdateItem", mock.Anything, testItem.ID, "Hi-Potion", "large", 25.0).Return(nil)

		body := `{"name":"Hi-Potion","description":"large","price":25}`
		req := httptest.NewRequest("PUT", "/items/"+testItem.ID, strings.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": testItem.ID})
		w := httptest.NewRecorder()
		handleUpdateItem(itemsStore)(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		itemsStore.AssertExpectations(t)
	})

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("UpdateItem", mock.Anything, "missing", "x", "", 1.0).Return(store.ErrItemNotFound)

		req := httptest.NewRequest("PUT", "/items/missing", strings.NewReader(`{"name":"x","price":1}`))
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})
		w := httptest.NewRecorder()
		handleUpdateItem(itemsStore)(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 on validation failure", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("UpdateItem", mock.Anything, testItem.ID, "x", "y", -1.0).
			Return(&store.ValidationError{Field: "price", Reason: "must not be negative"})

		req := httptest.NewRequest("PUT", "/items/"+testItem.ID, strings.NewReader(`{"name":"x","description":"y","price":-1}`))
		req = mux.SetURLVars(req, map[string]string{"id": testItem.ID})
		w := httptest.NewRecorder()
		handleUpdateItem(itemsStore)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleDeleteItem(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("DeleteItem", mock.Anything, testItem.ID).Return(nil)

		req := httptest.NewRequest("DELETE", "/items/"+testItem.ID, nil)
		req = mux.SetURLVars(req, map[string]string{"id": testItem.ID})
		w := httptest.NewRecorder()
		handleDeleteItem(itemsStore)(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("DeleteItem", mock.Anything, "missing").Return(store.ErrItemNotFound)

		req := httptest.NewRequest("DELETE", "/items/missing", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "missing"})
		w := httptest.NewRecorder()
		handleDeleteItem(itemsStore)(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 503 when the store is unreachable", func(t *testing.T) {
		itemsStore := NewMockItemsStore()
		itemsStore.On("DeleteItem", mock.Anything, testItem.ID).Return(store.ErrStoreUnavailable)

		req := httptest.NewRequest("DELETE", "/items/"+testItem.ID, nil)
		req = mux.SetURLVars(req, map[string]string{"id": testItem.ID})
		w := httptest.NewRecorder()
		handleDeleteItem(itemsStore)(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
