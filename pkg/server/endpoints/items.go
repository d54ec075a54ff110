package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"catalog-in-go/pkg/server"
	"catalog-in-go/pkg/server/store"
)

// ItemRequest is the mutation payload for create and update
type ItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ItemResponse is the wire shape of a catalog item
type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedDate time.Time `json:"createdDate"`
}

func toItemResponse(item store.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CreatedDate: item.CreatedDate,
	}
}

// RegisterItemsEndpoints registers the catalog CRUD endpoints
func RegisterItemsEndpoints(s *server.Server) {
	router := s.Router
	itemsStore := s.ItemsStore

	// GET /items - List all items
	router.HandleFunc("/items", handleListItems(itemsStore)).Methods("GET")

	// GET /items/{id} - Fetch a single item
	router.HandleFunc("/items/{id}", handleGetItem(itemsStore)).Methods("GET")

	// POST /items - Create an item
	router.HandleFunc("/items", handleCreateItem(itemsStore)).Methods("POST")

	// PUT /items/{id} - Update an item
	router.HandleFunc("/items/{id}", handleUpdateItem(itemsStore)).Methods("PUT")

	// DELETE /items/{id} - Delete an item
	router.HandleFunc("/items/{id}", handleDeleteItem(itemsStore)).Methods("DELETE")
}

func handleListItems(itemsStore store.ItemsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := itemsStore.ListItems(r.Context())
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		response := make([]ItemResponse, 0, len(items))
		for _, item := range items {
			response = append(response, toItemResponse(item))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleGetItem(itemsStore store.ItemsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		item, err := itemsStore.GetItem(r.Context(), id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, toItemResponse(*item))
	}
}

func handleCreateItem(itemsStore store.ItemsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request ItemRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		item, err := itemsStore.CreateItem(r.Context(), request.Name, request.Description, request.Price)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.Header().Set("Location", "/items/"+item.ID)
		respondWithJSON(w, http.StatusCreated, toItemResponse(*item))
	}
}

func handleUpdateItem(itemsStore store.ItemsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var request ItemRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondWithError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		err := itemsStore.UpdateItem(r.Context(), id, request.Name, request.Description, request.Price)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleDeleteItem(itemsStore store.ItemsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if err := itemsStore.DeleteItem(r.Context(), id); err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
