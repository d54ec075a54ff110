package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"catalog-in-go/pkg/server/store"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithStoreError maps the store error taxonomy onto HTTP statuses:
// validation failures are client errors, missing items are 404 and an
// unreachable store is a server error left for the orchestrator to act on.
func respondWithStoreError(w http.ResponseWriter, err error) {
	var validationErr *store.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, store.ErrItemNotFound):
		respondWithError(w, http.StatusNotFound, "item not found")
	default:
		respondWithError(w, http.StatusServiceUnavailable, "store unavailable")
	}
}
