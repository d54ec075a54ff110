// Package store provides storage abstractions for the catalog server.
//
// This package defines interfaces for document-store operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - ItemsStore: Catalog item operations (list, get, create, update, delete)
//   - HealthStore: Store connectivity probe for the readiness endpoint
//
// # Usage
//
//	items := mongo.NewItemsStore(database)
//	item, err := items.GetItem(ctx, id)
//	if err != nil {
//	    if errors.Is(err, store.ErrItemNotFound) {
//	        // Handle not found
//	    }
//	}
package store
