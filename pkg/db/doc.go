// Package db provides the document store connection for the catalog server.
//
// This package builds the single shared MongoDB client handle from the
// immutable connection settings. It is constructed once at process start and
// torn down at shutdown; no other component constructs a second handle. The
// client is safe for concurrent use by many in-flight operations.
//
// # Connection
//
//	client, err := db.Connect(ctx, db.Config{URI: cfg.ConnectionURI()})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer func() { _ = client.Disconnect(ctx) }()
//
// # Environment Variables
//
//   - CATALOG_STORE_URI: full connection string override (optional)
package db
