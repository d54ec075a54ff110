package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// serverSelectionTimeout bounds how long a single store operation waits for
// a reachable server before failing. Kept below the readiness check budget
// so an unreachable store surfaces as an error, not a hang.
const serverSelectionTimeout = 3 * time.Second

// Config holds document store connection configuration
type Config struct {
	// URI is the store connection string (defaults to CATALOG_STORE_URI env var)
	URI string
}

// Connect establishes the shared document store client.
// If no URI is provided, it reads from the CATALOG_STORE_URI environment
// variable. Connect does not verify reachability; the readiness check owns
// that concern.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	uri := cfg.URI
	if uri == "" {
		uri = os.Getenv("CATALOG_STORE_URI")
	}
	if uri == "" {
		return nil, fmt.Errorf("store connection URI is required")
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	return client, nil
}
