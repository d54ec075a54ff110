package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthStore provides health check operations using the MongoDB driver
type HealthStore struct {
	client *mongo.Client
}

// NewHealthStore creates a new HealthStore
func NewHealthStore(client *mongo.Client) *HealthStore {
	return &HealthStore{client: client}
}

// CheckConnectivity verifies document store connectivity
func (s *HealthStore) CheckConnectivity(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}
