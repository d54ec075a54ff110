package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"catalog-in-go/pkg/server/store"
)

// CollectionName is the document collection holding catalog items.
const CollectionName = "items"

// Ensure ItemsStore implements store.ItemsStore
var _ store.ItemsStore = (*ItemsStore)(nil)

// itemDocument is the stored shape of an item. CreatedDate is kept as an
// RFC 3339 string with offset rather than a BSON datetime, which is naive
// with respect to the original zone.
type itemDocument struct {
	ID          string  `bson:"_id"`
	Name        string  `bson:"name"`
	Description string  `bson:"description"`
	Price       float64 `bson:"price"`
	CreatedDate string  `bson:"created_date"`
}

func (d itemDocument) toItem() (store.Item, error) {
	created, err := time.Parse(time.RFC3339Nano, d.CreatedDate)
	if err != nil {
		return store.Item{}, fmt.Errorf("malformed created_date on item %q: %w", d.ID, err)
	}
	return store.Item{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		CreatedDate: created,
	}, nil
}

// ItemsStore implements store.ItemsStore using the MongoDB driver
type ItemsStore struct {
	items *mongo.Collection
}

// NewItemsStore creates a new ItemsStore on the shared database handle
func NewItemsStore(db *mongo.Database) *ItemsStore {
	return &ItemsStore{items: db.Collection(CollectionName)}
}

// ListItems returns all stored items in store-defined order.
func (s *ItemsStore) ListItems(ctx context.Context) ([]store.Item, error) {
	cursor, err := s.items.Find(ctx, bson.D{})
	if err != nil {
		return nil, unavailable(err)
	}

	var docs []itemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, unavailable(err)
	}

	items := make([]store.Item, 0, len(docs))
	for _, doc := range docs {
		item, err := doc.toItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// GetItem retrieves a single item by id.
func (s *ItemsStore) GetItem(ctx context.Context, id string) (*store.Item, error) {
	var doc itemDocument
	err := s.items.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrItemNotFound
		}
		return nil, unavailable(err)
	}

	item, err := doc.toItem()
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem assigns a new id, stamps the creation time and stores the record.
func (s *ItemsStore) CreateItem(ctx context.Context, name, description string, price float64) (*store.Item, error) {
	if err := store.ValidateItemInput(name, price); err != nil {
		return nil, err
	}

	doc := itemDocument{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		CreatedDate: time.Now().Format(time.RFC3339Nano),
	}

	if _, err := s.items.InsertOne(ctx, doc); err != nil {
		return nil, unavailable(err)
	}

	item, err := doc.toItem()
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem replaces the mutable fields of the item matching id. The _id and
// created_date fields are never part of the update document.
func (s *ItemsStore) UpdateItem(ctx context.Context, id, name, description string, price float64) error {
	if err := store.ValidateItemInput(name, price); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":        name,
		"description": description,
		"price":       price,
	}}

	result, err := s.items.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return unavailable(err)
	}
	if result.MatchedCount == 0 {
		return store.ErrItemNotFound
	}
	return nil
}

// DeleteItem removes the item matching id.
func (s *ItemsStore) DeleteItem(ctx context.Context, id string) error {
	result, err := s.items.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return unavailable(err)
	}
	if result.DeletedCount == 0 {
		return store.ErrItemNotFound
	}
	return nil
}

// unavailable translates driver failures (server selection, network,
// timeout) into the store error taxonomy.
func unavailable(err error) error {
	return fmt.Errorf("%w: %v", store.ErrStoreUnavailable, err)
}
