package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/grocermatch/backend/internal/domain"
)

const connectTimeout = 10 * time.Second

// Connect establishes a client connection to the product store and verifies
// it with a ping so an unreachable store fails at startup, not on the first
// request.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetConnectTimeout(connectTimeout))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataSourceUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: ping failed: %v", domain.ErrDataSourceUnavailable, err)
	}

	return client, nil
}

// Repository reads product snapshots from a MongoDB collection
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates a repository over the given database and collection
func NewRepository(client *mongo.Client, database, collection string) *Repository {
	return &Repository{
		collection: client.Database(database).Collection(collection),
	}
}

// FetchCatalog performs a full scan of the product collection and returns the
// records as domain products. Any store error surfaces as
// ErrDataSourceUnavailable; there are no partial results.
func (r *Repository) FetchCatalog(ctx context.Context) ([]domain.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataSourceUnavailable, err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	for cursor.Next(ctx) {
		var doc productDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decoding product: %v", domain.ErrDataSourceUnavailable, err)
		}
		products = append(products, doc.toDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDataSourceUnavailable, err)
	}

	return products, nil
}
