// Package repository implements persistence over the document store: the
// nested inventory repository (pantry and shopping cart) and the user
// repository.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the document-store surface the repositories consume, satisfied
// by storage/mongodb.Collection. One Store is scoped to one collection.
type Store interface {
	Find(ctx context.Context, filter, projection bson.M) ([]bson.M, error)
	FindOne(ctx context.Context, filter, projection bson.M) (bson.M, error)
	InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error)
	UpdateOne(ctx context.Context, filter, update bson.M, arrayFilters ...bson.M) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
}

// decode round-trips a raw document into a typed struct.
func decode(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
