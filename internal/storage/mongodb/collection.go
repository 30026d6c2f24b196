package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/LucasSMartins/SmartKitchen/internal/errs"
)

// Collection exposes generic document operations against one named
// collection.
type Collection struct {
	coll *mongo.Collection
}

func NewCollection(db *mongo.Database, name string) *Collection {
	return &Collection{coll: db.Collection(name)}
}

// Find returns every document matching filter. An empty result is not an
// error.
func (c *Collection) Find(ctx context.Context, filter, projection bson.M) ([]bson.M, error) {
	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}
	cur, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr(err)
	}
	return docs, nil
}

// FindOne returns the first matching document, or (nil, nil) when nothing
// matches.
func (c *Collection) FindOne(ctx context.Context, filter, projection bson.M) (bson.M, error) {
	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}
	var doc bson.M
	err := c.coll.FindOne(ctx, filter, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return doc, nil
}

// InsertOne inserts doc and returns the generated id.
func (c *Collection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, storeErr(err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateOne applies update to the first document matching filter. Each
// arrayFilters entry binds a positional placeholder to a per-element
// predicate, restricting which nested array elements the update touches.
func (c *Collection) UpdateOne(ctx context.Context, filter, update bson.M, arrayFilters ...bson.M) (*mongo.UpdateResult, error) {
	opts := options.Update()
	if len(arrayFilters) > 0 {
		af := make([]interface{}, len(arrayFilters))
		for i, f := range arrayFilters {
			af[i] = f
		}
		opts.SetArrayFilters(options.ArrayFilters{Filters: af})
	}
	res, err := c.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	return res, nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, storeErr(err)
	}
	return res.DeletedCount, nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", errs.ErrStoreUnavailable, err)
}
