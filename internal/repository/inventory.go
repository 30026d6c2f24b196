package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LucasSMartins/SmartKitchen/internal/errs"
	"github.com/LucasSMartins/SmartKitchen/internal/model"
)

// Kind identifies one of the two inventory documents a user owns. The
// pantry and the shopping cart share the same nested shape; only the
// collection, the categories field and the seeded categories differ.
type Kind struct {
	Collection string                  // store collection name
	ArrayField string                  // categories array field inside the document
	Seed       func() []model.Category // categories for a fresh document
}

var (
	PantryKind = Kind{
		Collection: "pantry",
		ArrayField: "pantry",
		Seed:       model.SeedPantryCategories,
	}
	CartKind = Kind{
		Collection: "shopping_cart",
		ArrayField: "shoppingCart",
		Seed:       model.SeedCartCategories,
	}
)

// ItemInput carries already-validated item fields into the repository.
// Price is optional and only meaningful for shopping-cart items.
type ItemInput struct {
	ItemName string
	Quantity int
	Unit     model.Unit
	Price    *decimal.Decimal
}

func (in ItemInput) item(id primitive.ObjectID) model.Item {
	it := model.Item{
		ItemID:   id,
		ItemName: in.ItemName,
		Quantity: in.Quantity,
		Unit:     in.Unit,
	}
	if in.Price != nil {
		it.Price = FormatPrice(*in.Price)
	}
	return it
}

// AddResult reports a successful insert together with the store's match
// counts, so callers can tell "inserted" (ModifiedCount 1) from "identical
// content already present" (ModifiedCount 0, still success).
type AddResult struct {
	Item          model.Item
	MatchedCount  int64
	ModifiedCount int64
}

type RemoveResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

type ReplaceResult struct {
	Item          model.Item
	MatchedCount  int64
	ModifiedCount int64
}

// Inventory manages the category-scoped item arrays inside one kind of
// inventory document. It holds no state of its own; every operation is a
// single store call (ReplaceItem is two, see its doc comment).
type Inventory struct {
	store Store
	kind  Kind
}

func NewInventory(store Store, kind Kind) *Inventory {
	return &Inventory{store: store, kind: kind}
}

// Provision inserts the user's inventory document with every taxonomy
// category present and empty. Called once per user at registration; item
// operations never add or remove categories afterwards.
func (r *Inventory) Provision(ctx context.Context, userID primitive.ObjectID, username string) error {
	doc := bson.M{
		"user_id": userID,
		"username": username,
		r.kind.ArrayField: r.kind.Seed(),
	}
	_, err := r.store.InsertOne(ctx, doc)
	return err
}

// AddItem inserts an item into the named category's items array. The
// insert is a set-add: re-submitting identical fields under the same item
// id is a no-op that still succeeds. A fresh item id is generated on every
// call, so a second call with the same fields does produce a second entry.
func (r *Inventory) AddItem(ctx context.Context, userID, categoryName string, in ItemInput) (AddResult, error) {
	uid, err := ParseID(userID)
	if err != nil {
		return AddResult{}, err
	}
	return r.pushItem(ctx, uid, categoryName, in.item(primitive.NewObjectID()))
}

func (r *Inventory) pushItem(ctx context.Context, userID primitive.ObjectID, categoryName string, item model.Item) (AddResult, error) {
	filter := bson.M{
		"user_id": userID,
		r.kind.ArrayField + ".category_name": categoryName,
	}
	update := bson.M{"$addToSet": bson.M{r.kind.ArrayField + ".$.items": item}}

	res, err := r.store.UpdateOne(ctx, filter, update)
	if err != nil {
		return AddResult{}, err
	}
	if res.MatchedCount == 0 {
		// User absent or category absent; the match count cannot say which.
		return AddResult{}, errs.ErrCategoryNotFound
	}
	return AddResult{Item: item, MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// RemoveItem deletes the item from the named category's items array. The
// pull is scoped with an array filter keyed to the category name, so a
// sibling category holding the same item id is never touched.
func (r *Inventory) RemoveItem(ctx context.Context, userID, categoryName, itemID string) (RemoveResult, error) {
	uid, err := ParseID(userID)
	if err != nil {
		return RemoveResult{}, err
	}
	iid, err := ParseID(itemID)
	if err != nil {
		return RemoveResult{}, err
	}
	return r.pullItem(ctx, uid, categoryName, iid)
}

func (r *Inventory) pullItem(ctx context.Context, userID primitive.ObjectID, categoryName string, itemID primitive.ObjectID) (RemoveResult, error) {
	filter := bson.M{
		"user_id": userID,
		r.kind.ArrayField + ".category_name": categoryName,
		r.kind.ArrayField + ".items.item_id": itemID,
	}
	update := bson.M{
		"$pull": bson.M{r.kind.ArrayField + ".$[category].items": bson.M{"item_id": itemID}},
	}
	arrayFilter := bson.M{"category.category_name": categoryName}

	res, err := r.store.UpdateOne(ctx, filter, update, arrayFilter)
	if err != nil {
		return RemoveResult{}, err
	}
	if res.ModifiedCount == 0 {
		// Item absent, or the whole category/user absent; indistinguishable.
		return RemoveResult{MatchedCount: res.MatchedCount}, errs.ErrItemNotFound
	}
	return RemoveResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// ReplaceItem swaps the item's fields while preserving its id. Composed as
// two independently committed store calls, pull then set-add, because the
// store has no single verb that removes and re-inserts in one round trip.
// The composition is NOT atomic: a concurrent writer on the same category
// can interleave between the two calls, and a caller timing out after the
// pull leaves the item removed without being re-added. Callers needing a
// true atomic replace must use a single conditional update instead.
func (r *Inventory) ReplaceItem(ctx context.Context, userID, categoryName, itemID string, in ItemInput) (ReplaceResult, error) {
	uid, err := ParseID(userID)
	if err != nil {
		return ReplaceResult{}, err
	}
	iid, err := ParseID(itemID)
	if err != nil {
		return ReplaceResult{}, err
	}

	if _, err := r.pullItem(ctx, uid, categoryName, iid); err != nil {
		if errors.Is(err, errs.ErrItemNotFound) {
			// Old item was never found; nothing was written.
			return ReplaceResult{}, errs.ErrNotModified
		}
		return ReplaceResult{}, err
	}

	added, err := r.pushItem(ctx, uid, categoryName, in.item(iid))
	if err != nil {
		if errors.Is(err, errs.ErrCategoryNotFound) {
			// Category vanished between the two calls; the old item is
			// already gone.
			return ReplaceResult{}, errs.ErrNotModified
		}
		return ReplaceResult{}, err
	}
	if added.ModifiedCount == 0 {
		return ReplaceResult{}, errs.ErrNotModified
	}
	return ReplaceResult{Item: added.Item, MatchedCount: added.MatchedCount, ModifiedCount: added.ModifiedCount}, nil
}

// Get returns the user's inventory document with the store's own id
// projected out.
func (r *Inventory) Get(ctx context.Context, userID string) (bson.M, error) {
	uid, err := ParseID(userID)
	if err != nil {
		return nil, err
	}
	doc, err := r.store.FindOne(ctx, bson.M{"user_id": uid}, bson.M{"_id": 0})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errs.ErrUserNotFound
	}
	return doc, nil
}

// All returns every inventory document of this kind.
func (r *Inventory) All(ctx context.Context) ([]bson.M, error) {
	return r.store.Find(ctx, bson.M{}, bson.M{"_id": 0})
}

// CategoryItems returns just the named category of the user's document,
// using a positional projection on the matched array element.
func (r *Inventory) CategoryItems(ctx context.Context, userID, categoryName string) (bson.M, error) {
	uid, err := ParseID(userID)
	if err != nil {
		return nil, err
	}

	exists, err := r.store.FindOne(ctx, bson.M{"user_id": uid}, bson.M{"_id": 1})
	if err != nil {
		return nil, err
	}
	if exists == nil {
		return nil, errs.ErrUserNotFound
	}

	filter := bson.M{
		"user_id": uid,
		r.kind.ArrayField + ".category_name": categoryName,
	}
	projection := bson.M{"_id": 0, r.kind.ArrayField + ".$": 1}
	doc, err := r.store.FindOne(ctx, filter, projection)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errs.ErrCategoryNotFound
	}
	return doc, nil
}

// SetUsername rewrites the denormalized username copy on the user's
// inventory document.
func (r *Inventory) SetUsername(ctx context.Context, userID primitive.ObjectID, username string) error {
	_, err := r.store.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"username": username}},
	)
	return err
}

// DeleteByUser removes the user's inventory document.
func (r *Inventory) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.store.DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}
