package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LucasSMartins/SmartKitchen/internal/errs"
	"github.com/LucasSMartins/SmartKitchen/internal/model"
)

// Users persists user accounts in the users collection.
type Users struct {
	store Store
}

func NewUsers(store Store) *Users {
	return &Users{store: store}
}

// Create inserts the user after checking username and email are free.
// Uniqueness is checked, not enforced by a store constraint, so a
// concurrent duplicate registration can still slip through.
func (r *Users) Create(ctx context.Context, user model.User) (primitive.ObjectID, error) {
	taken, err := r.store.FindOne(ctx, bson.M{
		"$or": []bson.M{
			{"username": user.Username},
			{"email": user.Email},
		},
	}, bson.M{"_id": 1})
	if err != nil {
		return primitive.NilObjectID, err
	}
	if taken != nil {
		return primitive.NilObjectID, errs.ErrAlreadyExists
	}
	return r.store.InsertOne(ctx, user)
}

// Get returns the user without the password hash.
func (r *Users) Get(ctx context.Context, userID string) (model.User, error) {
	uid, err := ParseID(userID)
	if err != nil {
		return model.User{}, err
	}
	doc, err := r.store.FindOne(ctx, bson.M{"_id": uid}, bson.M{"password": 0})
	if err != nil {
		return model.User{}, err
	}
	if doc == nil {
		return model.User{}, errs.ErrUserNotFound
	}
	var user model.User
	if err := decode(doc, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// FindByEmail returns the user including the password hash, for login.
func (r *Users) FindByEmail(ctx context.Context, email string) (model.User, error) {
	doc, err := r.store.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return model.User{}, err
	}
	if doc == nil {
		return model.User{}, errs.ErrUserNotFound
	}
	var user model.User
	if err := decode(doc, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// List returns every user, passwords stripped.
func (r *Users) List(ctx context.Context) ([]model.User, error) {
	docs, err := r.store.Find(ctx, bson.M{}, bson.M{"password": 0})
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		var user model.User
		if err := decode(doc, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// SetUsername renames the account. The denormalized copies on the
// inventory documents are the service layer's job.
func (r *Users) SetUsername(ctx context.Context, userID primitive.ObjectID, username string) error {
	res, err := r.store.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"username": username}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// Delete removes the user document.
func (r *Users) Delete(ctx context.Context, userID primitive.ObjectID) error {
	deleted, err := r.store.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}
