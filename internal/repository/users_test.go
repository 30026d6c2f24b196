package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LucasSMartins/SmartKitchen/internal/errs"
	"github.com/LucasSMartins/SmartKitchen/internal/model"
	"github.com/LucasSMartins/SmartKitchen/internal/storage/memstore"
)

func TestUsersCreate(t *testing.T) {
	store := memstore.New()
	users := NewUsers(store)

	id, err := users.Create(context.Background(), model.User{
		Username: "lucas", Email: "lucas@example.com", Password: "hash",
	})
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	require.Len(t, store.Docs, 1)
}

func TestUsersCreateDuplicate(t *testing.T) {
	store := memstore.New()
	users := NewUsers(store)

	_, err := users.Create(context.Background(), model.User{Username: "lucas", Email: "lucas@example.com"})
	require.NoError(t, err)

	// same username, different email
	_, err = users.Create(context.Background(), model.User{Username: "lucas", Email: "other@example.com"})
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)

	// same email, different username
	_, err = users.Create(context.Background(), model.User{Username: "maria", Email: "lucas@example.com"})
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestUsersGet(t *testing.T) {
	store := memstore.New()
	users := NewUsers(store)

	id, err := users.Create(context.Background(), model.User{
		Username: "lucas", Email: "lucas@example.com", Password: "hash",
	})
	require.NoError(t, err)

	user, err := users.Get(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "lucas", user.Username)
	assert.Empty(t, user.Password)

	_, err = users.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	_, err = users.Get(context.Background(), "abc")
	assert.ErrorIs(t, err, errs.ErrInvalidID)
}

func TestUsersFindByEmail(t *testing.T) {
	store := memstore.New()
	users := NewUsers(store)

	_, err := users.Create(context.Background(), model.User{
		Username: "lucas", Email: "lucas@example.com", Password: "hash",
	})
	require.NoError(t, err)

	user, err := users.FindByEmail(context.Background(), "lucas@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.Password)

	_, err = users.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestUsersListStripsPasswords(t *testing.T) {
	store := memstore.New()
	users := NewUsers(store)

	_, err := users.Create(context.Background(), model.User{Username: "lucas", Email: "l@example.com", Password: "x"})
	require.NoError(t, err)
	_, err = users.Create(context.Background(), model.User{Username: "maria", Email: "m@example.com", Password: "y"})
	require.NoError(t, err)

	list, err := users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, u := range list {
		assert.Empty(t, u.Password)
	}
}

func TestUsersSetUsernameAndDelete(t *testing.T) {
	store := memstore.New()
	users := NewUsers(store)

	id, err := users.Create(context.Background(), model.User{Username: "lucas", Email: "l@example.com"})
	require.NoError(t, err)

	require.NoError(t, users.SetUsername(context.Background(), id, "maria"))
	assert.Equal(t, "maria", store.Docs[0]["username"])

	assert.ErrorIs(t, users.SetUsername(context.Background(), primitive.NewObjectID(), "x"), errs.ErrUserNotFound)

	require.NoError(t, users.Delete(context.Background(), id))
	assert.Empty(t, store.Docs)
	assert.ErrorIs(t, users.Delete(context.Background(), id), errs.ErrUserNotFound)
}
