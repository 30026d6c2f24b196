// Package service holds the user lifecycle: registration with inventory
// provisioning, login, renaming and deletion.
package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/LucasSMartins/SmartKitchen/internal/errs"
	"github.com/LucasSMartins/SmartKitchen/internal/model"
	"github.com/LucasSMartins/SmartKitchen/internal/repository"
)

type Users struct {
	users  *repository.Users
	pantry *repository.Inventory
	cart   *repository.Inventory
	log    *logrus.Logger
}

func NewUsers(users *repository.Users, pantry, cart *repository.Inventory, log *logrus.Logger) *Users {
	return &Users{users: users, pantry: pantry, cart: cart, log: log}
}

// Register creates the account and seeds its pantry and shopping-cart
// documents from the category taxonomy. The three inserts are not
// transactional; a failed seed leaves the account without that inventory.
func (s *Users) Register(ctx context.Context, username, email, password string) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{Username: username, Email: email, Password: string(hash)}
	id, err := s.users.Create(ctx, user)
	if err != nil {
		return model.User{}, err
	}

	if err := s.pantry.Provision(ctx, id, username); err != nil {
		s.log.WithFields(logrus.Fields{"user_id": id.Hex()}).WithError(err).Error("pantry provisioning failed")
		return model.User{}, err
	}
	if err := s.cart.Provision(ctx, id, username); err != nil {
		s.log.WithFields(logrus.Fields{"user_id": id.Hex()}).WithError(err).Error("shopping cart provisioning failed")
		return model.User{}, err
	}

	user.ID = id
	user.Password = ""
	return user, nil
}

// Login verifies the credentials and returns the user without the hash.
func (s *Users) Login(ctx context.Context, email, password string) (model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return model.User{}, errs.ErrInvalidCredentials
		}
		return model.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return model.User{}, errs.ErrInvalidCredentials
	}
	user.Password = ""
	return user, nil
}

// Rename changes the username and rewrites the denormalized copies on both
// inventory documents.
func (s *Users) Rename(ctx context.Context, userID, username string) error {
	uid, err := repository.ParseID(userID)
	if err != nil {
		return err
	}
	if err := s.users.SetUsername(ctx, uid, username); err != nil {
		return err
	}
	if err := s.pantry.SetUsername(ctx, uid, username); err != nil {
		return err
	}
	return s.cart.SetUsername(ctx, uid, username)
}

// Delete removes the user together with both inventory documents.
func (s *Users) Delete(ctx context.Context, userID string) error {
	uid, err := repository.ParseID(userID)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, uid); err != nil {
		return err
	}
	if err := s.pantry.DeleteByUser(ctx, uid); err != nil {
		return err
	}
	return s.cart.DeleteByUser(ctx, uid)
}
