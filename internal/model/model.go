package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Unit is the measurement unit of a stored item.
type Unit string

const (
	UnitPiece      Unit = "un"
	UnitLiter      Unit = "L"
	UnitMilliliter Unit = "ml"
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
)

// Valid reports whether u is one of the known units.
func (u Unit) Valid() bool {
	switch u {
	case UnitPiece, UnitLiter, UnitMilliliter, UnitGram, UnitKilogram:
		return true
	}
	return false
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"password,omitempty"`
}

// Item is one entry inside a category's items array. Price is a 2-digit
// fixed-point string; it is set for shopping-cart items only.
type Item struct {
	ItemID   primitive.ObjectID `bson:"item_id" json:"item_id"`
	ItemName string             `bson:"item_name" json:"item_name"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Unit     Unit               `bson:"unit" json:"unit"`
	Price    string             `bson:"price,omitempty" json:"price,omitempty"`
}

// Category is one element of an inventory document's categories array.
// CategoryValue is the 3-digit code carried by shopping-cart categories;
// pantry categories omit it.
type Category struct {
	CategoryValue int    `bson:"category_value,omitempty" json:"category_value,omitempty"`
	CategoryName  string `bson:"category_name" json:"category_name"`
	Items         []Item `bson:"items" json:"items"`
}

// Pantry is the per-user pantry document. Exactly one exists per user,
// created at registration with every taxonomy category empty.
type Pantry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
	Username string             `bson:"username" json:"username"`
	Pantry   []Category         `bson:"pantry" json:"pantry"`
}

// ShoppingCart is the per-user shopping-cart document, same lifecycle as Pantry.
type ShoppingCart struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id"`
	Username     string             `bson:"username" json:"username"`
	ShoppingCart []Category         `bson:"shoppingCart" json:"shoppingCart"`
}
