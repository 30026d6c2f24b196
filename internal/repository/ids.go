package repository

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LucasSMartins/SmartKitchen/internal/errs"
)

// IsValidID reports whether s is a well-formed 24-hex object id. Every
// externally supplied id must pass this before it is used in a filter;
// a malformed value silently matching zero documents would be
// indistinguishable from "not found".
func IsValidID(s string) bool {
	return primitive.IsValidObjectID(s)
}

// ParseID validates and converts an externally supplied id, failing with
// errs.ErrInvalidID on malformed input.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, errs.ErrInvalidID
	}
	return id, nil
}
