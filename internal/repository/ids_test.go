package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LucasSMartins/SmartKitchen/internal/errs"
)

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(primitive.NewObjectID().Hex()))
	assert.True(t, IsValidID("5f1f77bcf86cd799439011AA"))

	// wrong length, non-hex at the right length, trailing space
	for _, bad := range []string{
		"",
		"abc",
		"zzzzzzzzzzzzzzzzzzzzzzzz",
		"5f1f77bcf86cd79943901",
		"0123456789abcdef0123456789abcdef",
		"507f1f77bcf86cd79943901 ",
	} {
		assert.False(t, IsValidID(bad), "id %q", bad)
	}
}

func TestParseID(t *testing.T) {
	want := primitive.NewObjectID()
	got, err := ParseID(want.Hex())
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ParseID("abc")
	assert.ErrorIs(t, err, errs.ErrInvalidID)
}
