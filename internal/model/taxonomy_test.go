package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPantryCategories(t *testing.T) {
	cats := SeedPantryCategories()
	require.Len(t, cats, 15)

	assert.Equal(t, "Candy", cats[0].CategoryName)
	assert.Equal(t, "Canned goods and preserves", cats[14].CategoryName)
	for _, c := range cats {
		assert.Zero(t, c.CategoryValue)
		assert.NotNil(t, c.Items)
		assert.Empty(t, c.Items)
	}
}

func TestSeedCartCategoriesCodes(t *testing.T) {
	cats := SeedCartCategories()
	require.Len(t, cats, 15)

	for i, c := range cats {
		assert.Equal(t, 101+i, c.CategoryValue)
		assert.Empty(t, c.Items)
	}
	assert.Equal(t, "Candy", cats[0].CategoryName)
	assert.Equal(t, 115, cats[14].CategoryValue)
}

func TestSeedReturnsFreshSlices(t *testing.T) {
	a := SeedPantryCategories()
	a[0].Items = append(a[0].Items, Item{ItemName: "Gum"})

	b := SeedPantryCategories()
	assert.Empty(t, b[0].Items)
}

func TestCategoryNameByValue(t *testing.T) {
	tests := []struct {
		value int
		name  string
		ok    bool
	}{
		{101, "Candy", true},
		{103, "Drinks", true},
		{115, "Canned goods and preserves", true},
		{100, "", false},
		{116, "", false},
		{0, "", false},
	}
	for _, tt := range tests {
		name, ok := CategoryNameByValue(tt.value)
		assert.Equal(t, tt.ok, ok, "value %d", tt.value)
		assert.Equal(t, tt.name, name, "value %d", tt.value)
	}
}

func TestIsCategoryName(t *testing.T) {
	assert.True(t, IsCategoryName("Frozen"))
	assert.True(t, IsCategoryName("Meat and Fish"))
	assert.False(t, IsCategoryName("frozen"))
	assert.False(t, IsCategoryName("Electronics"))
}

func TestUnitValid(t *testing.T) {
	for _, u := range []Unit{UnitPiece, UnitLiter, UnitMilliliter, UnitGram, UnitKilogram} {
		assert.True(t, u.Valid())
	}
	assert.False(t, Unit("oz").Valid())
	assert.False(t, Unit("").Valid())
}
