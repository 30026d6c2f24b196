package model

// categoryNames is the fixed inventory taxonomy. Every new user's pantry and
// shopping cart are seeded with these categories in this order; item
// operations never add or remove categories afterwards.
var categoryNames = [...]string{
	"Candy",
	"Frozen",
	"Drinks",
	"Laundry",
	"Meat and Fish",
	"Dairy and Eggs",
	"Grocery Products",
	"Personal hygiene",
	"Grains and Cereals",
	"Cleaning materials",
	"Fruits and vegetables",
	"Condiments and Sauces",
	"Pasta and Wheat Products",
	"Breads and Bakery Products",
	"Canned goods and preserves",
}

// Shopping-cart categories carry a stable 3-digit code, 101..115 in
// taxonomy order.
const firstCategoryValue = 101

// SeedPantryCategories returns a fresh set of empty pantry categories.
func SeedPantryCategories() []Category {
	cats := make([]Category, len(categoryNames))
	for i, name := range categoryNames {
		cats[i] = Category{CategoryName: name, Items: []Item{}}
	}
	return cats
}

// SeedCartCategories returns a fresh set of empty shopping-cart categories,
// each with its 3-digit code.
func SeedCartCategories() []Category {
	cats := make([]Category, len(categoryNames))
	for i, name := range categoryNames {
		cats[i] = Category{
			CategoryValue: firstCategoryValue + i,
			CategoryName:  name,
			Items:         []Item{},
		}
	}
	return cats
}

// CategoryNameByValue resolves a 3-digit shopping-cart category code to its
// category name.
func CategoryNameByValue(value int) (string, bool) {
	i := value - firstCategoryValue
	if i < 0 || i >= len(categoryNames) {
		return "", false
	}
	return categoryNames[i], true
}

// IsCategoryName reports whether name is a member of the taxonomy.
func IsCategoryName(name string) bool {
	for _, n := range categoryNames {
		if n == name {
			return true
		}
	}
	return false
}
