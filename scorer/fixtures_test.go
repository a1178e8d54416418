package scorer

import (
	"time"

	"github.com/rushteam/menukit/core"
)

// menuFixture returns a small café catalog shared by the scorer tests.
func menuFixture() []*core.MenuItem {
	return []*core.MenuItem{
		{
			ID: "espresso", Name: "Espresso", Category: core.CategoryDrink,
			Subcategory: "coffee", Price: 3.0,
			Ingredients: []string{"espresso beans", "water"},
			Available:   true,
		},
		{
			ID: "americano", Name: "Americano", Category: core.CategoryDrink,
			Subcategory: "coffee", Price: 3.5,
			Ingredients: []string{"espresso beans", "water"},
			Available:   true,
		},
		{
			ID: "latte", Name: "Latte", Category: core.CategoryDrink,
			Subcategory: "coffee", Price: 4.5,
			Ingredients: []string{"espresso beans", "milk"},
			Allergens:   []string{"dairy"},
			Available:   true,
		},
		{
			ID: "green-tea", Name: "Green Tea", Category: core.CategoryDrink,
			Subcategory: "tea", Price: 2.5,
			Ingredients: []string{"green tea leaves", "water"},
			Available:   true,
		},
		{
			ID: "croissant", Name: "Croissant", Category: core.CategoryFood,
			Subcategory: "pastry", Price: 3.0,
			Ingredients: []string{"flour", "butter", "yeast"},
			Allergens:   []string{"gluten", "dairy"},
			Available:   true,
		},
		{
			ID: "caesar-salad", Name: "Caesar Salad", Category: core.CategoryFood,
			Subcategory: "salad", Price: 8.5,
			Ingredients: []string{"romaine", "parmesan", "croutons"},
			Allergens:   []string{"dairy", "gluten"},
			Available:   true,
		},
	}
}

// orderAt builds an order for the given customer with one line per id/qty pair.
func orderAt(id, customerID string, at time.Time, lines ...core.OrderLine) *core.Order {
	return &core.Order{
		ID:         id,
		CustomerID: customerID,
		OrderedAt:  at,
		Lines:      lines,
	}
}

func line(itemID string, qty int) core.OrderLine {
	return core.OrderLine{MenuItemID: itemID, Quantity: qty}
}
