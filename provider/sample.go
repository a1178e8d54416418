package provider

import (
	"time"

	"github.com/rushteam/menukit/core"
)

// SampleMenu 返回一份咖啡馆示例目录，examples 与测试共用。
func SampleMenu() []*core.MenuItem {
	return []*core.MenuItem{
		{
			ID: "espresso", Name: "Espresso",
			Category: core.CategoryDrink, Subcategory: "coffee",
			Price: 2.50, Ingredients: []string{"coffee beans"},
			Calories: 5, Description: "Classic Italian espresso shot",
			Available: true,
		},
		{
			ID: "cappuccino", Name: "Cappuccino",
			Category: core.CategoryDrink, Subcategory: "coffee",
			Price: 3.50, Ingredients: []string{"coffee beans", "milk"},
			Allergens: []string{"dairy"},
			Calories:  120, Description: "Espresso with steamed milk and foam",
			Available: true,
		},
		{
			ID: "latte", Name: "Latte",
			Category: core.CategoryDrink, Subcategory: "coffee",
			Price: 4.00, Ingredients: []string{"coffee beans", "milk"},
			Allergens: []string{"dairy"},
			Calories:  150, Description: "Espresso with steamed milk",
			Available: true,
		},
		{
			ID: "americano", Name: "Americano",
			Category: core.CategoryDrink, Subcategory: "coffee",
			Price: 3.00, Ingredients: []string{"coffee beans"},
			Calories: 10, Description: "Espresso with hot water",
			Available: true,
		},
		{
			ID: "green-tea", Name: "Green Tea",
			Category: core.CategoryDrink, Subcategory: "tea",
			Price: 2.00, Ingredients: []string{"green tea leaves"},
			Description: "Fresh green tea",
			Available:   true,
		},
		{
			ID: "earl-grey", Name: "Earl Grey",
			Category: core.CategoryDrink, Subcategory: "tea",
			Price: 2.50, Ingredients: []string{"black tea", "bergamot"},
			Description: "Classic Earl Grey tea",
			Available:   true,
		},
		{
			ID: "croissant", Name: "Croissant",
			Category: core.CategoryFood, Subcategory: "pastry",
			Price: 3.00, Ingredients: []string{"flour", "butter", "eggs"},
			Allergens: []string{"gluten", "dairy", "eggs"},
			Calories:  280, Description: "Buttery French croissant",
			Available: true,
		},
		{
			ID: "blueberry-muffin", Name: "Blueberry Muffin",
			Category: core.CategoryFood, Subcategory: "pastry",
			Price: 3.50, Ingredients: []string{"flour", "blueberries", "eggs", "milk"},
			Allergens: []string{"gluten", "dairy", "eggs"},
			Calories:  320, Description: "Fresh blueberry muffin",
			Available: true,
		},
		{
			ID: "avocado-toast", Name: "Avocado Toast",
			Category: core.CategoryFood, Subcategory: "sandwich",
			Price: 7.50, Ingredients: []string{"bread", "avocado", "tomato"},
			Allergens: []string{"gluten"},
			Calories:  350, Description: "Toasted bread with fresh avocado",
			Available: true,
		},
		{
			ID: "caesar-salad", Name: "Caesar Salad",
			Category: core.CategoryFood, Subcategory: "salad",
			Price: 8.00, Ingredients: []string{"lettuce", "parmesan", "croutons"},
			Allergens: []string{"dairy", "gluten"},
			Calories:  250, Description: "Classic Caesar salad",
			Available: true,
		},
	}
}

// SampleOrders 返回跨顾客的示例订单，时间相对 now 锚定以便时效打分在任意
// 时刻运行都有意义。alice 是常客（4 单，触发个性化路径），bob 是新客
// （1 单，触发热门兜底），carol 偏好茶与沙拉。
func SampleOrders(now time.Time) []*core.Order {
	return []*core.Order{
		{
			ID: "o-1001", CustomerID: "alice", OrderedAt: now.AddDate(0, 0, -25), Total: 11.00,
			Lines: []core.OrderLine{
				{MenuItemID: "latte", Quantity: 2, UnitPrice: 4.00},
				{MenuItemID: "croissant", Quantity: 1, UnitPrice: 3.00},
			},
		},
		{
			ID: "o-1002", CustomerID: "alice", OrderedAt: now.AddDate(0, 0, -12), Total: 7.50,
			Lines: []core.OrderLine{
				{MenuItemID: "latte", Quantity: 1, UnitPrice: 4.00},
				{MenuItemID: "blueberry-muffin", Quantity: 1, UnitPrice: 3.50},
			},
		},
		{
			ID: "o-1003", CustomerID: "alice", OrderedAt: now.AddDate(0, 0, -5), Total: 9.50,
			Lines: []core.OrderLine{
				{MenuItemID: "cappuccino", Quantity: 1, UnitPrice: 3.50},
				{MenuItemID: "croissant", Quantity: 2, UnitPrice: 3.00},
			},
		},
		{
			ID: "o-1004", CustomerID: "alice", OrderedAt: now.AddDate(0, 0, -2), Total: 4.00,
			Lines: []core.OrderLine{
				{MenuItemID: "latte", Quantity: 1, UnitPrice: 4.00, Customizations: "oat milk"},
			},
		},
		{
			ID: "o-2001", CustomerID: "bob", OrderedAt: now.AddDate(0, 0, -1), Total: 3.00,
			Lines: []core.OrderLine{
				{MenuItemID: "americano", Quantity: 1, UnitPrice: 3.00},
			},
		},
		{
			ID: "o-3001", CustomerID: "carol", OrderedAt: now.AddDate(0, 0, -40), Total: 2.00,
			Lines: []core.OrderLine{
				{MenuItemID: "green-tea", Quantity: 1, UnitPrice: 2.00},
			},
		},
		{
			ID: "o-3002", CustomerID: "carol", OrderedAt: now.AddDate(0, 0, -8), Total: 10.00,
			Lines: []core.OrderLine{
				{MenuItemID: "caesar-salad", Quantity: 1, UnitPrice: 8.00},
				{MenuItemID: "green-tea", Quantity: 1, UnitPrice: 2.00},
			},
		},
	}
}

// SampleCustomers 返回与 SampleOrders 对应的顾客画像。
func SampleCustomers(now time.Time) []*core.Customer {
	alice := core.NewCustomer("alice")
	alice.Name = "Alice"
	alice.Tastes = map[string]float64{"coffee": 0.9, "pastry": 0.6}
	alice.VisitCount = 4
	alice.FirstVisit = now.AddDate(0, 0, -25)
	alice.LastVisit = now.AddDate(0, 0, -2)

	bob := core.NewCustomer("bob")
	bob.Name = "Bob"
	bob.VisitCount = 1
	bob.FirstVisit = now.AddDate(0, 0, -1)
	bob.LastVisit = now.AddDate(0, 0, -1)

	carol := core.NewCustomer("carol")
	carol.Name = "Carol"
	carol.Allergens = []string{"dairy"}
	carol.Tastes = map[string]float64{"tea": 0.8, "salad": 0.5}
	carol.VisitCount = 2
	carol.FirstVisit = now.AddDate(0, 0, -40)
	carol.LastVisit = now.AddDate(0, 0, -8)

	return []*core.Customer{alice, bob, carol}
}
