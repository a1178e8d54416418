package provider

import (
	"context"
	"testing"
	"time"

	"github.com/rushteam/menukit/core"
)

func sampleNow() time.Time {
	return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

func TestStaticProvider_GetOrderHistory(t *testing.T) {
	now := sampleNow()
	p := NewStaticProvider(SampleMenu(), SampleOrders(now))
	ctx := context.Background()

	tests := []struct {
		name       string
		customerID string
		wantOrders int
	}{
		{name: "regular customer", customerID: "alice", wantOrders: 4},
		{name: "new customer", customerID: "bob", wantOrders: 1},
		{name: "unknown customer is empty history", customerID: "nobody", wantOrders: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.GetOrderHistory(ctx, tt.customerID)
			if err != nil {
				t.Fatalf("GetOrderHistory() error = %v", err)
			}
			if len(got) != tt.wantOrders {
				t.Errorf("len(orders) = %d, want %d", len(got), tt.wantOrders)
			}
			for _, o := range got {
				if o.CustomerID != tt.customerID {
					t.Errorf("order %s belongs to %s", o.ID, o.CustomerID)
				}
			}
		})
	}
}

func TestStaticProvider_GetMenuItems(t *testing.T) {
	menu := SampleMenu()
	menu[0].Available = false // espresso off the menu today
	p := NewStaticProvider(menu, nil)
	ctx := context.Background()

	all, err := p.GetMenuItems(ctx, false)
	if err != nil {
		t.Fatalf("GetMenuItems(false) error = %v", err)
	}
	if len(all) != len(menu) {
		t.Errorf("len(all) = %d, want %d", len(all), len(menu))
	}

	avail, err := p.GetMenuItems(ctx, true)
	if err != nil {
		t.Fatalf("GetMenuItems(true) error = %v", err)
	}
	if len(avail) != len(menu)-1 {
		t.Errorf("len(available) = %d, want %d", len(avail), len(menu)-1)
	}
	for _, item := range avail {
		if item.ID == "espresso" {
			t.Error("unavailable item leaked into available snapshot")
		}
	}
}

func TestStaticProvider_GetPopularItems(t *testing.T) {
	now := sampleNow()
	p := NewStaticProvider(SampleMenu(), SampleOrders(now))
	ctx := context.Background()

	got, err := p.GetPopularItems(ctx, 3)
	if err != nil {
		t.Fatalf("GetPopularItems() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3", len(got))
	}

	// latte: 3 orders / qty 4, croissant: 2 / 3, green-tea: 2 / 2
	wantIDs := []string{"latte", "croissant", "green-tea"}
	for i, want := range wantIDs {
		if got[i].Item.ID != want {
			t.Errorf("rank %d = %s, want %s", i, got[i].Item.ID, want)
		}
	}
	if got[0].OrderCount != 3 || got[0].TotalQuantity != 4 {
		t.Errorf("latte tally = %d orders / %d qty, want 3 / 4",
			got[0].OrderCount, got[0].TotalQuantity)
	}
	// croissant outranks green-tea on total quantity at equal order count
	if got[1].OrderCount != got[2].OrderCount {
		t.Fatalf("expected order-count tie between %s and %s", got[1].Item.ID, got[2].Item.ID)
	}
	if got[1].TotalQuantity <= got[2].TotalQuantity {
		t.Errorf("quantity tie-break violated: %d <= %d", got[1].TotalQuantity, got[2].TotalQuantity)
	}
}

func TestStaticProvider_GetPopularItems_SkipsUnavailable(t *testing.T) {
	now := sampleNow()
	menu := SampleMenu()
	for _, item := range menu {
		if item.ID == "latte" {
			item.Available = false
		}
	}
	p := NewStaticProvider(menu, SampleOrders(now))

	got, err := p.GetPopularItems(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetPopularItems() error = %v", err)
	}
	for _, pi := range got {
		if pi.Item.ID == "latte" {
			t.Error("unavailable item appeared in popularity ranking")
		}
	}
}

func TestStaticProvider_GetPopularItems_NoOrders(t *testing.T) {
	p := NewStaticProvider(SampleMenu(), nil)
	got, err := p.GetPopularItems(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetPopularItems() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0 when nothing was ever ordered", len(got))
	}
}

func TestStaticProvider_GetPopularItems_OrderCountDedupe(t *testing.T) {
	// one order with two lines of the same item counts once for order count
	menu := SampleMenu()
	orders := []*core.Order{
		{
			ID: "o-1", CustomerID: "alice", OrderedAt: sampleNow(),
			Lines: []core.OrderLine{
				{MenuItemID: "espresso", Quantity: 1, UnitPrice: 2.50},
				{MenuItemID: "espresso", Quantity: 2, UnitPrice: 2.50, Customizations: "double"},
			},
		},
	}
	p := NewStaticProvider(menu, orders)

	got, err := p.GetPopularItems(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetPopularItems() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0].OrderCount != 1 {
		t.Errorf("OrderCount = %d, want 1 (same order counts once)", got[0].OrderCount)
	}
	if got[0].TotalQuantity != 3 {
		t.Errorf("TotalQuantity = %d, want 3", got[0].TotalQuantity)
	}
}

func TestStaticProvider_GetCustomer(t *testing.T) {
	now := sampleNow()
	p := NewStaticProvider(SampleMenu(), nil).WithCustomers(SampleCustomers(now)...)
	ctx := context.Background()

	got, err := p.GetCustomer(ctx, "carol")
	if err != nil {
		t.Fatalf("GetCustomer() error = %v", err)
	}
	if got.Name != "Carol" || len(got.Allergens) != 1 {
		t.Errorf("GetCustomer() = %+v, want Carol with one allergen", got)
	}

	if _, err := p.GetCustomer(ctx, "nobody"); !core.IsNotFound(err) {
		t.Errorf("GetCustomer(nobody) error = %v, want NOT_FOUND", err)
	}
}
