package engine

import (
	"context"
	"testing"

	"github.com/rushteam/menukit/core"
)

func TestComplementaryItems(t *testing.T) {
	catalog := &fakeCatalog{items: menuFixture()}
	orders := &fakeOrders{orders: map[string][]*core.Order{}}
	e := newTestEngine(t, orders, catalog)
	ctx := context.Background()

	tests := []struct {
		name    string
		itemIDs []string
		limit   int
		wantIDs []string
	}{
		{
			// coffee pulls in pastries; the fixture has one
			name:    "coffee brings pastries",
			itemIDs: []string{"espresso"},
			wantIDs: []string{"croissant"},
		},
		{
			// salad pulls in the first two drinks in catalog order
			name:    "salad brings drinks",
			itemIDs: []string{"caesar-salad"},
			wantIDs: []string{"espresso", "americano"},
		},
		{
			name:    "mixed selection dedupes and caps at limit",
			itemIDs: []string{"latte", "caesar-salad"},
			limit:   3,
			wantIDs: []string{"croissant", "espresso", "americano"},
		},
		{
			// the selected drink never recommends itself even when it is
			// among the partner candidates
			name:    "selection itself excluded",
			itemIDs: []string{"caesar-salad", "espresso"},
			limit:   5,
			wantIDs: []string{"americano", "croissant"},
		},
		{
			name:    "tea has no pairing rule",
			itemIDs: []string{"green-tea"},
			wantIDs: nil,
		},
		{
			name:    "unknown ids are skipped",
			itemIDs: []string{"ghost-item"},
			wantIDs: nil,
		},
		{
			name:    "empty selection",
			itemIDs: nil,
			wantIDs: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ComplementaryItems(ctx, tt.itemIDs, tt.limit)
			if err != nil {
				t.Fatalf("ComplementaryItems() error = %v", err)
			}
			gotIDs := make([]string, 0, len(got))
			for _, rec := range got {
				gotIDs = append(gotIDs, rec.Item.ID)
				if rec.Reason != complementaryReason {
					t.Errorf("reason = %q, want %q", rec.Reason, complementaryReason)
				}
				if len(rec.Strategies) != 1 || rec.Strategies[0] != core.StrategyComplementary {
					t.Errorf("strategies = %v, want [%s]", rec.Strategies, core.StrategyComplementary)
				}
			}
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("got %v, want %v", gotIDs, tt.wantIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Errorf("got %v, want %v", gotIDs, tt.wantIDs)
					break
				}
			}
		})
	}
}

func TestComplementaryItems_DefaultLimit(t *testing.T) {
	catalog := &fakeCatalog{items: menuFixture()}
	e := newTestEngine(t, &fakeOrders{orders: map[string][]*core.Order{}}, catalog)

	got, err := e.ComplementaryItems(context.Background(), []string{"caesar-salad", "latte"}, 0)
	if err != nil {
		t.Fatalf("ComplementaryItems() error = %v", err)
	}
	if len(got) > DefaultComplementaryLimit {
		t.Errorf("len(got) = %d, want <= %d", len(got), DefaultComplementaryLimit)
	}
}
