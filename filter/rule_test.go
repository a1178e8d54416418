package filter

import (
	"context"
	"testing"

	"github.com/rushteam/menukit/core"
)

func TestRuleFilter(t *testing.T) {
	lowCal := core.NewCandidate(&core.MenuItem{
		ID: "green-tea", Name: "Green Tea", Category: core.CategoryDrink,
		Subcategory: "tea", Price: 2.5, Calories: 5, Available: true,
	})
	highCal := core.NewCandidate(&core.MenuItem{
		ID: "croissant", Name: "Croissant", Category: core.CategoryFood,
		Subcategory: "pastry", Price: 3.0, Calories: 480,
		Allergens: []string{"gluten", "dairy"}, Available: true,
	})

	tests := []struct {
		name     string
		expr     string
		cand     *core.Candidate
		filtered bool
	}{
		{
			name:     "calorie rule keeps light items",
			expr:     "item.calories > 0 && item.calories < 400",
			cand:     lowCal,
			filtered: false,
		},
		{
			name:     "calorie rule drops heavy items",
			expr:     "item.calories > 0 && item.calories < 400",
			cand:     highCal,
			filtered: true,
		},
		{
			name:     "allergen rule",
			expr:     `!("gluten" in item.allergens)`,
			cand:     highCal,
			filtered: true,
		},
		{
			name:     "category and price rule",
			expr:     `item.category == "drink" && item.price < 5.0`,
			cand:     lowCal,
			filtered: false,
		},
		{
			name:     "empty expression keeps everything",
			expr:     "",
			cand:     highCal,
			filtered: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewRuleFilter(tt.expr)
			if err != nil {
				t.Fatalf("NewRuleFilter(%q) error = %v", tt.expr, err)
			}
			got, err := f.ShouldFilter(context.Background(), &core.RecommendContext{}, tt.cand)
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.filtered {
				t.Errorf("ShouldFilter() = %v, want %v", got, tt.filtered)
			}
		})
	}
}

func TestRuleFilter_CustomerVariable(t *testing.T) {
	f, err := NewRuleFilter(`customer.visit_count >= 10`)
	if err != nil {
		t.Fatalf("NewRuleFilter() error = %v", err)
	}

	regular := &core.RecommendContext{Customer: &core.Customer{ID: "alice", VisitCount: 12}}
	cand := core.NewCandidate(&core.MenuItem{ID: "espresso", Available: true})

	got, err := f.ShouldFilter(context.Background(), regular, cand)
	if err != nil {
		t.Fatalf("ShouldFilter() error = %v", err)
	}
	if got {
		t.Error("regular customer should pass the rule")
	}
}

func TestRuleFilter_CompileError(t *testing.T) {
	if _, err := NewRuleFilter("item.price <"); err == nil {
		t.Error("NewRuleFilter should reject an unparsable expression")
	}
}
