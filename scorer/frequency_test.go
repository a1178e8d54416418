package scorer

import (
	"context"
	"testing"
	"time"

	"github.com/rushteam/menukit/core"
)

func TestFrequency_Score(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	catalog := menuFixture()

	tests := []struct {
		name       string
		orders     []*core.Order
		wantIDs    []string
		wantScores []float64
	}{
		{
			name: "counts sum across orders",
			orders: []*core.Order{
				orderAt("o1", "alice", now.AddDate(0, -2, 0), line("espresso", 3)),
				orderAt("o2", "alice", now.AddDate(0, -1, 0), line("espresso", 2), line("latte", 1)),
			},
			wantIDs:    []string{"espresso", "latte"},
			wantScores: []float64{5, 1},
		},
		{
			name: "dangling menu reference skipped",
			orders: []*core.Order{
				orderAt("o1", "alice", now, line("espresso", 1), line("discontinued-mocha", 9)),
			},
			wantIDs:    []string{"espresso"},
			wantScores: []float64{1},
		},
		{
			name:    "empty history yields empty list",
			orders:  nil,
			wantIDs: []string{},
		},
		{
			name: "ties keep catalog order",
			orders: []*core.Order{
				orderAt("o1", "alice", now, line("latte", 2), line("americano", 2)),
			},
			// americano precedes latte in the catalog
			wantIDs:    []string{"americano", "latte"},
			wantScores: []float64{2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Frequency{}
			rctx := &core.RecommendContext{
				CustomerID: "alice",
				Now:        now,
				Orders:     tt.orders,
				Catalog:    catalog,
			}

			got, err := s.Score(context.Background(), rctx)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len(got) = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, c := range got {
				if c.ID != tt.wantIDs[i] {
					t.Errorf("got[%d].ID = %s, want %s", i, c.ID, tt.wantIDs[i])
				}
				if tt.wantScores != nil && c.Score != tt.wantScores[i] {
					t.Errorf("got[%d].Score = %v, want %v", i, c.Score, tt.wantScores[i])
				}
			}
		})
	}
}

func TestFrequency_CandidateShape(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rctx := &core.RecommendContext{
		CustomerID: "alice",
		Now:        now,
		Orders: []*core.Order{
			orderAt("o1", "alice", now, line("espresso", 3)),
			orderAt("o2", "alice", now, line("espresso", 2)),
		},
		Catalog: menuFixture(),
	}

	got, err := (&Frequency{}).Score(context.Background(), rctx)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}

	c := got[0]
	if want := "ordered this 5 times"; len(c.Reasons) != 1 || c.Reasons[0] != want {
		t.Errorf("Reasons = %v, want [%q]", c.Reasons, want)
	}
	if !c.HasStrategy(core.StrategyFrequency) {
		t.Errorf("missing strategy tag %q", core.StrategyFrequency)
	}
	if c.Item == nil || c.Item.Name != "Espresso" {
		t.Errorf("Item = %v, want Espresso", c.Item)
	}
	if c.Features["raw_frequency"] != 5 {
		t.Errorf("raw_frequency = %v, want 5", c.Features["raw_frequency"])
	}
}

func TestFrequency_TopK(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rctx := &core.RecommendContext{
		CustomerID: "alice",
		Now:        now,
		Orders: []*core.Order{
			orderAt("o1", "alice", now,
				line("espresso", 5), line("latte", 4), line("americano", 3), line("croissant", 2)),
		},
		Catalog: menuFixture(),
	}

	got, err := (&Frequency{TopK: 2}).Score(context.Background(), rctx)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].ID != "espresso" || got[1].ID != "latte" {
		t.Errorf("got = [%s %s], want [espresso latte]", got[0].ID, got[1].ID)
	}
}
