package rerank

import (
	"context"
	"testing"

	"github.com/rushteam/menukit/core"
)

func candidate(id, subcategory string, score float64) *core.Candidate {
	c := core.NewCandidate(&core.MenuItem{
		ID: id, Name: id, Category: core.CategoryDrink, Subcategory: subcategory,
	})
	c.Score = score
	return c
}

func TestTopNNode_Process(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		in      []*core.Candidate
		wantIDs []string
	}{
		{
			name: "sorts descending then truncates",
			n:    2,
			in: []*core.Candidate{
				candidate("latte", "coffee", 1.0),
				candidate("espresso", "coffee", 3.0),
				candidate("tea", "tea", 2.0),
			},
			wantIDs: []string{"espresso", "tea"},
		},
		{
			name: "zero keeps everything sorted",
			n:    0,
			in: []*core.Candidate{
				candidate("latte", "coffee", 1.0),
				candidate("espresso", "coffee", 3.0),
			},
			wantIDs: []string{"espresso", "latte"},
		},
		{
			name: "stable on ties",
			n:    0,
			in: []*core.Candidate{
				candidate("first", "coffee", 2.0),
				candidate("second", "tea", 2.0),
			},
			wantIDs: []string{"first", "second"},
		},
		{
			name:    "empty input",
			n:       3,
			in:      nil,
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &TopNNode{N: tt.n}
			got, err := node.Process(context.Background(), &core.RecommendContext{}, tt.in)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len(got) = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, c := range got {
				if c.ID != tt.wantIDs[i] {
					t.Errorf("got[%d].ID = %s, want %s", i, c.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestDiversity_Process(t *testing.T) {
	in := []*core.Candidate{
		candidate("espresso", "coffee", 5.0),
		candidate("latte", "coffee", 4.0),
		candidate("cappuccino", "coffee", 3.0),
		candidate("green-tea", "tea", 2.0),
		candidate("chai", "tea", 1.0),
	}

	t.Run("one per subcategory by default", func(t *testing.T) {
		node := &Diversity{}
		got, err := node.Process(context.Background(), &core.RecommendContext{}, in)
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		wantIDs := []string{"espresso", "green-tea"}
		if len(got) != len(wantIDs) {
			t.Fatalf("len(got) = %d, want %d", len(got), len(wantIDs))
		}
		for i, c := range got {
			if c.ID != wantIDs[i] {
				t.Errorf("got[%d].ID = %s, want %s", i, c.ID, wantIDs[i])
			}
		}
	})

	t.Run("max per key respected", func(t *testing.T) {
		node := &Diversity{MaxPerKey: 2}
		got, err := node.Process(context.Background(), &core.RecommendContext{}, in)
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		wantIDs := []string{"espresso", "latte", "green-tea", "chai"}
		if len(got) != len(wantIDs) {
			t.Fatalf("len(got) = %d, want %d", len(got), len(wantIDs))
		}
		for i, c := range got {
			if c.ID != wantIDs[i] {
				t.Errorf("got[%d].ID = %s, want %s", i, c.ID, wantIDs[i])
			}
		}
	})

	t.Run("category fallback when subcategory empty", func(t *testing.T) {
		mixed := []*core.Candidate{
			candidate("a", "", 2.0),
			candidate("b", "", 1.0),
		}
		node := &Diversity{}
		got, err := node.Process(context.Background(), &core.RecommendContext{}, mixed)
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		// both share the drink category, only the first survives
		if len(got) != 1 || got[0].ID != "a" {
			t.Errorf("got = %v, want [a]", got)
		}
	})
}
