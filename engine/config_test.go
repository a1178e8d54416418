package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rushteam/menukit/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
engine:
  min_orders: 2
  recency_window_days: 14
  default_limit: 8
  headroom: 3
  scorer_timeout_ms: 250
  max_concurrent: 2
  weights:
    frequency: 0.5
    similarity: 0.25
    recency: 0.25
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	ec := cfg.Engine
	if ec.MinOrders != 2 || ec.RecencyWindowDays != 14 || ec.DefaultLimit != 8 ||
		ec.Headroom != 3 || ec.ScorerTimeoutMS != 250 || ec.MaxConcurrent != 2 {
		t.Errorf("unexpected config: %+v", ec)
	}
	if ec.Weights == nil || ec.Weights.Frequency != 0.5 {
		t.Errorf("weights = %+v, want frequency 0.5", ec.Weights)
	}
	if got := len(cfg.Options()); got != 7 {
		t.Errorf("len(Options()) = %d, want 7", got)
	}
}

func TestLoadConfig_EmptyUsesDefaults(t *testing.T) {
	path := writeConfig(t, "engine: {}\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got := len(cfg.Options()); got != 0 {
		t.Errorf("len(Options()) = %d, want 0 for empty config", got)
	}
}

func TestNewFromConfigFile(t *testing.T) {
	catalog := &fakeCatalog{items: menuFixture()}
	orders := &fakeOrders{orders: map[string][]*core.Order{}}

	t.Run("valid", func(t *testing.T) {
		path := writeConfig(t, `
engine:
  min_orders: 1
  default_limit: 3
`)
		e, err := NewFromConfigFile(orders, catalog, path, WithClock(frozenClock()))
		if err != nil {
			t.Fatalf("NewFromConfigFile() error = %v", err)
		}
		if e.minOrders != 1 || e.defaultLimit != 3 {
			t.Errorf("engine config not applied: minOrders=%d defaultLimit=%d", e.minOrders, e.defaultLimit)
		}
	})

	t.Run("bad weights rejected", func(t *testing.T) {
		path := writeConfig(t, `
engine:
  weights:
    frequency: 0.9
    similarity: 0.9
    recency: 0.9
`)
		if _, err := NewFromConfigFile(orders, catalog, path); !core.IsInvalidConfig(err) {
			t.Errorf("NewFromConfigFile() error = %v, want INVALID_CONFIG", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := NewFromConfigFile(orders, catalog, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("NewFromConfigFile() expected error for missing file")
		}
	})
}

func TestRecommend_ConfiguredWindow(t *testing.T) {
	now := frozenNow()
	catalog := &fakeCatalog{items: menuFixture()}
	catalog.popular = popularFixture(catalog.items)

	// three orders: 5 and 20 days old inside a 30-day window, the 20-day one
	// outside a 7-day window
	history := []*core.Order{
		{ID: "o-1", CustomerID: "erin", OrderedAt: now.AddDate(0, 0, -5),
			Lines: []core.OrderLine{{MenuItemID: "green-tea", Quantity: 1}}},
		{ID: "o-2", CustomerID: "erin", OrderedAt: now.AddDate(0, 0, -20),
			Lines: []core.OrderLine{{MenuItemID: "espresso", Quantity: 5}}},
		{ID: "o-3", CustomerID: "erin", OrderedAt: now.AddDate(0, 0, -20),
			Lines: []core.OrderLine{{MenuItemID: "espresso", Quantity: 5}}},
	}
	orders := &fakeOrders{orders: map[string][]*core.Order{"erin": history}}

	wide := newTestEngine(t, orders, catalog)
	narrow := newTestEngine(t, orders, catalog, WithRecencyWindow(7*24*time.Hour))

	ctx := context.Background()
	wideRecs, err := wide.Recommend(ctx, "erin", 5)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	narrowRecs, err := narrow.Recommend(ctx, "erin", 5)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	score := func(recs []*core.Recommendation, id string) float64 {
		for _, r := range recs {
			if r.Item.ID == id {
				return r.Score
			}
		}
		return 0
	}
	// espresso keeps its frequency contribution either way, but loses the
	// recency contribution once both espresso orders fall outside the window
	if score(wideRecs, "espresso") <= score(narrowRecs, "espresso") {
		t.Errorf("espresso: wide window score %v should exceed narrow window score %v",
			score(wideRecs, "espresso"), score(narrowRecs, "espresso"))
	}
}
