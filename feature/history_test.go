package feature

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/rushteam/menukit/provider"
)

func TestHistoryTasteProvider_DerivesShares(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	static := provider.NewStaticProvider(provider.SampleMenu(), provider.SampleOrders(now))
	p := NewHistoryTasteProvider(static, static)

	got, err := p.GetTastes(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetTastes() error = %v", err)
	}

	// alice: latte 4 + cappuccino 1 (coffee), croissant 3 + muffin 1 (pastry), total 9
	wants := map[string]float64{
		"coffee": 5.0 / 9.0,
		"pastry": 4.0 / 9.0,
		"drink":  5.0 / 9.0,
		"food":   4.0 / 9.0,
	}
	for key, want := range wants {
		if math.Abs(got[key]-want) > 1e-9 {
			t.Errorf("tastes[%s] = %v, want %v", key, got[key], want)
		}
	}
	if _, ok := got["tea"]; ok {
		t.Error("taste for never-ordered subcategory present")
	}
}

func TestHistoryTasteProvider_EmptyHistory(t *testing.T) {
	static := provider.NewStaticProvider(provider.SampleMenu(), nil)
	p := NewHistoryTasteProvider(static, static)

	got, err := p.GetTastes(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetTastes() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("tastes = %v, want empty for empty history", got)
	}
}
