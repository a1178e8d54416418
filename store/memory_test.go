package store

import (
	"context"
	"testing"
	"time"

	"github.com/rushteam/menukit/core"
)

func TestMemoryStore_GetSet(t *testing.T) {
	st := NewMemoryStore()
	defer st.Close()
	ctx := context.Background()

	if _, err := st.Get(ctx, "missing"); !core.IsStoreNotFound(err) {
		t.Errorf("Get(missing) error = %v, want store not found", err)
	}

	if err := st.Set(ctx, "menu:items", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := st.Get(ctx, "menu:items")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Get() = %q, want %q", got, `[]`)
	}

	if err := st.Delete(ctx, "menu:items"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := st.Get(ctx, "menu:items"); !core.IsStoreNotFound(err) {
		t.Errorf("Get after Delete error = %v, want store not found", err)
	}
}

func TestMemoryStore_BatchOps(t *testing.T) {
	st := NewMemoryStore()
	defer st.Close()
	ctx := context.Background()

	kvs := map[string][]byte{
		"orders:alice": []byte(`[{"id":"o1"}]`),
		"orders:bob":   []byte(`[]`),
	}
	if err := st.BatchSet(ctx, kvs); err != nil {
		t.Fatalf("BatchSet() error = %v", err)
	}

	got, err := st.BatchGet(ctx, []string{"orders:alice", "orders:bob", "orders:carol"})
	if err != nil {
		t.Fatalf("BatchGet() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len(got) = %d, want 2 (missing keys omitted)", len(got))
	}
	if string(got["orders:alice"]) != `[{"id":"o1"}]` {
		t.Errorf("orders:alice = %q", got["orders:alice"])
	}
}

func TestMemoryStore_ZSetOrdering(t *testing.T) {
	st := NewMemoryStore()
	defer st.Close()
	ctx := context.Background()

	// popular ranking: espresso 42, latte 17, croissant 17, tea 3
	seeds := map[string]float64{
		"espresso":  42,
		"latte":     17,
		"croissant": 17,
		"tea":       3,
	}
	for member, score := range seeds {
		if err := st.ZAdd(ctx, "popular:items", score, member); err != nil {
			t.Fatalf("ZAdd(%s) error = %v", member, err)
		}
	}

	got, err := st.ZRange(ctx, "popular:items", 0, 2)
	if err != nil {
		t.Fatalf("ZRange() error = %v", err)
	}
	// ties resolve lexically: croissant before latte at score 17
	want := []string{"espresso", "croissant", "latte"}
	if len(got) != len(want) {
		t.Fatalf("ZRange() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ZRange()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	score, err := st.ZScore(ctx, "popular:items", "espresso")
	if err != nil {
		t.Fatalf("ZScore() error = %v", err)
	}
	if score != 42 {
		t.Errorf("ZScore(espresso) = %v, want 42", score)
	}
	if _, err := st.ZScore(ctx, "popular:items", "missing"); !core.IsStoreNotFound(err) {
		t.Errorf("ZScore(missing) error = %v, want store not found", err)
	}
}

func TestMemoryStore_Hash(t *testing.T) {
	st := NewMemoryStore()
	defer st.Close()
	ctx := context.Background()

	if err := st.HSet(ctx, "taste:alice", "coffee", []byte("0.9")); err != nil {
		t.Fatalf("HSet() error = %v", err)
	}
	if err := st.HSet(ctx, "taste:alice", "pastry", []byte("0.4")); err != nil {
		t.Fatalf("HSet() error = %v", err)
	}

	got, err := st.HGet(ctx, "taste:alice", "coffee")
	if err != nil {
		t.Fatalf("HGet() error = %v", err)
	}
	if string(got) != "0.9" {
		t.Errorf("HGet() = %q, want 0.9", got)
	}

	all, err := st.HGetAll(ctx, "taste:alice")
	if err != nil {
		t.Fatalf("HGetAll() error = %v", err)
	}
	if len(all) != 2 || string(all["coffee"]) != "0.9" || string(all["pastry"]) != "0.4" {
		t.Errorf("HGetAll() = %v, want coffee=0.9 pastry=0.4", all)
	}

	if _, err := st.HGet(ctx, "taste:alice", "tea"); !core.IsStoreNotFound(err) {
		t.Errorf("HGet(missing field) error = %v, want store not found", err)
	}
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	st := NewMemoryStore()
	defer st.Close()
	ctx := context.Background()

	if err := st.Set(ctx, "menu:items", []byte(`[]`), 1); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, err := st.Get(ctx, "menu:items"); err != nil {
		t.Fatalf("Get() before expiry error = %v", err)
	}

	// rewrite the expiry into the past instead of sleeping
	st.mu.Lock()
	past := time.Now().Add(-time.Second)
	st.data["menu:items"].ttl = &past
	st.mu.Unlock()

	if _, err := st.Get(ctx, "menu:items"); !core.IsStoreNotFound(err) {
		t.Errorf("Get() after expiry error = %v, want store not found", err)
	}

	// BatchGet also skips expired entries
	got, err := st.BatchGet(ctx, []string{"menu:items"})
	if err != nil {
		t.Fatalf("BatchGet() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("BatchGet() returned expired entry: %v", got)
	}
}

func TestMemoryStore_DeleteClearsZSet(t *testing.T) {
	st := NewMemoryStore()
	defer st.Close()
	ctx := context.Background()

	if err := st.ZAdd(ctx, "popular:items", 10, "espresso"); err != nil {
		t.Fatalf("ZAdd() error = %v", err)
	}
	if err := st.Delete(ctx, "popular:items"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got, err := st.ZRange(ctx, "popular:items", 0, -1)
	if err != nil {
		t.Fatalf("ZRange() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ZRange() after Delete = %v, want empty", got)
	}
}
