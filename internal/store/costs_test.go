package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tempCostTable(t *testing.T) *CostTable {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filament_costs.xlsx")
	ct, err := LoadCostTable(path)
	if err != nil {
		t.Fatal(err)
	}
	return ct
}

func TestCostTableSeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filament_costs.xlsx")
	ct, err := LoadCostTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected backing file to be created: %v", err)
	}

	want := []struct {
		color string
		cost  float64
	}{
		{"Blue", 0.10}, {"Pink", 0.12}, {"White", 0.08}, {"Black", 0.11},
	}
	entries := ct.List()
	if len(entries) != len(want) {
		t.Fatalf("expected %d default entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].Color != w.color || !approx(entries[i].CostPerGram, w.cost) {
			t.Errorf("entry %d: expected %s=%v, got %s=%v", i, w.color, w.cost, entries[i].Color, entries[i].CostPerGram)
		}
	}

	// The seeded file reads back identically.
	reloaded, err := LoadCostTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded.List()) != 4 {
		t.Errorf("expected 4 entries after reload, got %d", len(reloaded.List()))
	}
}

func TestCostPerGramFallbackForUnknownColor(t *testing.T) {
	ct := tempCostTable(t)
	if got := ct.CostPerGram("Purple"); !approx(got, 0.10) {
		t.Errorf("expected fallback 0.10 for unknown color, got %v", got)
	}
}

func TestCostPerGramKnownColor(t *testing.T) {
	ct := tempCostTable(t)
	if got := ct.CostPerGram("Pink"); !approx(got, 0.12) {
		t.Errorf("expected 0.12 for Pink, got %v", got)
	}
}

func TestAddColorRejectsDuplicate(t *testing.T) {
	ct := tempCostTable(t)
	err := ct.AddColor("Blue", 0.15)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if got := ct.CostPerGram("Blue"); !approx(got, 0.10) {
		t.Errorf("rejected add changed stored cost: %v", got)
	}
}

func TestAddColorAppends(t *testing.T) {
	ct := tempCostTable(t)
	if err := ct.AddColor("Purple", 0.14); err != nil {
		t.Fatal(err)
	}
	if got := ct.CostPerGram("Purple"); !approx(got, 0.14) {
		t.Errorf("expected 0.14, got %v", got)
	}
	entries := ct.List()
	if entries[len(entries)-1].Color != "Purple" {
		t.Errorf("new color should append at the end, got %+v", entries)
	}
}

func TestSetCostUpdatesExisting(t *testing.T) {
	ct := tempCostTable(t)
	if err := ct.SetCost("Blue", 0.20); err != nil {
		t.Fatal(err)
	}
	if got := ct.CostPerGram("Blue"); !approx(got, 0.20) {
		t.Errorf("expected 0.20, got %v", got)
	}
	if len(ct.List()) != 4 {
		t.Errorf("update should not add an entry: %d", len(ct.List()))
	}
}

func TestSetCostAddsWhenMissing(t *testing.T) {
	ct := tempCostTable(t)
	if err := ct.SetCost("Glow Green", 0.25); err != nil {
		t.Fatal(err)
	}
	if got := ct.CostPerGram("Glow Green"); !approx(got, 0.25) {
		t.Errorf("expected 0.25, got %v", got)
	}
}

func TestCostTableCorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filament_costs.xlsx")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	ct, err := LoadCostTable(path)
	var corrupt *CorruptError
	if !errors.As(err, &corrupt) {
		t.Fatalf("expected CorruptError, got %v", err)
	}
	if len(ct.List()) != 4 {
		t.Fatalf("expected in-memory defaults after corrupt load, got %d entries", len(ct.List()))
	}
	if got := ct.CostPerGram("White"); !approx(got, 0.08) {
		t.Errorf("expected default 0.08 for White, got %v", got)
	}
}
