package store

import (
	"fmt"
	"os"

	"printshop/internal/models"
)

// Column layout of the filament cost workbook.
var costColumns = []string{"Color", "Cost"}

// FallbackCostPerGram prices any color not present in the table.
// Orders may carry free-text colors that staff haven't added yet, so
// unknown lookups price at this rate instead of failing.
const FallbackCostPerGram = 0.10

func defaultCosts() []models.FilamentCost {
	return []models.FilamentCost{
		{Color: "Blue", CostPerGram: 0.10},
		{Color: "Pink", CostPerGram: 0.12},
		{Color: "White", CostPerGram: 0.08},
		{Color: "Black", CostPerGram: 0.11},
	}
}

// CostTable maps filament color to cost per gram. Loaded fully into
// memory, whole file rewritten on every mutation.
type CostTable struct {
	path  string
	costs []models.FilamentCost
}

// LoadCostTable reads the cost workbook at path. A missing file is
// created pre-populated with the built-in defaults. An unreadable
// file falls back to the defaults in memory for the run and returns a
// *CorruptError for the caller to report.
func LoadCostTable(path string) (*CostTable, error) {
	t := &CostTable{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.costs = defaultCosts()
		if err := t.save(); err != nil {
			return nil, fmt.Errorf("create cost table file: %w", err)
		}
		return t, nil
	}

	headers, rows, err := readWorkbook(path)
	if err != nil {
		t.costs = defaultCosts()
		return t, &CorruptError{Path: path, Err: err}
	}
	if !matchColumns(headers, costColumns) {
		t.costs = defaultCosts()
		return t, &CorruptError{Path: path, Err: fmt.Errorf("expected columns %v, got %v", costColumns, headers)}
	}

	var costs []models.FilamentCost
	for i, row := range rows {
		color := cell(row, 0)
		if color == "" {
			continue
		}
		cost, err := cellFloat(row, 1)
		if err != nil {
			t.costs = defaultCosts()
			return t, &CorruptError{Path: path, Err: fmt.Errorf("row %d: %w", i+2, err)}
		}
		costs = append(costs, models.FilamentCost{Color: color, CostPerGram: cost})
	}
	t.costs = costs
	return t, nil
}

// CostPerGram returns the stored rate for color, or
// FallbackCostPerGram when the color is not in the table.
func (t *CostTable) CostPerGram(color string) float64 {
	for _, c := range t.costs {
		if c.Color == color {
			return c.CostPerGram
		}
	}
	return FallbackCostPerGram
}

// SetCost updates the rate for color, adding the entry if it does not
// exist yet.
func (t *CostTable) SetCost(color string, costPerGram float64) error {
	for i := range t.costs {
		if t.costs[i].Color != color {
			continue
		}
		prev := t.costs[i].CostPerGram
		t.costs[i].CostPerGram = costPerGram
		if err := t.save(); err != nil {
			t.costs[i].CostPerGram = prev
			return err
		}
		return nil
	}
	t.costs = append(t.costs, models.FilamentCost{Color: color, CostPerGram: costPerGram})
	if err := t.save(); err != nil {
		t.costs = t.costs[:len(t.costs)-1]
		return err
	}
	return nil
}

// AddColor appends a new color entry, failing with ErrDuplicate if
// the color is already present.
func (t *CostTable) AddColor(color string, costPerGram float64) error {
	for _, c := range t.costs {
		if c.Color == color {
			return fmt.Errorf("color %s: %w", color, ErrDuplicate)
		}
	}
	return t.SetCost(color, costPerGram)
}

// List returns all entries in file order.
func (t *CostTable) List() []models.FilamentCost {
	return append([]models.FilamentCost(nil), t.costs...)
}

func (t *CostTable) save() error {
	rows := make([][]interface{}, 0, len(t.costs))
	for _, c := range t.costs {
		rows = append(rows, []interface{}{c.Color, c.CostPerGram})
	}
	return writeWorkbook(t.path, costColumns, rows)
}
