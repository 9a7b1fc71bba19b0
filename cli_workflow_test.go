package main

import (
	"encoding/csv"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"printshop/internal/config"
	"printshop/internal/store"
	"printshop/internal/validation"
)

func setupTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	app, err := openStores(cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return app
}

func TestWorkflowAddProductThenOrder(t *testing.T) {
	app := setupTestApp(t)

	err := runProducts(app, []string{"add", "-code", "P1", "-name", "Widget", "-grams", "100", "-price", "20.00"})
	if err != nil {
		t.Fatal(err)
	}

	err = runOrders(app, []string{"add", "-customer", "Alice", "-product", "P1", "-color", "Blue", "-delivered"})
	if err != nil {
		t.Fatal(err)
	}

	orders := app.Ledger.List()
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	o := orders[0]
	if math.Abs(o.Cost-10.00) > 1e-9 || math.Abs(o.Profit-10.00) > 1e-9 {
		t.Errorf("expected cost/profit 10.00/10.00, got %v/%v", o.Cost, o.Profit)
	}
	if !o.IsPrinted || !o.IsDelivered {
		t.Error("delivered order should also be marked printed")
	}
}

func TestWorkflowOrderForMissingProduct(t *testing.T) {
	app := setupTestApp(t)

	err := runOrders(app, []string{"add", "-customer", "Alice", "-product", "GHOST"})
	if !errors.Is(err, store.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if len(app.Ledger.List()) != 0 {
		t.Error("failed add should not touch the ledger")
	}
}

func TestWorkflowDuplicateProduct(t *testing.T) {
	app := setupTestApp(t)

	if err := runProducts(app, []string{"add", "-code", "P1", "-name", "Widget"}); err != nil {
		t.Fatal(err)
	}
	err := runProducts(app, []string{"add", "-code", "P2", "-name", "Widget"})
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for reused name, got %v", err)
	}
}

func TestWorkflowBadNumericInput(t *testing.T) {
	app := setupTestApp(t)

	err := runProducts(app, []string{"add", "-code", "P1", "-name", "Widget", "-grams", "heavy"})
	if !errors.Is(err, validation.ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if len(app.Catalog.List()) != 0 {
		t.Error("rejected input should not reach the catalog")
	}
}

func TestWorkflowUpdateOrderKeepsUnsetFields(t *testing.T) {
	app := setupTestApp(t)

	if err := runProducts(app, []string{"add", "-code", "P1", "-name", "Widget", "-grams", "100", "-price", "20"}); err != nil {
		t.Fatal(err)
	}
	err := runOrders(app, []string{
		"add", "-customer", "Alice", "-product", "P1", "-color", "Blue",
		"-order-date", "2026-08-01", "-assigned", "Printer 1", "-message", "rush",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Only the customer changes; everything else carries over.
	if err := runOrders(app, []string{"update", "-index", "0", "-customer", "Bob"}); err != nil {
		t.Fatal(err)
	}

	o := app.Ledger.List()[0]
	if o.CustomerName != "Bob" {
		t.Errorf("expected customer Bob, got %s", o.CustomerName)
	}
	if o.FilamentColor != "Blue" || o.AssignedTo != "Printer 1" || o.Message != "rush" {
		t.Errorf("unset flags overwrote fields: %+v", o)
	}
	if o.OrderDate != "2026-08-01" {
		t.Errorf("order date lost: %s", o.OrderDate)
	}
}

func TestWorkflowUpdateOrderBadIndex(t *testing.T) {
	app := setupTestApp(t)

	err := runOrders(app, []string{"update", "-index", "5", "-customer", "Bob"})
	if !errors.Is(err, store.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestWorkflowSearchUnknownField(t *testing.T) {
	app := setupTestApp(t)
	if err := runOrders(app, []string{"search", "-by", "color", "-value", "Blue"}); err == nil {
		t.Fatal("expected error for unknown search field")
	}
}

func TestWorkflowExportOrdersCSV(t *testing.T) {
	app := setupTestApp(t)

	if err := runProducts(app, []string{"add", "-code", "P1", "-name", "Widget", "-grams", "100", "-price", "20"}); err != nil {
		t.Fatal(err)
	}
	if err := runOrders(app, []string{"add", "-customer", "Alice", "-product", "P1", "-color", "Blue"}); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "orders.csv")
	if err := runExport(app, []string{"-store", "orders", "-format", "csv", "-out", out}); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	if records[0][0] != "Customer Name" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "Alice" || records[1][7] != "10.00" {
		t.Errorf("unexpected row: %v", records[1])
	}
}

func TestWorkflowExportUnknownStore(t *testing.T) {
	app := setupTestApp(t)
	if err := runExport(app, []string{"-store", "invoices"}); err == nil {
		t.Fatal("expected error for unknown store")
	}
}
