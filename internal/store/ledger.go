package store

import (
	"fmt"
	"os"
	"strings"

	"printshop/internal/models"
)

// Canonical column layout of the orders workbook. Older files may be
// missing trailing columns (Message was added later); those are
// filled with empty values on load and written out on the next save.
var ledgerColumns = []string{
	"Customer Name", "Product Code", "Product Name", "Filament Color",
	"Order Date", "Delivery Date", "Assigned To", "Cost", "Profit",
	"Is Printed", "Is Delivered", "Message",
}

// Fields accepted by Ledger.Search.
const (
	SearchByProductCode  = "product_code"
	SearchByCustomerName = "customer_name"
)

// Ledger is the ordered sequence of orders. Orders have no explicit
// primary key; a row's position in the sequence is its identity, and
// appends never reorder existing rows.
type Ledger struct {
	path   string
	orders []models.Order
}

// LoadLedger reads the orders workbook at path, creating an empty one
// with the canonical columns if it does not exist. Columns missing
// relative to the canonical schema are tolerated and filled with
// empty values. An unreadable file falls back to an empty in-memory
// ledger for the run and returns a *CorruptError to report.
func LoadLedger(path string) (*Ledger, error) {
	l := &Ledger{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := l.save(); err != nil {
			return nil, fmt.Errorf("create ledger file: %w", err)
		}
		return l, nil
	}

	headers, rows, err := readWorkbook(path)
	if err != nil {
		return l, &CorruptError{Path: path, Err: err}
	}

	// Map canonical column name to its position in this file; -1 for
	// columns the file does not have yet.
	pos := make(map[string]int, len(ledgerColumns))
	for _, name := range ledgerColumns {
		pos[name] = -1
	}
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if _, ok := pos[h]; ok {
			pos[h] = i
		}
	}

	col := func(row []string, name string) string {
		return cell(row, pos[name])
	}

	var orders []models.Order
	for i, row := range rows {
		o := models.Order{
			CustomerName:  col(row, "Customer Name"),
			ProductCode:   col(row, "Product Code"),
			ProductName:   col(row, "Product Name"),
			FilamentColor: col(row, "Filament Color"),
			OrderDate:     col(row, "Order Date"),
			DeliveryDate:  col(row, "Delivery Date"),
			AssignedTo:    col(row, "Assigned To"),
			IsPrinted:     col(row, "Is Printed") == "Y",
			IsDelivered:   col(row, "Is Delivered") == "Y",
			Message:       col(row, "Message"),
		}
		if o.CustomerName == "" && o.ProductCode == "" {
			continue
		}
		if o.Cost, err = cellFloat(row, pos["Cost"]); err != nil {
			return l, &CorruptError{Path: path, Err: fmt.Errorf("row %d: %w", i+2, err)}
		}
		if o.Profit, err = cellFloat(row, pos["Profit"]); err != nil {
			return l, &CorruptError{Path: path, Err: fmt.Errorf("row %d: %w", i+2, err)}
		}
		orders = append(orders, o)
	}
	l.orders = orders
	return l, nil
}

// AddOrder resolves the product and filament rate, computes the cost
// and profit snapshots, applies the delivered-implies-printed rule,
// appends the order and persists the whole ledger. An unknown product
// code fails with ErrProductNotFound before anything is computed or
// written.
func (l *Ledger) AddOrder(input models.OrderInput, catalog *Catalog, costs *CostTable) (models.Order, error) {
	product, err := catalog.FindByCode(input.ProductCode)
	if err != nil {
		return models.Order{}, fmt.Errorf("product %s: %w", input.ProductCode, ErrProductNotFound)
	}

	rate := costs.CostPerGram(input.FilamentColor)
	cost := product.GramsUsed * rate

	o := models.Order{
		CustomerName:  input.CustomerName,
		ProductCode:   input.ProductCode,
		ProductName:   product.Name,
		FilamentColor: input.FilamentColor,
		OrderDate:     input.OrderDate,
		DeliveryDate:  input.DeliveryDate,
		AssignedTo:    input.AssignedTo,
		Cost:          cost,
		Profit:        product.SalePrice - cost,
		IsPrinted:     input.IsPrinted,
		IsDelivered:   input.IsDelivered,
		Message:       input.Message,
	}
	if o.IsDelivered {
		o.IsPrinted = true
	}

	l.orders = append(l.orders, o)
	if err := l.save(); err != nil {
		l.orders = l.orders[:len(l.orders)-1]
		return models.Order{}, err
	}
	return o, nil
}

// UpdateOrder overwrites the order at the given row index with the
// supplied fields. The product reference and the cost/profit
// snapshots captured at creation never change, whatever the input
// says. The delivered-implies-printed rule is applied to the new flag
// values before saving.
func (l *Ledger) UpdateOrder(index int, input models.OrderInput) error {
	if index < 0 || index >= len(l.orders) {
		return fmt.Errorf("index %d: %w", index, ErrIndexOutOfRange)
	}

	prev := l.orders[index]
	o := prev
	o.CustomerName = input.CustomerName
	o.FilamentColor = input.FilamentColor
	o.OrderDate = input.OrderDate
	o.DeliveryDate = input.DeliveryDate
	o.AssignedTo = input.AssignedTo
	o.IsPrinted = input.IsPrinted
	o.IsDelivered = input.IsDelivered
	o.Message = input.Message
	if o.IsDelivered {
		o.IsPrinted = true
	}

	l.orders[index] = o
	if err := l.save(); err != nil {
		l.orders[index] = prev
		return err
	}
	return nil
}

// Search filters orders by exact match on one field, preserving the
// original relative order. No matches yields an empty result, not an
// error.
func (l *Ledger) Search(field, value string) ([]models.IndexedOrder, error) {
	if field != SearchByProductCode && field != SearchByCustomerName {
		return nil, fmt.Errorf("unknown search field %q", field)
	}
	var matches []models.IndexedOrder
	for i, o := range l.orders {
		candidate := o.CustomerName
		if field == SearchByProductCode {
			candidate = o.ProductCode
		}
		if candidate == value {
			matches = append(matches, models.IndexedOrder{Index: i, Order: o})
		}
	}
	return matches, nil
}

// List returns all orders in file order.
func (l *Ledger) List() []models.Order {
	return append([]models.Order(nil), l.orders...)
}

func (l *Ledger) save() error {
	rows := make([][]interface{}, 0, len(l.orders))
	for _, o := range l.orders {
		rows = append(rows, []interface{}{
			o.CustomerName, o.ProductCode, o.ProductName, o.FilamentColor,
			o.OrderDate, o.DeliveryDate, o.AssignedTo, o.Cost, o.Profit,
			yn(o.IsPrinted), yn(o.IsDelivered), o.Message,
		})
	}
	return writeWorkbook(l.path, ledgerColumns, rows)
}

// Flags persist as literal Y/N strings.
func yn(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
