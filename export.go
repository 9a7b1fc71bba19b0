package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// runExport writes a snapshot of one store to a CSV or Excel file so
// the data can be shared outside the tool.
func runExport(app *App, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	storeName := fs.String("store", "orders", "Store to export (products, costs, orders)")
	format := fs.String("format", "csv", "Output format (csv or xlsx)")
	out := fs.String("out", "", "Output file (defaults to <store>.<format>)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var sheet string
	var headers []string
	var data [][]string

	switch *storeName {
	case "products":
		sheet = "Products"
		headers = []string{"Product Code", "Product Name", "Grams Used", "Sale Price"}
		for _, p := range app.Catalog.List() {
			data = append(data, []string{p.Code, p.Name, fmt.Sprintf("%.2f", p.GramsUsed), fmt.Sprintf("%.2f", p.SalePrice)})
		}
	case "costs":
		sheet = "FilamentCosts"
		headers = []string{"Color", "Cost"}
		for _, c := range app.Costs.List() {
			data = append(data, []string{c.Color, fmt.Sprintf("%.2f", c.CostPerGram)})
		}
	case "orders":
		sheet = "Orders"
		headers = []string{
			"Customer Name", "Product Code", "Product Name", "Filament Color",
			"Order Date", "Delivery Date", "Assigned To", "Cost", "Profit",
			"Is Printed", "Is Delivered", "Message",
		}
		for _, o := range app.Ledger.List() {
			data = append(data, []string{
				o.CustomerName, o.ProductCode, o.ProductName, o.FilamentColor,
				o.OrderDate, o.DeliveryDate, o.AssignedTo,
				fmt.Sprintf("%.2f", o.Cost), fmt.Sprintf("%.2f", o.Profit),
				yn(o.IsPrinted), yn(o.IsDelivered), o.Message,
			})
		}
	default:
		return fmt.Errorf("export: unknown store %q (products, costs, orders)", *storeName)
	}

	path := *out
	if path == "" {
		path = *storeName + "." + *format
	}

	switch *format {
	case "csv":
		if err := exportCSV(path, headers, data); err != nil {
			return err
		}
	case "xlsx":
		if err := exportExcel(path, sheet, headers, data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("export: unknown format %q (csv or xlsx)", *format)
	}

	app.Log.Info().Str("store", *storeName).Str("file", path).Int("rows", len(data)).Msg("exported")
	return nil
}

// exportCSV writes data to a CSV file.
func exportCSV(path string, headers []string, data [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write CSV headers: %w", err)
	}
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}
	return nil
}

// exportExcel writes data to an Excel file.
func exportExcel(path, sheetName string, headers []string, data [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range data {
		for colIdx, value := range row {
			cell := fmt.Sprintf("%s%d", string(rune('A'+colIdx)), rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 15)
	}

	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
