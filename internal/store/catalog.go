package store

import (
	"fmt"
	"os"

	"printshop/internal/models"
)

// Column layout of the product catalog workbook.
var catalogColumns = []string{"Product Code", "Product Name", "Grams Used", "Sale Price"}

// Catalog is the product reference table. It is loaded fully into
// memory and the backing workbook is rewritten on every mutation.
type Catalog struct {
	path     string
	products []models.Product
}

// LoadCatalog reads the catalog workbook at path, creating an empty
// one if it does not exist yet. If the file exists but cannot be
// parsed into the expected columns, the returned catalog is empty but
// usable for the rest of the run, and the error is a *CorruptError
// the caller should report.
func LoadCatalog(path string) (*Catalog, error) {
	c := &Catalog{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := c.save(); err != nil {
			return nil, fmt.Errorf("create catalog file: %w", err)
		}
		return c, nil
	}

	headers, rows, err := readWorkbook(path)
	if err != nil {
		return c, &CorruptError{Path: path, Err: err}
	}
	if !matchColumns(headers, catalogColumns) {
		return c, &CorruptError{Path: path, Err: fmt.Errorf("expected columns %v, got %v", catalogColumns, headers)}
	}

	var products []models.Product
	for i, row := range rows {
		p := models.Product{Code: cell(row, 0), Name: cell(row, 1)}
		if p.Code == "" && p.Name == "" {
			continue
		}
		if p.GramsUsed, err = cellFloat(row, 2); err != nil {
			return c, &CorruptError{Path: path, Err: fmt.Errorf("row %d: %w", i+2, err)}
		}
		if p.SalePrice, err = cellFloat(row, 3); err != nil {
			return c, &CorruptError{Path: path, Err: fmt.Errorf("row %d: %w", i+2, err)}
		}
		products = append(products, p)
	}
	c.products = products
	return c, nil
}

// FindByCode looks a product up by its code.
func (c *Catalog) FindByCode(code string) (models.Product, error) {
	for _, p := range c.products {
		if p.Code == code {
			return p, nil
		}
	}
	return models.Product{}, fmt.Errorf("product %s: %w", code, ErrNotFound)
}

// Add appends a new product. Both the code and the name must be
// unique across the catalog (case-sensitive exact match); a collision
// on either fails with ErrDuplicate and writes nothing.
func (c *Catalog) Add(code, name string, gramsUsed, salePrice float64) error {
	for _, p := range c.products {
		if p.Code == code {
			return fmt.Errorf("product code %s: %w", code, ErrDuplicate)
		}
		if p.Name == name {
			return fmt.Errorf("product name %s: %w", name, ErrDuplicate)
		}
	}
	c.products = append(c.products, models.Product{Code: code, Name: name, GramsUsed: gramsUsed, SalePrice: salePrice})
	if err := c.save(); err != nil {
		c.products = c.products[:len(c.products)-1]
		return err
	}
	return nil
}

// Update edits the product with the given code. The code is the
// lookup key and cannot itself be changed.
func (c *Catalog) Update(code, name string, gramsUsed, salePrice float64) error {
	for i := range c.products {
		if c.products[i].Code != code {
			continue
		}
		prev := c.products[i]
		c.products[i].Name = name
		c.products[i].GramsUsed = gramsUsed
		c.products[i].SalePrice = salePrice
		if err := c.save(); err != nil {
			c.products[i] = prev
			return err
		}
		return nil
	}
	return fmt.Errorf("product %s: %w", code, ErrNotFound)
}

// List returns all products in file (insertion) order.
func (c *Catalog) List() []models.Product {
	return append([]models.Product(nil), c.products...)
}

func (c *Catalog) save() error {
	rows := make([][]interface{}, 0, len(c.products))
	for _, p := range c.products {
		rows = append(rows, []interface{}{p.Code, p.Name, p.GramsUsed, p.SalePrice})
	}
	return writeWorkbook(c.path, catalogColumns, rows)
}
