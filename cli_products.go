package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"printshop/internal/validation"
)

func runProducts(app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("products: missing subcommand (list, add, update)")
	}
	switch args[0] {
	case "list":
		return listProducts(app)
	case "add":
		return addProduct(app, args[1:])
	case "update":
		return updateProduct(app, args[1:])
	default:
		return fmt.Errorf("products: unknown subcommand %q", args[0])
	}
}

func listProducts(app *App) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tGRAMS USED\tSALE PRICE")
	for _, p := range app.Catalog.List() {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\n", p.Code, p.Name, p.GramsUsed, p.SalePrice)
	}
	return w.Flush()
}

func addProduct(app *App, args []string) error {
	fs := flag.NewFlagSet("products add", flag.ContinueOnError)
	code := fs.String("code", "", "Product code (unique)")
	name := fs.String("name", "", "Product name (unique)")
	grams := fs.String("grams", "0", "Grams of filament used per unit")
	price := fs.String("price", "0", "Sale price per unit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var ve validation.ValidationErrors
	validation.RequireField(&ve, "code", *code)
	validation.RequireField(&ve, "name", *name)
	if ve.HasErrors() {
		return &ve
	}
	gramsUsed, err := validation.ParseNonNegativeFloat("grams", *grams)
	if err != nil {
		return err
	}
	salePrice, err := validation.ParseNonNegativeFloat("price", *price)
	if err != nil {
		return err
	}

	if err := app.Catalog.Add(*code, *name, gramsUsed, salePrice); err != nil {
		return err
	}
	app.Log.Info().Str("code", *code).Str("name", *name).Msg("product added")
	return nil
}

func updateProduct(app *App, args []string) error {
	fs := flag.NewFlagSet("products update", flag.ContinueOnError)
	code := fs.String("code", "", "Product code to edit (the code itself cannot change)")
	name := fs.String("name", "", "New product name")
	grams := fs.String("grams", "", "New grams used per unit")
	price := fs.String("price", "", "New sale price per unit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var ve validation.ValidationErrors
	validation.RequireField(&ve, "code", *code)
	if ve.HasErrors() {
		return &ve
	}

	// Fields left blank keep their current values.
	current, err := app.Catalog.FindByCode(*code)
	if err != nil {
		return err
	}
	newName := current.Name
	if *name != "" {
		newName = *name
	}
	gramsUsed := current.GramsUsed
	if *grams != "" {
		if gramsUsed, err = validation.ParseNonNegativeFloat("grams", *grams); err != nil {
			return err
		}
	}
	salePrice := current.SalePrice
	if *price != "" {
		if salePrice, err = validation.ParseNonNegativeFloat("price", *price); err != nil {
			return err
		}
	}

	if err := app.Catalog.Update(*code, newName, gramsUsed, salePrice); err != nil {
		return err
	}
	app.Log.Info().Str("code", *code).Msg("product updated")
	return nil
}
