package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"printshop/internal/validation"
)

func runCosts(app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("costs: missing subcommand (list, add, set)")
	}
	switch args[0] {
	case "list":
		return listCosts(app)
	case "add":
		return addColor(app, args[1:])
	case "set":
		return setCost(app, args[1:])
	default:
		return fmt.Errorf("costs: unknown subcommand %q", args[0])
	}
}

func listCosts(app *App) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLOR\tCOST PER GRAM")
	for _, c := range app.Costs.List() {
		fmt.Fprintf(w, "%s\t%.2f\n", c.Color, c.CostPerGram)
	}
	return w.Flush()
}

func parseColorCost(name string, args []string) (string, float64, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	color := fs.String("color", "", "Filament color name")
	cost := fs.String("cost", "", "Cost per gram")
	if err := fs.Parse(args); err != nil {
		return "", 0, err
	}

	var ve validation.ValidationErrors
	validation.RequireField(&ve, "color", *color)
	validation.RequireField(&ve, "cost", *cost)
	if ve.HasErrors() {
		return "", 0, &ve
	}
	costPerGram, err := validation.ParseNonNegativeFloat("cost", *cost)
	if err != nil {
		return "", 0, err
	}
	return *color, costPerGram, nil
}

func addColor(app *App, args []string) error {
	color, costPerGram, err := parseColorCost("costs add", args)
	if err != nil {
		return err
	}
	if err := app.Costs.AddColor(color, costPerGram); err != nil {
		return err
	}
	app.Log.Info().Str("color", color).Float64("cost", costPerGram).Msg("color added")
	return nil
}

func setCost(app *App, args []string) error {
	color, costPerGram, err := parseColorCost("costs set", args)
	if err != nil {
		return err
	}
	if err := app.Costs.SetCost(color, costPerGram); err != nil {
		return err
	}
	app.Log.Info().Str("color", color).Float64("cost", costPerGram).Msg("cost updated")
	return nil
}
