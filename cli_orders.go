package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"printshop/internal/models"
	"printshop/internal/store"
	"printshop/internal/validation"
)

func runOrders(app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("orders: missing subcommand (list, add, update, search)")
	}
	switch args[0] {
	case "list":
		return listOrders(app)
	case "add":
		return addOrder(app, args[1:])
	case "update":
		return updateOrder(app, args[1:])
	case "search":
		return searchOrders(app, args[1:])
	default:
		return fmt.Errorf("orders: unknown subcommand %q", args[0])
	}
}

func listOrders(app *App) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCUSTOMER\tPRODUCT\tCOLOR\tORDERED\tDELIVERY\tASSIGNED\tCOST\tPROFIT\tPRINTED\tDELIVERED\tMESSAGE")
	for i, o := range app.Ledger.List() {
		fmt.Fprintf(w, "%d\t%s\t%s (%s)\t%s\t%s\t%s\t%s\t%.2f\t%.2f\t%s\t%s\t%s\n",
			i, o.CustomerName, o.ProductName, o.ProductCode, o.FilamentColor,
			o.OrderDate, o.DeliveryDate, o.AssignedTo, o.Cost, o.Profit,
			yn(o.IsPrinted), yn(o.IsDelivered), o.Message)
	}
	return w.Flush()
}

func printIndexedOrders(matches []models.IndexedOrder) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCUSTOMER\tPRODUCT\tCOLOR\tORDERED\tDELIVERY\tASSIGNED\tCOST\tPROFIT\tPRINTED\tDELIVERED\tMESSAGE")
	for _, m := range matches {
		o := m.Order
		fmt.Fprintf(w, "%d\t%s\t%s (%s)\t%s\t%s\t%s\t%s\t%.2f\t%.2f\t%s\t%s\t%s\n",
			m.Index, o.CustomerName, o.ProductName, o.ProductCode, o.FilamentColor,
			o.OrderDate, o.DeliveryDate, o.AssignedTo, o.Cost, o.Profit,
			yn(o.IsPrinted), yn(o.IsDelivered), o.Message)
	}
	return w.Flush()
}

func addOrder(app *App, args []string) error {
	fs := flag.NewFlagSet("orders add", flag.ContinueOnError)
	today := time.Now().Format("2006-01-02")
	customer := fs.String("customer", "", "Customer name")
	product := fs.String("product", "", "Product code")
	color := fs.String("color", "", "Filament color (free text; unknown colors price at the fallback rate)")
	orderDate := fs.String("order-date", today, "Order date (YYYY-MM-DD)")
	deliveryDate := fs.String("delivery-date", "", "Delivery date (YYYY-MM-DD)")
	assigned := fs.String("assigned", "", "Staff member or printer handling the job")
	printed := fs.Bool("printed", false, "Order has been printed")
	delivered := fs.Bool("delivered", false, "Order has been delivered (implies printed)")
	message := fs.String("message", "", "Optional note")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var ve validation.ValidationErrors
	validation.RequireField(&ve, "customer", *customer)
	validation.RequireField(&ve, "product", *product)
	validation.ValidateDate(&ve, "order-date", *orderDate)
	validation.ValidateDate(&ve, "delivery-date", *deliveryDate)
	if ve.HasErrors() {
		return &ve
	}

	input := models.OrderInput{
		CustomerName:  *customer,
		ProductCode:   *product,
		FilamentColor: *color,
		OrderDate:     *orderDate,
		DeliveryDate:  *deliveryDate,
		AssignedTo:    *assigned,
		IsPrinted:     *printed,
		IsDelivered:   *delivered,
		Message:       *message,
	}

	order, err := app.Ledger.AddOrder(input, app.Catalog, app.Costs)
	if errors.Is(err, store.ErrProductNotFound) {
		return fmt.Errorf("%w; add it with 'printshop products add' first", err)
	}
	if err != nil {
		return err
	}
	app.Log.Info().
		Str("customer", order.CustomerName).
		Str("product", order.ProductCode).
		Float64("cost", order.Cost).
		Float64("profit", order.Profit).
		Msg("order added")
	return nil
}

func updateOrder(app *App, args []string) error {
	fs := flag.NewFlagSet("orders update", flag.ContinueOnError)
	index := fs.Int("index", -1, "Row index of the order to edit (see 'orders list')")
	customer := fs.String("customer", "", "Customer name")
	color := fs.String("color", "", "Filament color")
	orderDate := fs.String("order-date", "", "Order date (YYYY-MM-DD)")
	deliveryDate := fs.String("delivery-date", "", "Delivery date (YYYY-MM-DD)")
	assigned := fs.String("assigned", "", "Staff member or printer handling the job")
	printed := fs.Bool("printed", false, "Order has been printed")
	delivered := fs.Bool("delivered", false, "Order has been delivered (implies printed)")
	message := fs.String("message", "", "Optional note")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Start from the current values so flags not given are kept as-is.
	// The product reference and cost/profit snapshots are not editable
	// and have no flags.
	var input models.OrderInput
	orders := app.Ledger.List()
	if *index >= 0 && *index < len(orders) {
		cur := orders[*index]
		input = models.OrderInput{
			CustomerName:  cur.CustomerName,
			FilamentColor: cur.FilamentColor,
			OrderDate:     cur.OrderDate,
			DeliveryDate:  cur.DeliveryDate,
			AssignedTo:    cur.AssignedTo,
			IsPrinted:     cur.IsPrinted,
			IsDelivered:   cur.IsDelivered,
			Message:       cur.Message,
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "customer":
			input.CustomerName = *customer
		case "color":
			input.FilamentColor = *color
		case "order-date":
			input.OrderDate = *orderDate
		case "delivery-date":
			input.DeliveryDate = *deliveryDate
		case "assigned":
			input.AssignedTo = *assigned
		case "printed":
			input.IsPrinted = *printed
		case "delivered":
			input.IsDelivered = *delivered
		case "message":
			input.Message = *message
		}
	})

	var ve validation.ValidationErrors
	validation.ValidateDate(&ve, "order-date", input.OrderDate)
	validation.ValidateDate(&ve, "delivery-date", input.DeliveryDate)
	if ve.HasErrors() {
		return &ve
	}

	if err := app.Ledger.UpdateOrder(*index, input); err != nil {
		return err
	}
	app.Log.Info().Int("index", *index).Msg("order updated")
	return nil
}

func searchOrders(app *App, args []string) error {
	fs := flag.NewFlagSet("orders search", flag.ContinueOnError)
	by := fs.String("by", store.SearchByCustomerName, "Search field (customer_name or product_code)")
	value := fs.String("value", "", "Exact value to match")
	if err := fs.Parse(args); err != nil {
		return err
	}

	matches, err := app.Ledger.Search(*by, *value)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		app.Log.Info().Str("field", *by).Str("value", *value).Msg("no matching orders")
		return nil
	}
	return printIndexedOrders(matches)
}

// Flags display as Y/N, same as they persist.
func yn(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
