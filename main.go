package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"printshop/internal/config"
	"printshop/internal/store"
)

// App bundles the three stores and the logger. Store instances are
// passed into commands explicitly; there is no ambient global state.
type App struct {
	Catalog *store.Catalog
	Costs   *store.CostTable
	Ledger  *store.Ledger
	Log     zerolog.Logger
}

func main() {
	cfgPath := flag.String("config", "printshop.yaml", "Path to YAML config file")
	dataDir := flag.String("data", "", "Data directory (overrides config)")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	log := newLogger(cfg.LogLevel)

	app, err := openStores(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to open data files")
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var cmdErr error
	switch args[0] {
	case "products":
		cmdErr = runProducts(app, args[1:])
	case "costs":
		cmdErr = runCosts(app, args[1:])
	case "orders":
		cmdErr = runOrders(app, args[1:])
	case "export":
		cmdErr = runExport(app, args[1:])
	default:
		usage()
		os.Exit(2)
	}
	if cmdErr != nil {
		log.Error().Err(cmdErr).Msg("command failed")
		os.Exit(1)
	}
}

// openStores loads all three stores. A corrupt backing file is
// reported and the affected store starts empty (or with defaults) for
// this run; only a failure to create a missing file is fatal.
func openStores(cfg config.Config, log zerolog.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	catalog, err := store.LoadCatalog(cfg.ProductPath())
	if err := reportCorrupt(log, err, "starting with an empty product catalog"); err != nil {
		return nil, err
	}
	costs, err := store.LoadCostTable(cfg.CostPath())
	if err := reportCorrupt(log, err, "falling back to default filament costs"); err != nil {
		return nil, err
	}
	ledger, err := store.LoadLedger(cfg.OrderPath())
	if err := reportCorrupt(log, err, "starting with an empty order ledger"); err != nil {
		return nil, err
	}

	return &App{Catalog: catalog, Costs: costs, Ledger: ledger, Log: log}, nil
}

// reportCorrupt downgrades a CorruptError to a warning and passes any
// other error through.
func reportCorrupt(log zerolog.Logger, err error, fallback string) error {
	var corrupt *store.CorruptError
	if errors.As(err, &corrupt) {
		log.Warn().Str("file", corrupt.Path).Err(corrupt.Err).Msg(fallback)
		return nil
	}
	return err
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(out).With().Timestamp().Logger().Level(lvl)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: printshop [flags] <command> [args]

Commands:
  products list                      Show the product catalog
  products add                       Add a product (-code -name -grams -price)
  products update                    Edit a product (-code -name -grams -price)
  costs list                         Show the filament cost table
  costs add                          Add a color (-color -cost)
  costs set                          Update a color's cost (-color -cost)
  orders list                        Show the order ledger
  orders add                         Record an order (-customer -product -color ...)
  orders update                      Edit an order (-index plus field flags)
  orders search                      Find orders (-by customer_name|product_code -value V)
  export                             Export a store (-store -format csv|xlsx -out FILE)

Flags:
`)
	flag.PrintDefaults()
}
