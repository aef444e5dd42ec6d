package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cdinventory/cdinventory/internal/config"
	"github.com/cdinventory/cdinventory/internal/importer"
	"github.com/cdinventory/cdinventory/internal/logging"
	"github.com/cdinventory/cdinventory/internal/model"
	"github.com/cdinventory/cdinventory/internal/store"
)

// errUsage is returned by run when no directory was given.
var errUsage = errors.New("usage")

func main() {
	// Handle interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdout)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("cdinventory-import", flag.ContinueOnError)
	flags.SetOutput(out)

	// Command line flags
	var (
		dirFlag        = flags.String("dir", "", "Directory of ripped albums to scan")
		startIDFlag    = flags.Int("start-id", 0, "First ID to assign (default: one past the highest existing ID)")
		configFlag     = flags.String("config", config.DefaultPath(), "Path to config file")
		dryRunFlag     = flags.Bool("dry-run", false, "List albums without saving")
		initConfigFlag = flags.Bool("init-config", false, "Write a config file with default settings and exit")
	)

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *initConfigFlag {
		return initConfig(*configFlag, out)
	}

	dir := *dirFlag
	if dir == "" {
		dir = flags.Arg(0)
	}
	if dir == "" {
		fmt.Fprintln(out, "CD Inventory Import - Add ripped albums to the inventory")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintln(out, "  cdinventory-import -dir <DIR> [options]")
		fmt.Fprintln(out, "  cdinventory-import <DIR> [options]")
		fmt.Fprintln(out, "  cdinventory-import -init-config [-config <FILE>]")
		fmt.Fprintln(out)
		flags.PrintDefaults()
		return errUsage
	}

	settings, err := config.Load(*configFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := logging.Open(settings.LogLevel, settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	gateway := store.NewGateway(settings.DataFile)
	existing, err := gateway.Load()
	if err != nil && !errors.Is(err, store.ErrNoData) {
		return err
	}
	inv := model.NewInventory(existing...)

	scanner := importer.NewScanner(settings.ImportConcurrency, logger)
	albums, err := scanner.Scan(ctx, dir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}

	startID := *startIDFlag
	if startID == 0 {
		startID = nextID(existing)
	}

	records := importer.Records(albums, startID)
	for i, rec := range records {
		marker := "  "
		if !albums[i].Tagged {
			marker = "? "
		}
		fmt.Fprintln(out, marker+rec.String())
		inv.Add(rec)
	}

	if *dryRunFlag {
		fmt.Fprintf(out, "\n[Dry run - %d album(s) not saved]\n", len(records))
		return nil
	}

	if err := gateway.Save(inv.List()); err != nil {
		return err
	}
	logger.WithField("added", len(records)).Info("Imported albums")
	fmt.Fprintf(out, "\nAdded %d album(s); inventory now holds %d record(s) in %s\n", len(records), inv.Len(), gateway.Path())
	return nil
}

// initConfig writes the default settings to path unless a file is already there.
func initConfig(path string, out io.Writer) error {
	if path == "" {
		return errors.New("no config path; pass -config")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := config.DefaultSettings().Save(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(out, "Wrote default settings to %s\n", path)
	return nil
}

// nextID returns one past the highest ID in records, or 1.
func nextID(records []model.Record) int {
	next := 1
	for _, r := range records {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return next
}
