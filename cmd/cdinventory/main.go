package main

import (
	"fmt"
	"os"

	"github.com/cdinventory/cdinventory/internal/config"
	"github.com/cdinventory/cdinventory/internal/logging"
	"github.com/cdinventory/cdinventory/internal/menu"
	"github.com/cdinventory/cdinventory/internal/model"
	"github.com/cdinventory/cdinventory/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := logging.Open(settings.LogLevel, settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	gateway := store.NewGateway(settings.DataFile)
	inv := model.NewInventory()
	ctrl := menu.NewController(inv, gateway, os.Stdin, os.Stdout, logger)

	if settings.LoadOnStartup {
		ctrl.LoadInventory()
	}

	if err := ctrl.Run(); err != nil {
		logger.WithError(err).WithField("path", gateway.Path()).Error("Inventory session aborted")
		return err
	}
	return nil
}
