package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cdinventory/cdinventory/internal/config"
	"github.com/cdinventory/cdinventory/internal/model"
	"github.com/cdinventory/cdinventory/internal/store"
	"github.com/cdinventory/cdinventory/internal/tui"
)

func main() {
	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	gateway := store.NewGateway(settings.DataFile)
	inv := model.NewInventory()

	if settings.LoadOnStartup {
		records, err := gateway.Load()
		switch {
		case errors.Is(err, store.ErrNoData):
		case err != nil:
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		default:
			inv.Replace(records)
		}
	}

	if err := tui.Run(inv, gateway); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
