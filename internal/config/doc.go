// Package config provides configuration management for cdinventory.
//
// This package handles:
//   - Loading and saving settings from TOML files
//   - Default configuration values
//   - Locating the per-user config file
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Inventory stored in ./CDInventory.dat
//	// Inventory starts empty (no load on startup)
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // file exists but could not be parsed
//	}
//
// A missing file is not an error; defaults are returned.
package config
