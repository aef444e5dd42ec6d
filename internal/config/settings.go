package config

import (
	"os"
	"path/filepath"

	ioutils "github.com/cdinventory/cdinventory/internal/io"
	"github.com/pelletier/go-toml/v2"
)

// DefaultDataFile is the inventory file used when no setting overrides it.
const DefaultDataFile = "CDInventory.dat"

// Settings holds all configuration options.
type Settings struct {
	// Inventory settings
	DataFile      string `toml:"data_file"`
	LoadOnStartup bool   `toml:"load_on_startup"`

	// Logging settings
	LogLevel string `toml:"log_level"` // logrus level name
	LogFile  string `toml:"log_file"`  // empty means stderr

	// Import settings
	ImportConcurrency int `toml:"import_concurrency"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DataFile:      DefaultDataFile,
		LoadOnStartup: false,

		LogLevel: "warning",
		LogFile:  "",

		ImportConcurrency: 4,
	}
}

// DefaultPath returns the per-user config file location,
// e.g. ~/.config/cdinventory/config.toml. It returns "" when the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cdinventory", "config.toml")
}

// Load reads settings from a TOML file. Keys missing from the file keep
// their default values; a missing file yields the defaults.
func Load(path string) (*Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if settings.DataFile == "" {
		settings.DataFile = DefaultDataFile
	}
	if settings.ImportConcurrency < 1 {
		settings.ImportConcurrency = 1
	}

	return settings, nil
}

// Save writes settings to a TOML file, creating parent directories.
func (s *Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}

	return ioutils.WriteFileAtomic(path, data)
}
