// Config loading for the mortalidash CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/mortalidash/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir       = "data_dir"
	cfgKeyListenAddr    = "listen_addr"
	cfgKeyMortalityFile = "mortality_file"
	cfgKeyGeographyFile = "geography_file"
	cfgKeyCausesFile    = "causes_file"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# mortalidash configuration

# Directory holding the dataset files (optional; overridable by --data-dir)
# data_dir:

# Address the dashboard server binds to
listen_addr: ":8050"

# Dataset file names inside data_dir
mortality_file: NoFetal2019.xlsx
geography_file: Divipola.xlsx
causes_file: CodigosDeMuerte.xlsx
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyListenAddr, types.DefaultListenAddr)
	v.SetDefault(cfgKeyMortalityFile, types.DefaultMortalityFile)
	v.SetDefault(cfgKeyGeographyFile, types.DefaultGeographyFile)
	v.SetDefault(cfgKeyCausesFile, types.DefaultCausesFile)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
