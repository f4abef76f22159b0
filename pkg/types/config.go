// Package types defines the configuration shared by the mortalidash
// commands and its validation errors.
package types

import (
	"errors"
	"path/filepath"
)

// Default dataset file names, as published with the 2019 release.
const (
	DefaultMortalityFile = "NoFetal2019.xlsx"
	DefaultGeographyFile = "Divipola.xlsx"
	DefaultCausesFile    = "CodigosDeMuerte.xlsx"
	DefaultListenAddr    = ":8050"
)

// Config holds the resolved settings for one command invocation.
type Config struct {
	DataDir       string `json:"data_dir" yaml:"data_dir"`
	ListenAddr    string `json:"listen_addr" yaml:"listen_addr"`
	MortalityFile string `json:"mortality_file" yaml:"mortality_file"`
	GeographyFile string `json:"geography_file" yaml:"geography_file"`
	CausesFile    string `json:"causes_file" yaml:"causes_file"`
}

// Config validation errors.
var (
	ErrDataDirEmpty     = errors.New("data_dir must not be empty")
	ErrListenAddrEmpty  = errors.New("listen_addr must not be empty")
	ErrDatasetFileEmpty = errors.New("dataset file name must not be empty")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.ListenAddr == "" {
		return ErrListenAddrEmpty
	}
	if c.MortalityFile == "" || c.GeographyFile == "" || c.CausesFile == "" {
		return ErrDatasetFileEmpty
	}
	return nil
}

// MortalityPath returns the full path of the mortality dataset.
func (c Config) MortalityPath() string {
	return filepath.Join(c.DataDir, c.MortalityFile)
}

// GeographyPath returns the full path of the geography dataset.
func (c Config) GeographyPath() string {
	return filepath.Join(c.DataDir, c.GeographyFile)
}

// CausesPath returns the full path of the cause-code dataset.
func (c Config) CausesPath() string {
	return filepath.Join(c.DataDir, c.CausesFile)
}
