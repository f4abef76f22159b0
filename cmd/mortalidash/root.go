// Root command and global flags.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mortalidash/internal/paths"
	"github.com/mesh-intelligence/mortalidash/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// cfg holds the configuration resolved by PersistentPreRunE so all
// subcommands can use it.
var cfg types.Config

var rootCmd = &cobra.Command{
	Use:   "mortalidash",
	Short: "Dashboard de mortalidad no fetal Colombia 2019",
	Long: `Mortalidash loads the 2019 Colombian non-fetal mortality datasets
(mortality records, DIVIPOLA geography codes, cause-of-death codes), joins
them into one in-memory table, and serves or exports filterable aggregate
views.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version needs no configuration.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
		if err != nil {
			return err
		}

		cfg = types.Config{
			DataDir:       dataDir,
			ListenAddr:    v.GetString(cfgKeyListenAddr),
			MortalityFile: v.GetString(cfgKeyMortalityFile),
			GeographyFile: v.GetString(cfgKeyGeographyFile),
			CausesFile:    v.GetString(cfgKeyCausesFile),
		}
		return cfg.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the dataset files (default: $(CWD)/data)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
}
