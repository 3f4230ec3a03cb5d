// Root command for the spigot CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dripworks/dripstand/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands can
// use them.
var (
	configDataDir      string
	configExchangeRate uint64
)

var rootCmd = &cobra.Command{
	Use:     "spigot",
	Short:   "Spigot runs recurring fixed-amount purchases against an observed block clock",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configExchangeRate = cfg.GetUint64(cfgKeyExchangeRate)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.dripstand)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.dripstand-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(executeCmd)
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(heightCmd)
	rootCmd.AddCommand(mintCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(tallyCmd)
	rootCmd.AddCommand(exportCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > DRIPSTAND_DATA_DIR env > default
// $(CWD)/.dripstand-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > DRIPSTAND_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
