// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the recordkit CLI.
// It exposes the record converter (convert) and the label generator (labels).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/recordkit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the recordkit CLI.
var rootCmd = &cobra.Command{
	Use:   "recordkit",
	Short: "Small batch tools for delimited records and label blocks",
	Long: `recordkit bundles two independent batch tools.

convert turns a "~"-delimited text file whose first line holds the field
names into a JSON array of objects. labels writes a file of C1 label blocks
with incrementing identifiers.

Settings come from flags, RECORDKIT_* environment variables, or a
recordkit.yaml config file, in that order of precedence.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./recordkit.yaml or ~/.config/recordkit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("recordkit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "recordkit"))
		}
	}

	viper.SetEnvPrefix("RECORDKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlags ties each flag to the viper key prefix.flag-name, with dashes
// replaced by underscores.
func bindFlags(cmd *cobra.Command, prefix string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := prefix + "." + strings.ReplaceAll(f.Name, "-", "_")
		if err := viper.BindPFlag(key, f); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", f.Name, err))
		}
	})
}

// loadConfig merges flags, environment and config file over the defaults.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
