// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recordkit/internal/labels"
	"github.com/pdiddy/recordkit/pkg/types"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Generate a file of C1 label blocks",
	Long: `Labels writes a text file with a one-line header followed by label
blocks. Each block gets the next identifier (prefix plus a number counting up
from --start) and the current time as its edit timestamp.`,
	Args: cobra.NoArgs,
	RunE: runLabels,
}

func init() {
	def := types.DefaultConfig().Labels
	labelsCmd.Flags().String("output", def.OutputPath, "destination text file")
	labelsCmd.Flags().Int("count", def.Count, "number of label blocks")
	labelsCmd.Flags().Int("start", def.Start, "number of the first label")
	labelsCmd.Flags().String("prefix", def.Prefix, "identifier prefix")
	labelsCmd.Flags().String("parent", def.Parent, "parent label of every block")
	labelsCmd.Flags().String("user", def.User, "user recorded as last editor")
	labelsCmd.Flags().String("security-class", def.SecurityClass, "security class attribute")
	labelsCmd.Flags().String("description", def.Description, "English description of every block")
	bindFlags(labelsCmd, "labels")

	rootCmd.AddCommand(labelsCmd)
}

func runLabels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, n, err := labels.Generate(cfg.Labels, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d labels generated and saved to: %s\n", n, path)
	return nil
}
