// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/recordkit/internal/records"
	"github.com/pdiddy/recordkit/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input]",
	Short: "Convert a delimited text file into a JSON array of records",
	Long: `Convert reads a delimited text file whose first line lists the field
names and writes every following line as one JSON object. Blank lines are
ignored. Lines whose value count differs from the header are skipped with a
warning. The first characters of the output are echoed for verification.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	def := types.DefaultConfig().Convert
	convertCmd.Flags().String("input", def.InputPath, "delimited source file")
	convertCmd.Flags().String("output", def.OutputPath, "destination file")
	convertCmd.Flags().String("delimiter", def.Delimiter, "field delimiter")
	convertCmd.Flags().Int("preview-length", def.PreviewLength, "number of characters echoed after conversion")
	convertCmd.Flags().String("format", string(def.Format), "output format: json or yaml")
	bindFlags(convertCmd, "convert")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conv := cfg.Convert
	if len(args) == 1 {
		conv.InputPath = args[0]
	}

	_, err = records.Run(conv, cmd.OutOrStdout())
	return err
}
