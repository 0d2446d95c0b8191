// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the serialization used for converted records.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ConverterConfig holds settings for the convert stage.
type ConverterConfig struct {
	// InputPath is the delimited source file (first line holds field names).
	InputPath string `json:"input" yaml:"input" mapstructure:"input"`

	// OutputPath is the destination file for the serialized records.
	OutputPath string `json:"output" yaml:"output" mapstructure:"output"`

	// Delimiter separates fields on every line (default "~").
	Delimiter string `json:"delimiter" yaml:"delimiter" mapstructure:"delimiter"`

	// PreviewLength is the number of characters echoed to the console (default 1000).
	PreviewLength int `json:"preview_length" yaml:"preview_length" mapstructure:"preview_length"`

	// Format selects json or yaml output (default json).
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// LabelsConfig holds settings for the label generator.
type LabelsConfig struct {
	// OutputPath is the text file the label blocks are written to.
	OutputPath string `json:"output" yaml:"output" mapstructure:"output"`

	// Count is the number of blocks generated (default 1000).
	Count int `json:"count" yaml:"count" mapstructure:"count"`

	// Start is the number assigned to the first label (default 903).
	Start int `json:"start" yaml:"start" mapstructure:"start"`

	// Prefix is prepended to every label number (default "DS").
	Prefix string `json:"prefix" yaml:"prefix" mapstructure:"prefix"`

	// Parent is the label every generated block is attached to (default "DS900").
	Parent string `json:"parent" yaml:"parent" mapstructure:"parent"`

	// User is recorded as the last editor of every block.
	User string `json:"user" yaml:"user" mapstructure:"user"`

	SecurityClass string `json:"security_class" yaml:"security_class" mapstructure:"security_class"`
	Description   string `json:"description" yaml:"description" mapstructure:"description"`
}

// Config groups the configuration of both tools.
type Config struct {
	Convert ConverterConfig `json:"convert" yaml:"convert" mapstructure:"convert"`
	Labels  LabelsConfig    `json:"labels" yaml:"labels" mapstructure:"labels"`
}

// DefaultConfig returns the settings used when neither flags, environment
// nor a config file override them.
func DefaultConfig() Config {
	return Config{
		Convert: ConverterConfig{
			InputPath:     "products.txt",
			OutputPath:    "products_data.json",
			Delimiter:     "~",
			PreviewLength: 1000,
			Format:        FormatJSON,
		},
		Labels: LabelsConfig{
			OutputPath:    "C1_Labels_1000.txt",
			Count:         1000,
			Start:         903,
			Prefix:        "DS",
			Parent:        "DS900",
			User:          "mehmiva",
			SecurityClass: "C1_AMT",
			Description:   "TEST CUSTOM 1_COMP",
		},
	}
}
