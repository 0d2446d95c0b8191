// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package records

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/recordkit/pkg/types"
)

// DefaultPreviewLength is the number of characters echoed after a run.
const DefaultPreviewLength = 1000

// Result holds the outcome of a conversion run.
type Result struct {
	OutputPath string
	Records    int
	Skipped    int
	Data       []byte
}

// LoadLines reads the whole file at path and splits it into lines. Line
// terminators are kept; a final terminator does not start an extra line.
func LoadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading input: %w", ErrIO, err)
	}
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// WriteOutput writes data to path, replacing any existing file. The write is
// not atomic; a failure can leave a truncated file behind.
func WriteOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing output: %w", ErrIO, err)
	}
	return nil
}

// Preview returns the first n characters of data. Characters are counted as
// runes so multi-byte text is never split.
func Preview(data []byte, n int) string {
	if n <= 0 {
		n = DefaultPreviewLength
	}
	s := string(data)
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// Run converts cfg.InputPath into cfg.OutputPath. Malformed-line warnings,
// the preview and the final summary are written to w.
func Run(cfg types.ConverterConfig, w io.Writer) (Result, error) {
	lines, err := LoadLines(cfg.InputPath)
	if err != nil {
		return Result{}, err
	}
	if len(lines) == 0 {
		return Result{}, fmt.Errorf("%s: %w", cfg.InputPath, ErrEmptyInput)
	}

	fields, err := ParseHeader(lines[0], cfg.Delimiter)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", cfg.InputPath, err)
	}

	seq, skipped := BuildSequence(lines[1:], fields, cfg.Delimiter, w)

	format := cfg.Format
	if format == "" {
		format = types.FormatJSON
	}
	data, err := Serialize(seq, format)
	if err != nil {
		return Result{}, err
	}

	if err := WriteOutput(cfg.OutputPath, data); err != nil {
		return Result{}, err
	}

	n := cfg.PreviewLength
	if n <= 0 {
		n = DefaultPreviewLength
	}
	fmt.Fprintf(w, "Sample %s output (first %d characters):\n", strings.ToUpper(string(format)), n)
	fmt.Fprintln(w, Preview(data, n))
	fmt.Fprintf(w, "\nFull %s data saved to %s\n", strings.ToUpper(string(format)), cfg.OutputPath)

	return Result{
		OutputPath: cfg.OutputPath,
		Records:    len(seq),
		Skipped:    skipped,
		Data:       data,
	}, nil
}
