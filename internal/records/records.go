// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package records converts delimiter-separated text into uniform key-value
// records and serializes them as JSON or YAML.
//
// The first input line holds the field names; every following non-blank line
// is one record. Lines whose value count differs from the header are dropped
// with a warning.
package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// DefaultDelimiter separates fields when the configuration leaves it empty.
const DefaultDelimiter = "~"

var (
	// ErrIO marks failures reading the input or writing the output file.
	ErrIO = errors.New("i/o error")

	// ErrEmptyInput is returned when the input has no header line.
	ErrEmptyInput = errors.New("input has no header line")

	// ErrDuplicateField is returned when the header names a field twice.
	ErrDuplicateField = errors.New("duplicate field name in header")
)

// FieldNames is the ordered list of keys taken from the header line.
type FieldNames []string

// Record is one converted line. Fields and Values have equal length and keep
// the header order.
type Record struct {
	Fields []string
	Values []string
}

// Get returns the value stored under field and whether it exists.
func (r Record) Get(field string) (string, bool) {
	for i, f := range r.Fields {
		if f == field {
			return r.Values[i], true
		}
	}
	return "", false
}

// MarshalJSON renders the record as an object whose keys follow header order.
// HTML characters are left unescaped.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, f); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(&buf, r.Values[i]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Sequence is the ordered list of records produced from one input.
type Sequence []Record

// Outcome classifies a parsed line.
type Outcome int

const (
	Parsed Outcome = iota
	Blank
	Malformed
)

func (o Outcome) String() string {
	switch o {
	case Parsed:
		return "parsed"
	case Blank:
		return "blank"
	case Malformed:
		return "malformed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

func trimLine(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// ParseHeader splits the first input line into field names. Names are not
// checked for emptiness, but a name appearing twice is rejected.
func ParseHeader(line, delim string) (FieldNames, error) {
	if delim == "" {
		delim = DefaultDelimiter
	}
	names := strings.Split(trimLine(line), delim)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, n)
		}
		seen[n] = true
	}
	return FieldNames(names), nil
}

// ParseRecord converts one line into a Record. Trailing whitespace is
// stripped first; blank lines and lines with the wrong number of values are
// reported through the returned Outcome and yield a zero Record.
func ParseRecord(line string, fields FieldNames, delim string) (Record, Outcome) {
	if delim == "" {
		delim = DefaultDelimiter
	}
	trimmed := trimLine(line)
	if trimmed == "" {
		return Record{}, Blank
	}
	values := strings.Split(trimmed, delim)
	if len(values) != len(fields) {
		return Record{Values: values}, Malformed
	}
	return Record{Fields: fields, Values: values}, Parsed
}

// BuildSequence parses every line in order and collects the valid records.
// Each malformed line is reported to warn. It returns the sequence and the
// number of malformed lines dropped.
func BuildSequence(lines []string, fields FieldNames, delim string, warn io.Writer) (Sequence, int) {
	seq := make(Sequence, 0, len(lines))
	skipped := 0
	for _, line := range lines {
		rec, outcome := ParseRecord(line, fields, delim)
		switch outcome {
		case Parsed:
			seq = append(seq, rec)
		case Malformed:
			skipped++
			fmt.Fprintf(warn, "Warning: Skipping malformed line with %d values: %s\n",
				len(rec.Values), trimLine(line))
		}
	}
	return seq, skipped
}
