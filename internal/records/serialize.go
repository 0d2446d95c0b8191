// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package records

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recordkit/pkg/types"
)

const yamlIndent = 2

// Serialize renders seq in the requested format. JSON output is an array of
// objects indented by two spaces with no trailing newline; an empty sequence
// renders as "[]". All values stay strings.
func Serialize(seq Sequence, format types.OutputFormat) ([]byte, error) {
	switch format {
	case types.FormatJSON, "":
		return serializeJSON(seq)
	case types.FormatYAML:
		return serializeYAML(seq)
	default:
		return nil, fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

func serializeJSON(seq Sequence) ([]byte, error) {
	if seq == nil {
		seq = Sequence{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(seq); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// serializeYAML builds the document from nodes so mapping keys keep header
// order and numeric-looking values are tagged as strings.
func serializeYAML(seq Sequence) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, rec := range seq {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, f := range rec.Fields {
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rec.Values[i]},
			)
		}
		doc.Content = append(doc.Content, m)
	}
	if len(doc.Content) == 0 {
		doc.Style = yaml.FlowStyle
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return buf.Bytes(), nil
}
