// Package render turns truth tables and expression errors into text for
// the terminal or for other programs.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"ttbl"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts the names of the supported output formats.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected one of table, json, yaml", name)
	}
}

// Settings controls the appearance of rendered tables.
type Settings struct {
	Format      Format
	Headers     ttbl.HeaderStyle
	TrueSymbol  string
	FalseSymbol string
	Border      string
	Color       bool
}

func DefaultSettings() Settings {
	return Settings{
		Format:      FormatTable,
		Headers:     ttbl.HeaderSource,
		TrueSymbol:  "T",
		FalseSymbol: "F",
		Border:      "rounded",
		Color:       true,
	}
}

// Write renders table in the format of s to w.
func Write(w io.Writer, table ttbl.Table, s Settings) error {
	var out []byte
	var err error

	switch s.Format {
	case FormatJSON:
		out, err = JSON(table, s)
	case FormatYAML:
		out, err = YAML(table, s)
	case FormatTable, "":
		out = []byte(Text(table, s) + "\n")
	default:
		err = fmt.Errorf("unknown output format %q", s.Format)
	}

	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}

// JSON renders the rows as an indented array of objects keyed by header.
func JSON(table ttbl.Table, s Settings) ([]byte, error) {
	var records = table.Records(s.Headers)
	for _, record := range records {
		record.SetEscapeHTML(false)
	}

	var buf bytes.Buffer
	var encoder = json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(records); err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}

	return buf.Bytes(), nil
}

// YAML renders the rows as a sequence of mappings, keys in header order.
func YAML(table ttbl.Table, s Settings) ([]byte, error) {
	var seq = &yaml.Node{Kind: yaml.SequenceNode}

	for _, record := range table.Records(s.Headers) {
		var mapping = &yaml.Node{Kind: yaml.MappingNode}

		for _, key := range record.Keys() {
			value, _ := record.Get(key)
			mapping.Content = append(mapping.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(value)},
			)
		}

		seq.Content = append(seq.Content, mapping)
	}

	var buf bytes.Buffer
	var encoder = yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(seq); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}

	return buf.Bytes(), nil
}
