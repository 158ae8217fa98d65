package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/protodiagram/pkg/diagram"
	"github.com/matzehuels/protodiagram/pkg/errors"
)

// Write encodes d to w. The output can be read back with [Read].
func Write(w io.Writer, d *diagram.Diagram, format Format) error {
	doc := d.Document()
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported diagram format %q", format)
	}
	return nil
}

// Marshal encodes d in memory.
func Marshal(d *diagram.Diagram, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, d, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Export writes d to path in the format implied by its extension.
func Export(path string, d *diagram.Diagram) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}
	data, err := Marshal(d, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
