package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/protodiagram/pkg/diagram"
	"github.com/matzehuels/protodiagram/pkg/errors"
)

// Read decodes a diagram from r.
//
// The input must be a complete document in the given format. Unknown keys,
// malformed input and invalid diagrams (negative widths, unknown styles, ...)
// are reported as coded errors. Read does not close r.
func Read(r io.Reader, format Format) (*diagram.Diagram, error) {
	doc, err := decode(r, format)
	if err != nil {
		return nil, err
	}
	return diagram.FromDocument(doc)
}

// ReadBytes decodes a diagram held in memory.
func ReadBytes(data []byte, format Format) (*diagram.Diagram, error) {
	return Read(bytes.NewReader(data), format)
}

func decode(r io.Reader, format Format) (diagram.Document, error) {
	var doc diagram.Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return doc, decodeError(format, err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return doc, decodeError(format, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return doc, errors.New(errors.ErrCodeInvalidInput, "decode toml: unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return doc, decodeError(format, err)
		}
	default:
		return doc, errors.New(errors.ErrCodeInvalidFormat, "unsupported diagram format %q", format)
	}
	return doc, nil
}

func decodeError(format Format, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", format)
}

// Import reads the diagram file at path. The format follows from the
// extension.
func Import(path string) (*diagram.Diagram, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
