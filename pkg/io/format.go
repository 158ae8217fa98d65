package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/protodiagram/pkg/errors"
)

// Format is a diagram file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatTOML, FormatYAML}
}

// ParseFormat resolves a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported diagram format %q (valid: json, toml, yaml)", s)
}

// DetectFormat returns the format implied by a file name's extension.
func DetectFormat(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot detect format of %q: no file extension", path)
	}
	return ParseFormat(ext)
}
