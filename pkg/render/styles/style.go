package styles

import (
	"strings"

	"github.com/matzehuels/protodiagram/pkg/errors"
	"github.com/matzehuels/protodiagram/pkg/render/layout"
)

// Style draws a matrix.
type Style interface {
	Output(m *layout.Matrix) string
}

// Variant names a text style.
type Variant string

const (
	ASCII        Variant = "ascii"
	ASCIIVerbose Variant = "ascii-verbose"
	UTF8         Variant = "utf8"
	UTF8Header   Variant = "utf8-header"
	UTF8Corner   Variant = "utf8-corner"
)

// DefaultVariant is used when no style is configured.
const DefaultVariant = UTF8

// Variants returns every text variant in display order.
func Variants() []Variant {
	return []Variant{ASCII, ASCIIVerbose, UTF8, UTF8Header, UTF8Corner}
}

// ParseVariant resolves a style name. Matching ignores case and surrounding
// whitespace.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Variants() {
		if v == known {
			return v, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (valid: %s)", s, variantList())
}

func variantList() string {
	names := make([]string, 0, len(Variants()))
	for _, v := range Variants() {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}

// New returns the text style for v.
func New(v Variant) (Style, error) {
	switch v {
	case ASCII:
		return &Text{Glyphs: asciiGlyphs}, nil
	case ASCIIVerbose:
		return &Text{Glyphs: asciiGlyphs, Ticks: true}, nil
	case UTF8:
		return &Text{Glyphs: boxGlyphs}, nil
	case UTF8Header:
		return &Text{Glyphs: boxGlyphs, JoinFirstLine: true}, nil
	case UTF8Corner:
		return &Text{Glyphs: cornerGlyphs}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (valid: %s)", v, variantList())
}
