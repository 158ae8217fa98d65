package styles

import "github.com/matzehuels/protodiagram/pkg/render/layout"

// Glyphs maps a connector value to the string drawn for it.
type Glyphs [16]string

// Horizontal returns the glyph used for divider lines.
func (g Glyphs) Horizontal() string { return g[layout.Left|layout.Right] }

var boxGlyphs = Glyphs{
	" ", "─", "│", "┐",
	"─", "─", "┌", "┬",
	"│", "┘", "│", "┤",
	"└", "┴", "├", "┼",
}

var (
	asciiGlyphs  = classify(" ", "-", "|", "+")
	cornerGlyphs = classify(" ", "─", "│", "┼")
)

// classify builds a table that only distinguishes empty, horizontal-only,
// vertical-only and mixed connectors.
func classify(empty, horizontal, vertical, mixed string) Glyphs {
	const (
		h = layout.Left | layout.Right
		v = layout.Top | layout.Bottom
	)
	var g Glyphs
	for i := range g {
		value := uint8(i)
		switch {
		case value == 0:
			g[i] = empty
		case value&v == 0:
			g[i] = horizontal
		case value&h == 0:
			g[i] = vertical
		default:
			g[i] = mixed
		}
	}
	return g
}
