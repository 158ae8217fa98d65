// Package styles draws a [layout.Matrix] as text or SVG.
//
// # Text Styles
//
// Five text variants share one table-driven formatter ([Text]). They differ
// only in the glyph table used for connectors and in how visible dividers
// are drawn:
//
//   - [ASCII]: '-', '|' and '+'
//   - [ASCIIVerbose]: like ASCII, with a '+' tick mark on every bit boundary
//   - [UTF8]: box-drawing characters chosen by the full 4-bit connector mask
//   - [UTF8Header]: like UTF8, with the first line joined upwards so the
//     diagram sits flush under a ruler
//   - [UTF8Corner]: box-drawing lines with every junction drawn as '┼'
//
// A connector's glyph is looked up by its value, so each table has exactly
// 16 entries. See [layout.Connector] for the bit assignment.
//
// # SVG
//
// [SVG] walks the same matrix and emits line and text elements. Divider lines
// take no vertical space; each row is drawn as a band of fixed height.
//
// # Helpers
//
// [Center], [Pattern] and [Ruler] are the string primitives every text style
// is built from. Widths are measured in terminal cells with go-runewidth, so
// wide characters in field names do not break alignment.
//
// [layout.Matrix]: github.com/matzehuels/protodiagram/pkg/render/layout.Matrix
// [layout.Connector]: github.com/matzehuels/protodiagram/pkg/render/layout.Connector
package styles
