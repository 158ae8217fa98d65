// Package render draws protocol diagrams.
//
// # Overview
//
// A diagram is an ordered list of [field.Field] values drawn in rows of a
// fixed bit width. [Text] returns the diagram in one of the text styles
// from [styles]; [SVG] returns it as an SVG document:
//
//	fields := []field.Field{
//	    field.New("Source Port", 16),
//	    field.New("Destination Port", 16),
//	    field.New("Sequence Number", 32),
//	}
//	fmt.Println(render.Text(fields, render.DefaultConfig()))
//
// Both entry points are pure: they never modify fields, perform no I/O and
// return identical output for identical input. Neither returns an error.
// Use [Config.Validate] to reject bad configuration at the edges; Text and
// SVG fall back to defaults for anything they do not recognise.
//
// # Configuration
//
// [Config] selects the row width (Bit), the glyph style, the header ruler
// mode and whether unused bits at the end of the last row are labelled
// "Reserved". The zero Config is usable; [Config.SetDefaults] fills it with
// 32 bits, [styles.UTF8] and [HeaderTrim].
//
// # Subpackages
//
//   - [layout]: row packing, dividers and the connector grid
//   - [styles]: glyph tables, text formatter and SVG output
//
// [layout]: github.com/matzehuels/protodiagram/pkg/render/layout
// [styles]: github.com/matzehuels/protodiagram/pkg/render/styles
// [field.Field]: github.com/matzehuels/protodiagram/pkg/field.Field
package render
