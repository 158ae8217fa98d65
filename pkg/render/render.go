package render

import (
	"strconv"
	"strings"

	"github.com/matzehuels/protodiagram/pkg/field"
	"github.com/matzehuels/protodiagram/pkg/render/layout"
	"github.com/matzehuels/protodiagram/pkg/render/styles"
)

// Matrix lays fields out for cfg and returns the grid styles draw from.
// The padding tail is always added; cfg.ShowReservedPadding decides whether
// it is visible.
func Matrix(fields []field.Field, cfg Config) *layout.Matrix {
	cfg.SetDefaults()
	rows := layout.PackRows(cfg.Bit, fields, true, cfg.ShowReservedPadding)
	return layout.BuildMatrix(layout.Sequence(rows, layout.BuildDividers(cfg.Bit, rows)))
}

// Text renders fields as a text diagram.
//
// Lines are right-trimmed and joined with "\n"; there is no trailing newline.
// A diagram without bits renders as the empty string. An unknown style falls
// back to [styles.DefaultVariant], an unknown header mode to [DefaultHeader].
func Text(fields []field.Field, cfg Config) string {
	cfg.SetDefaults()
	m := Matrix(fields, cfg)
	if m.Height == 0 {
		return ""
	}

	style, err := styles.New(cfg.Style)
	if err != nil {
		style, _ = styles.New(styles.DefaultVariant)
	}
	body := strings.Split(style.Output(m), "\n")[:m.Height]

	ruler := styles.Ruler(max(cfg.Bit, 1))
	out := make([]string, 0, len(body)+len(ruler))
	for y, line := range body {
		if showRuler(cfg.Header, y, len(body)) {
			out = append(out, ruler...)
		}
		out = append(out, strings.TrimRight(line, " "))
	}
	return strings.Join(out, "\n")
}

// showRuler reports whether a ruler goes above line y. Divider lines sit at
// even y; the last one closes the diagram and never gets a ruler.
func showRuler(h HeaderMode, y, height int) bool {
	switch h {
	case HeaderNone:
		return false
	case HeaderFull:
		return y%2 == 0 && y < height-1
	default:
		return y == 0
	}
}

// SVG renders fields as an SVG document. The header mode and text style do
// not apply.
func SVG(fields []field.Field, cfg Config) []byte {
	return []byte(styles.SVG{}.Output(Matrix(fields, cfg)))
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes", "show":
		return true, nil
	case "off", "no", "hide":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}
