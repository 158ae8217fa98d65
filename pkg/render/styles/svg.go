package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/protodiagram/pkg/render/layout"
)

const (
	svgCellWidth = 8.0  // one grid column; a bit is two columns wide
	svgRowHeight = 32.0 // height of a row band
	svgMargin    = 8.0
	svgFontSize  = 12.0
)

// SVG draws a matrix as scalable vector graphics.
type SVG struct{}

// Output returns a standalone SVG document. An empty matrix yields an empty
// canvas.
func (SVG) Output(m *layout.Matrix) string {
	top := lineOffsets(m)
	width, height := 2*svgMargin, 2*svgMargin
	if m.Height > 0 {
		width += float64(m.Width-2) * svgCellWidth
		height += top[m.Height]
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	buf.WriteString(`  <g stroke="#333" stroke-width="1.5" stroke-linecap="square" fill="none">` + "\n")
	renderLines(&buf, m, top)
	buf.WriteString("  </g>\n")
	fmt.Fprintf(&buf, `  <g font-family="monospace" font-size="%.0f" text-anchor="middle" dominant-baseline="central">`+"\n", svgFontSize)
	renderLabels(&buf, m, top)
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.String()
}

// lineOffsets returns the top edge of every matrix line plus the total
// height. Divider lines have no height.
func lineOffsets(m *layout.Matrix) []float64 {
	top := make([]float64, m.Height+1)
	for y := 0; y < m.Height; y++ {
		top[y+1] = top[y]
		if !isDividerLine(m, y) {
			top[y+1] += svgRowHeight
		}
	}
	return top
}

func isDividerLine(m *layout.Matrix, y int) bool {
	_, ok := m.At(1, y).(*layout.DividerSegment)
	return ok
}

func px(x int) float64 { return svgMargin + float64(x)*svgCellWidth }

func renderLines(buf *bytes.Buffer, m *layout.Matrix, top []float64) {
	var prev layout.Element
	for i, e := range m.Elements {
		if e == prev {
			continue
		}
		prev = e
		x, y := m.Position(i)
		switch e := e.(type) {
		case *layout.DividerSegment:
			if !layout.DividerVisible(m, x, y) {
				continue
			}
			fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
				px(x-1), svgMargin+top[y], px(x+2*e.Length-1), svgMargin+top[y])
		case *layout.Connector:
			if isDividerLine(m, y) || e.Individual || e.Value&(layout.Top|layout.Bottom) == 0 {
				continue
			}
			y1, y2 := top[y], top[y+1]
			mid := (y1 + y2) / 2
			if !e.Has(layout.Top) {
				y1 = mid
			}
			if !e.Has(layout.Bottom) {
				y2 = mid
			}
			fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
				px(x), svgMargin+y1, px(x), svgMargin+y2)
		}
	}
}

func renderLabels(buf *bytes.Buffer, m *layout.Matrix, top []float64) {
	var prev layout.Element
	for i, e := range m.Elements {
		if e == prev {
			continue
		}
		prev = e
		x, y := m.Position(i)

		var text, fill string
		var bits int
		switch e := e.(type) {
		case *layout.RowTail:
			if !e.Visible {
				continue
			}
			text, fill, bits = ReservedLabel, "#888", e.Length
		case *layout.RowSegment:
			if !e.DisplayName {
				continue
			}
			text, fill, bits = e.Represents.Name, "#000", e.Length
		case *layout.DividerSegment:
			if !e.DisplayName || e.Represents == nil {
				continue
			}
			text, fill, bits = e.Represents.Name, "#000", e.Length
		default:
			continue
		}
		if text == "" {
			continue
		}

		cx := (px(x-1) + px(x+2*bits-1)) / 2
		cy := svgMargin + (top[y]+top[y+1])/2
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" fill="%s">%s</text>`+"\n", cx, cy, fill, EscapeXML(text))
	}
}
