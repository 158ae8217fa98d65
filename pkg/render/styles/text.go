package styles

import (
	"bytes"
	"encoding/xml"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/protodiagram/pkg/field"
	"github.com/matzehuels/protodiagram/pkg/render/layout"
)

// ReservedLabel is drawn in visible padding.
const ReservedLabel = "Reserved"

var cells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Text is the table-driven text formatter shared by all text variants.
type Text struct {
	Glyphs        Glyphs
	Ticks         bool // draw visible dividers as "-+-+-"
	JoinFirstLine bool // force the top direction on the first line's connectors
}

// Output draws m one element at a time. Consecutive cells holding the same
// element are drawn once, at the element's full width.
func (s *Text) Output(m *layout.Matrix) string {
	var b strings.Builder
	var prev layout.Element
	for i, e := range m.Elements {
		if e == prev {
			continue
		}
		prev = e
		x, y := m.Position(i)

		switch e := e.(type) {
		case *layout.Connector:
			b.WriteString(s.connector(e, y))
		case *layout.RowTail:
			if e.Visible {
				b.WriteString(Center(ReservedLabel, " ", e.Length))
			} else {
				b.WriteString(blank(e.Length))
			}
		case *layout.RowSegment:
			b.WriteString(label(e.Represents, e.DisplayName, e.Length))
		case *layout.DividerSegment:
			b.WriteString(s.divider(m, x, y, e))
		case *layout.LineBreak:
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (s *Text) connector(c *layout.Connector, y int) string {
	v := c.Value
	if s.JoinFirstLine && y == 0 && v != 0 {
		v |= layout.Top
	}
	return s.Glyphs[v&0xF]
}

func (s *Text) divider(m *layout.Matrix, x, y int, d *layout.DividerSegment) string {
	switch {
	case d.Represents != nil:
		return label(d.Represents, d.DisplayName, d.Length)
	case !layout.DividerVisible(m, x, y):
		return blank(d.Length)
	case s.Ticks:
		return Pattern("-", "+", d.Length)
	default:
		return strings.Repeat(s.Glyphs.Horizontal(), 2*d.Length-1)
	}
}

func label(f *field.Field, show bool, bits int) string {
	if !show || f == nil {
		return blank(bits)
	}
	return Center(singleLine(f.Name), " ", bits)
}

// singleLine replaces control characters, line breaks included, with spaces
// so a label never spans more than one line.
func singleLine(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

func blank(bits int) string {
	return Center("", " ", bits)
}

// Center centers text in the 2*bits-1 cells a segment of bits occupies,
// filling with pad. The extra cell of an odd remainder goes to the right.
// Text wider than the segment is truncated and left-aligned.
func Center(text, pad string, bits int) string {
	w := 2*bits - 1
	if w <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(pad, w)
	}

	tw := cells.StringWidth(text)
	if tw > w {
		cut := cells.Truncate(text, w, "")
		return cut + strings.Repeat(pad, w-cells.StringWidth(cut))
	}
	left := (w - tw) / 2
	return strings.Repeat(pad, left) + text + strings.Repeat(pad, w-tw-left)
}

// Pattern returns odd, then bits-1 repetitions of even+odd, e.g.
// Pattern("-", "+", 3) == "-+-+-".
func Pattern(odd, even string, bits int) string {
	if bits <= 0 {
		return ""
	}
	return odd + strings.Repeat(even+odd, bits-1)
}

// Ruler returns the bit-number header for rows of bit columns: a tens line
// (omitted when bit <= 10) and a units line. The digit for bit i sits in
// character column 2i+1, above the content of that bit.
func Ruler(bit int) []string {
	if bit < 1 {
		return nil
	}
	tens := bytes.Repeat([]byte{' '}, 2*bit+1)
	units := bytes.Repeat([]byte{' '}, 2*bit+1)
	for i := 0; i < bit; i++ {
		if i%10 == 0 {
			tens[2*i+1] = byte('0' + (i/10)%10)
		}
		units[2*i+1] = byte('0' + i%10)
	}

	lines := make([]string, 0, 2)
	if bit > 10 {
		lines = append(lines, strings.TrimRight(string(tens), " "))
	}
	return append(lines, strings.TrimRight(string(units), " "))
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
