package layout

import "github.com/matzehuels/protodiagram/pkg/field"

// Element is one cell of a [Matrix].
type Element interface {
	isElement()
}

// Segment is a contiguous bit range of a row or divider.
type Segment interface {
	Element
	// Represented returns the field drawn in this range, or nil.
	Represented() *field.Field
	// Bounds returns the column range [start, end) within the row.
	Bounds() (start, end int)
	// Bits returns the width of the range in bits.
	Bits() int
}

// RowSegment is the part of a field that lands in one row.
type RowSegment struct {
	Represents  *field.Field
	Start       int  // column within the row
	Offset      int  // bits into the represented field
	Length      int  // bits consumed by this segment
	DisplayName bool // segment carries the field label
}

// End returns the column just past the segment.
func (s *RowSegment) End() int { return s.Start + s.Length }

// OffsetEnd returns the bit offset into the field just past the segment.
func (s *RowSegment) OffsetEnd() int { return s.Offset + s.Length }

// Represented returns the field this segment belongs to, or nil.
func (s *RowSegment) Represented() *field.Field { return s.Represents }

// Bounds returns the start column and the column just past the segment.
func (s *RowSegment) Bounds() (int, int) { return s.Start, s.End() }

// Bits returns the number of bits the segment spans.
func (s *RowSegment) Bits() int { return s.Length }

func (*RowSegment) isElement() {}

// RowTail pads the unused end of the last row.
// Visible tails are drawn as a "Reserved" field; invisible tails are blank.
type RowTail struct {
	RowSegment
	Visible bool
}

func (*RowTail) isElement() {}

// DividerSegment is one piece of the boundary between two rows.
// Represents is non-nil only when a field straddles the boundary here.
type DividerSegment struct {
	Represents  *field.Field
	Start       int
	Length      int
	DisplayName bool
}

// End returns the column just past the segment.
func (s *DividerSegment) End() int { return s.Start + s.Length }

// Represented returns the field this segment belongs to, or nil.
func (s *DividerSegment) Represented() *field.Field { return s.Represents }

// Bounds returns the start column and the column just past the segment.
func (s *DividerSegment) Bounds() (int, int) { return s.Start, s.End() }

// Bits returns the number of bits the segment spans.
func (s *DividerSegment) Bits() int { return s.Length }

func (*DividerSegment) isElement() {}

// Connector directions. A connector's value is the OR of the directions in
// which it joins a neighbouring line.
const (
	Top    uint8 = 8
	Right  uint8 = 4
	Bottom uint8 = 2
	Left   uint8 = 1
)

// Connector is a grid cell at a row/column intersection.
type Connector struct {
	Value      uint8
	Individual bool // isolated corner beside hidden padding
}

// Has reports whether all bits of dir are set.
func (c *Connector) Has(dir uint8) bool { return c.Value&dir == dir }

func (*Connector) isElement() {}

// LineBreak ends a visual line.
type LineBreak struct {
	Line int
}

func (*LineBreak) isElement() {}
