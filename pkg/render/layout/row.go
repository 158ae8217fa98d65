package layout

import "github.com/matzehuels/protodiagram/pkg/field"

// Row is one fixed-width horizontal slice of the diagram.
type Row struct {
	Bit      int
	Segments []*RowSegment
	Tail     *RowTail
	Used     int
}

// Count returns the number of segments in the row, including the tail.
func (r *Row) Count() int {
	if r.Tail != nil {
		return len(r.Segments) + 1
	}
	return len(r.Segments)
}

// Spans returns the row's segments left to right, tail last.
func (r *Row) Spans() []Segment {
	out := make([]Segment, 0, r.Count())
	for _, s := range r.Segments {
		out = append(out, s)
	}
	if r.Tail != nil {
		out = append(out, r.Tail)
	}
	return out
}

// Remaining returns the number of unused bits.
func (r *Row) Remaining() int { return r.Bit - r.Used }

func (r *Row) full() bool { return r.Used >= r.Bit }

func (r *Row) add(f *field.Field, offset, length int) {
	r.Segments = append(r.Segments, &RowSegment{
		Represents: f,
		Start:      r.Used,
		Offset:     offset,
		Length:     length,
	})
	r.Used += length
}

func (r *Row) addTail(visible bool) {
	rest := r.Remaining()
	pad := field.New("", rest)
	r.Tail = &RowTail{
		RowSegment: RowSegment{Represents: &pad, Start: r.Used, Length: rest},
		Visible:    visible,
	}
	r.Used = r.Bit
}

// PackRows packs fields into rows of bit columns.
//
// Fields are consumed in order. A field that does not fit in the current row
// fills it and continues on the next one, so one field may produce several
// segments. Zero-length fields produce no segment. When addTail is true a
// partially used last row is closed with a [RowTail] of the remaining width.
// An empty field list yields no rows.
//
// The input slice is copied; segments point at the copies.
func PackRows(bit int, fields []field.Field, addTail, tailVisible bool) []*Row {
	if bit < 1 {
		bit = 1
	}
	clones := field.Clone(fields)

	var rows []*Row
	cur := &Row{Bit: bit}
	for i := range clones {
		f := &clones[i]
		remaining := f.Length
		for remaining > 0 {
			n := min(remaining, cur.Remaining())
			cur.add(f, f.Length-remaining, n)
			remaining -= n
			if cur.full() {
				rows = append(rows, cur)
				cur = &Row{Bit: bit}
			}
		}
	}

	if cur.Used > 0 {
		if addTail {
			cur.addTail(tailVisible)
		}
		rows = append(rows, cur)
	}
	return rows
}
