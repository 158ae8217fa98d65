package layout

// Divider is the horizontal boundary above, between or below rows.
type Divider struct {
	Bit      int
	Segments []*DividerSegment
	Used     int
}

// AddSplice appends the divider piece that ends where before ends.
//
// The piece runs from the current end of the divider to before's end. It is
// tagged with before's field when after belongs to the same field and the
// two overlap, i.e. the field really continues across the boundary. after may
// be nil when only one side still has segments.
func (d *Divider) AddSplice(before, after Segment) {
	_, end := before.Bounds()
	n := end - d.Used
	if n <= 0 {
		return
	}

	seg := &DividerSegment{Start: d.Used, Length: n}
	if after != nil && straddles(before, after) {
		seg.Represents = before.Represented()
	}
	d.Segments = append(d.Segments, seg)
	d.Used = end
}

func straddles(before, after Segment) bool {
	a, b := before.Represented(), after.Represented()
	if a == nil || b == nil || !a.Equals(*b) {
		return false
	}
	_, beforeEnd := before.Bounds()
	afterStart, _ := after.Bounds()
	return beforeEnd > afterStart
}

// BuildDividers returns the dividers for rows: one above the first row, one
// between each adjacent pair and one below the last row. The outer dividers
// are built against an implicit empty row, so they are never tagged.
// No rows means no dividers.
//
// The segment lengths of every returned divider sum to bit when the rows are
// full (see [PackRows] with addTail).
func BuildDividers(bit int, rows []*Row) []*Divider {
	if len(rows) == 0 {
		return nil
	}
	dividers := make([]*Divider, 0, len(rows)+1)

	above := emptySpans(bit)
	for _, r := range rows {
		below := r.Spans()
		dividers = append(dividers, buildDivider(bit, above, below))
		above = below
	}
	dividers = append(dividers, buildDivider(bit, above, emptySpans(bit)))
	return dividers
}

func emptySpans(bit int) []Segment {
	return []Segment{&RowSegment{Length: bit}}
}

// buildDivider merges the segment end positions of two rows.
func buildDivider(bit int, above, below []Segment) *Divider {
	d := &Divider{Bit: bit}

	i, j := 0, 0
	for i < len(above) || j < len(below) {
		var before, after Segment
		switch {
		case i >= len(above):
			before = below[j]
		case j >= len(below):
			before = above[i]
		default:
			before, after = above[i], below[j]
			if end(below[j]) < end(above[i]) {
				before, after = below[j], above[i]
			}
		}

		d.AddSplice(before, after)

		if i < len(above) && end(above[i]) <= d.Used {
			i++
		}
		if j < len(below) && end(below[j]) <= d.Used {
			j++
		}
	}

	if d.Used < bit {
		d.Segments = append(d.Segments, &DividerSegment{Start: d.Used, Length: bit - d.Used})
		d.Used = bit
	}
	return d
}

func end(s Segment) int {
	_, e := s.Bounds()
	return e
}
