package layout

import "github.com/google/uuid"

// Line is one visual line of the diagram: the segments of a divider or a row,
// left to right.
type Line struct {
	Divider  bool
	Segments []Segment
}

// Sequence interleaves dividers and rows top to bottom:
// [top divider, row 0, divider, row 1, ..., bottom divider].
// dividers must hold len(rows)+1 entries, as returned by [BuildDividers].
//
// Sequence also picks, for every field, the one segment that displays the
// field name: the widest of the field's row segments and straddled divider
// segments, with ties going to the vertically middle candidate.
func Sequence(rows []*Row, dividers []*Divider) []Line {
	if len(rows) == 0 || len(dividers) != len(rows)+1 {
		return nil
	}

	lines := make([]Line, 0, 2*len(rows)+1)
	for i, r := range rows {
		lines = append(lines, dividerLine(dividers[i]), Line{Segments: r.Spans()})
	}
	lines = append(lines, dividerLine(dividers[len(rows)]))

	placeLabels(lines)
	return lines
}

func dividerLine(d *Divider) Line {
	segs := make([]Segment, len(d.Segments))
	for i, s := range d.Segments {
		segs[i] = s
	}
	return Line{Divider: true, Segments: segs}
}

func placeLabels(lines []Line) {
	var order []uuid.UUID
	byField := make(map[uuid.UUID][]Segment)
	for _, l := range lines {
		for _, s := range l.Segments {
			if _, ok := s.(*RowTail); ok {
				continue
			}
			f := s.Represented()
			if f == nil {
				continue
			}
			if _, seen := byField[f.ID]; !seen {
				order = append(order, f.ID)
			}
			byField[f.ID] = append(byField[f.ID], s)
		}
	}

	for _, id := range order {
		segs := byField[id]
		widest := 0
		for _, s := range segs {
			widest = max(widest, s.Bits())
		}
		var candidates []Segment
		for _, s := range segs {
			if s.Bits() == widest {
				candidates = append(candidates, s)
			}
		}
		switch s := candidates[(len(candidates)-1)/2].(type) {
		case *RowSegment:
			s.DisplayName = true
		case *DividerSegment:
			s.DisplayName = true
		}
	}
}
