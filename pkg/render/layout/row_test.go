package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/protodiagram/pkg/field"
)

func fields(lengths ...int) []field.Field {
	out := make([]field.Field, len(lengths))
	for i, n := range lengths {
		out[i] = field.New(string(rune('a'+i)), n)
	}
	return out
}

func segmentLengths(r *Row) []int {
	out := make([]int, 0, len(r.Segments))
	for _, s := range r.Segments {
		out = append(out, s.Length)
	}
	return out
}

func TestPackRowsSplitsAcrossRows(t *testing.T) {
	rows := PackRows(32, fields(8, 8, 24), false, false)

	if len(rows) != 2 {
		t.Fatalf("PackRows() returned %d rows, want 2", len(rows))
	}
	if diff := cmp.Diff([]int{8, 8, 16}, segmentLengths(rows[0])); diff != "" {
		t.Errorf("row 0 lengths mismatch (-want +got):\n%s", diff)
	}
	if rows[0].Used != 32 {
		t.Errorf("row 0 Used = %d, want 32", rows[0].Used)
	}
	if diff := cmp.Diff([]int{8}, segmentLengths(rows[1])); diff != "" {
		t.Errorf("row 1 lengths mismatch (-want +got):\n%s", diff)
	}
	if rows[1].Used != 8 {
		t.Errorf("row 1 Used = %d, want 8", rows[1].Used)
	}
	if rows[1].Tail != nil {
		t.Error("row 1 should have no tail when addTail is false")
	}

	split := rows[1].Segments[0]
	if split.Offset != 16 || split.Start != 0 {
		t.Errorf("continued segment Offset = %d, Start = %d, want 16, 0", split.Offset, split.Start)
	}
	if !split.Represents.Equals(*rows[0].Segments[2].Represents) {
		t.Error("both halves of the split field should represent the same field")
	}
}

func TestPackRowsConservation(t *testing.T) {
	tests := []struct {
		name    string
		bit     int
		lengths []int
	}{
		{"single bit", 32, []int{1}},
		{"tcp header", 32, []int{16, 16, 32, 32, 4, 6, 6, 16, 16, 16}},
		{"long field", 8, []int{3, 70, 5}},
		{"narrow rows", 1, []int{3, 2}},
		{"zero lengths", 16, []int{0, 5, 0, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fields(tt.lengths...)
			rows := PackRows(tt.bit, in, true, false)

			total := 0
			for i, r := range rows {
				if r.Used > tt.bit {
					t.Errorf("row %d Used = %d exceeds %d", i, r.Used, tt.bit)
				}
				for _, s := range r.Segments {
					if s.Length == 0 {
						t.Errorf("row %d has a zero-length segment", i)
					}
					total += s.Length
				}
			}
			if want := field.TotalLength(in); total != want {
				t.Errorf("segment total = %d, want %d", total, want)
			}
		})
	}
}

func TestPackRowsExactFit(t *testing.T) {
	rows := PackRows(32, fields(16, 16), true, true)

	if len(rows) != 1 {
		t.Fatalf("PackRows() returned %d rows, want 1", len(rows))
	}
	if rows[0].Tail != nil {
		t.Error("a full row should not get a tail")
	}
	if rows[0].Count() != 2 {
		t.Errorf("Count() = %d, want 2", rows[0].Count())
	}
}

func TestPackRowsTail(t *testing.T) {
	for _, visible := range []bool{false, true} {
		rows := PackRows(32, fields(8), true, visible)
		if len(rows) != 1 {
			t.Fatalf("PackRows() returned %d rows, want 1", len(rows))
		}
		tail := rows[0].Tail
		if tail == nil {
			t.Fatal("expected a tail")
		}
		if tail.Start != 8 || tail.Length != 24 {
			t.Errorf("tail = [%d,+%d), want [8,+24)", tail.Start, tail.Length)
		}
		if tail.Visible != visible {
			t.Errorf("tail Visible = %v, want %v", tail.Visible, visible)
		}
		if tail.Represents == nil || tail.Represents.Name != "" {
			t.Error("tail should represent a synthetic empty-named field")
		}
		if rows[0].Used != 32 || rows[0].Count() != 2 {
			t.Errorf("Used = %d, Count = %d, want 32, 2", rows[0].Used, rows[0].Count())
		}
	}
}

func TestPackRowsEmpty(t *testing.T) {
	if rows := PackRows(32, nil, true, false); len(rows) != 0 {
		t.Errorf("PackRows(nil) returned %d rows, want 0", len(rows))
	}
	if rows := PackRows(32, fields(0, 0), true, false); len(rows) != 0 {
		t.Errorf("PackRows(zero-length) returned %d rows, want 0", len(rows))
	}
}

func TestPackRowsDoesNotMutateInput(t *testing.T) {
	in := fields(8, 40, 3)
	before := field.Clone(in)

	for i := 0; i < 3; i++ {
		PackRows(16, in, true, false)
	}

	if diff := cmp.Diff(before, in); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}
