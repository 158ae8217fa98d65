package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/protodiagram/pkg/field"
)

type span struct {
	Start, Length int
	Tagged        bool
}

func spans(d *Divider) []span {
	out := make([]span, len(d.Segments))
	for i, s := range d.Segments {
		out[i] = span{s.Start, s.Length, s.Represents != nil}
	}
	return out
}

func TestBuildDividersCount(t *testing.T) {
	rows := PackRows(32, fields(8, 8, 24), true, false)
	dividers := BuildDividers(32, rows)

	if len(dividers) != len(rows)+1 {
		t.Fatalf("BuildDividers() returned %d dividers, want %d", len(dividers), len(rows)+1)
	}
	if got := BuildDividers(32, nil); got != nil {
		t.Errorf("BuildDividers(nil) = %v, want nil", got)
	}
}

func TestBuildDividersConservation(t *testing.T) {
	tests := []struct {
		name    string
		bit     int
		lengths []int
	}{
		{"tcp header", 32, []int{16, 16, 32, 32, 4, 6, 6, 16, 16, 16}},
		{"straddling", 32, []int{16, 40, 4}},
		{"many rows", 8, []int{3, 70, 5}},
		{"one bit rows", 1, []int{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := PackRows(tt.bit, fields(tt.lengths...), true, false)
			for i, d := range BuildDividers(tt.bit, rows) {
				total := 0
				for _, s := range d.Segments {
					total += s.Length
				}
				if total != tt.bit || d.Used != tt.bit {
					t.Errorf("divider %d total = %d, Used = %d, want %d", i, total, d.Used, tt.bit)
				}
			}
		})
	}
}

func TestBuildDividersStraddle(t *testing.T) {
	// b starts at column 16 and continues 24 bits into the next row.
	rows := PackRows(32, fields(16, 40), true, false)
	dividers := BuildDividers(32, rows)

	want := []span{{0, 16, false}, {16, 8, true}, {24, 8, false}}
	if diff := cmp.Diff(want, spans(dividers[1])); diff != "" {
		t.Errorf("middle divider mismatch (-want +got):\n%s", diff)
	}
	if got := dividers[1].Segments[1].Represents; got.Name != "b" {
		t.Errorf("straddled segment represents %q, want %q", got.Name, "b")
	}
}

func TestBuildDividersFullWidthStraddle(t *testing.T) {
	rows := PackRows(32, fields(64), true, false)
	dividers := BuildDividers(32, rows)

	want := []span{{0, 32, true}}
	if diff := cmp.Diff(want, spans(dividers[1])); diff != "" {
		t.Errorf("middle divider mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDividersOuterEdgesUntagged(t *testing.T) {
	rows := PackRows(32, fields(64), true, false)
	dividers := BuildDividers(32, rows)

	for _, i := range []int{0, len(dividers) - 1} {
		for _, s := range dividers[i].Segments {
			if s.Represents != nil {
				t.Errorf("edge divider %d has a tagged segment", i)
			}
		}
	}
}

func TestBuildDividersAlignedDifferentFields(t *testing.T) {
	// Two different fields that end at the same column are not a straddle,
	// even when their names and lengths match.
	a := field.New("x", 32)
	b := field.New("x", 32)
	rows := PackRows(32, []field.Field{a, b}, true, false)
	dividers := BuildDividers(32, rows)

	want := []span{{0, 32, false}}
	if diff := cmp.Diff(want, spans(dividers[1])); diff != "" {
		t.Errorf("middle divider mismatch (-want +got):\n%s", diff)
	}
}

func TestAddSplice(t *testing.T) {
	f := field.New("f", 40)
	other := field.New("g", 8)

	tests := []struct {
		name       string
		before     Segment
		after      Segment
		wantTagged bool
		wantLen    int
	}{
		{
			name:       "same field overlapping",
			before:     &RowSegment{Represents: &f, Start: 0, Length: 8},
			after:      &RowSegment{Represents: &f, Start: 0, Length: 32},
			wantTagged: true,
			wantLen:    8,
		},
		{
			name:       "different fields",
			before:     &RowSegment{Represents: &other, Start: 0, Length: 8},
			after:      &RowSegment{Represents: &f, Start: 0, Length: 32},
			wantTagged: false,
			wantLen:    8,
		},
		{
			name:       "same field not overlapping",
			before:     &RowSegment{Represents: &f, Start: 0, Length: 8},
			after:      &RowSegment{Represents: &f, Start: 8, Length: 24},
			wantTagged: false,
			wantLen:    8,
		},
		{
			name:       "no counterpart",
			before:     &RowSegment{Represents: &f, Start: 0, Length: 8},
			after:      nil,
			wantTagged: false,
			wantLen:    8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Divider{Bit: 32}
			d.AddSplice(tt.before, tt.after)
			if len(d.Segments) != 1 {
				t.Fatalf("AddSplice() produced %d segments, want 1", len(d.Segments))
			}
			s := d.Segments[0]
			if (s.Represents != nil) != tt.wantTagged {
				t.Errorf("tagged = %v, want %v", s.Represents != nil, tt.wantTagged)
			}
			if s.Length != tt.wantLen || d.Used != tt.wantLen {
				t.Errorf("Length = %d, Used = %d, want %d", s.Length, d.Used, tt.wantLen)
			}
		})
	}
}

func TestAddSpliceSkipsEmpty(t *testing.T) {
	d := &Divider{Bit: 32, Used: 8}
	d.AddSplice(&RowSegment{Start: 0, Length: 8}, nil)

	if len(d.Segments) != 0 {
		t.Errorf("AddSplice() emitted %d segments for an empty range, want 0", len(d.Segments))
	}
}
