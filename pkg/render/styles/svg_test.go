package styles

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/protodiagram/pkg/field"
	"github.com/matzehuels/protodiagram/pkg/render/layout"
)

func TestSVGSingleBit(t *testing.T) {
	out := SVG{}.Output(matrix(32, false, field.New("t", 1)))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 528.0 48.0"`) {
		t.Errorf("unexpected header: %s", strings.SplitN(out, "\n", 2)[0])
	}
	if n := strings.Count(out, "<line "); n != 4 {
		t.Errorf("got %d lines, want 4", n)
	}
	if !strings.Contains(out, `<text x="16.0" y="24.0" fill="#000">t</text>`) {
		t.Errorf("missing label in:\n%s", out)
	}
}

func TestSVGReservedAndEscaping(t *testing.T) {
	out := SVG{}.Output(matrix(8, true, field.New("a<b", 2)))

	if !strings.Contains(out, ">a&lt;b</text>") {
		t.Error("field name should be escaped")
	}
	if !strings.Contains(out, `fill="#888">Reserved</text>`) {
		t.Error("visible padding should be labelled")
	}
}

func TestSVGWellFormed(t *testing.T) {
	out := SVG{}.Output(matrix(32, true, field.New("Timestamp", 64), field.New("x & y", 8)))

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			if err != io.EOF {
				t.Fatalf("invalid XML: %v", err)
			}
			break
		}
	}
}

func TestSVGEmpty(t *testing.T) {
	out := SVG{}.Output(layout.BuildMatrix(nil))

	if !strings.Contains(out, `viewBox="0 0 16.0 16.0"`) {
		t.Errorf("empty canvas = %s", out)
	}
	if strings.Contains(out, "<line") || strings.Contains(out, "<text") {
		t.Error("empty matrix should draw nothing")
	}
}
