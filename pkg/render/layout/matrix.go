package layout

// Matrix is the grid a style draws from.
//
// Elements is row-major; a content element is repeated across every cell it
// covers, so consecutive cells may hold the same pointer.
type Matrix struct {
	Width    int
	Height   int
	Elements []Element
}

// At returns the element at column x, line y, or nil outside the grid.
func (m *Matrix) At(x, y int) Element {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return nil
	}
	i := y*m.Width + x
	if i >= len(m.Elements) {
		return nil
	}
	return m.Elements[i]
}

// Position returns the column and line of the element at flat index i.
func (m *Matrix) Position(i int) (x, y int) {
	if m.Width == 0 {
		return 0, 0
	}
	return i % m.Width, i / m.Width
}

// BuildMatrix expands lines into a grid and computes connector values.
//
// Every segment contributes a connector followed by its element repeated
// 2*bits-1 times; every line is closed by a connector and a [LineBreak].
func BuildMatrix(lines []Line) *Matrix {
	m := &Matrix{Height: len(lines)}
	for y, l := range lines {
		for _, s := range l.Segments {
			m.Elements = append(m.Elements, &Connector{})
			for k := 0; k < 2*s.Bits()-1; k++ {
				m.Elements = append(m.Elements, s)
			}
		}
		m.Elements = append(m.Elements, &Connector{}, &LineBreak{Line: y})
	}
	if m.Height > 0 {
		m.Width = len(m.Elements) / m.Height
	}
	m.connect()
	return m
}

// DividerVisible reports whether the divider segment at (x, y) is drawn.
//
// A divider is drawn when no field straddles it and something other than
// hidden padding sits directly above or below it.
func DividerVisible(m *Matrix, x, y int) bool {
	d, ok := m.At(x, y).(*DividerSegment)
	if !ok || d.Represents != nil {
		return false
	}
	for _, dy := range []int{-1, 1} {
		n := m.At(x, y+dy)
		if n == nil || isHiddenTail(n) {
			continue
		}
		return true
	}
	return false
}

func isHiddenTail(e Element) bool {
	t, ok := e.(*RowTail)
	return ok && !t.Visible
}

var directions = []struct {
	bit    uint8
	dx, dy int
}{
	{Top, 0, -1},
	{Right, 1, 0},
	{Bottom, 0, 1},
	{Left, -1, 0},
}

// connect computes every connector's value. Connectors right of hidden
// padding are isolated first so that their neighbours do not join them.
func (m *Matrix) connect() {
	for i, e := range m.Elements {
		c, ok := e.(*Connector)
		if !ok {
			continue
		}
		x, y := m.Position(i)
		if isHiddenTail(m.At(x-1, y)) {
			c.Individual = true
		}
	}

	for i, e := range m.Elements {
		c, ok := e.(*Connector)
		if !ok || c.Individual {
			continue
		}
		x, y := m.Position(i)
		for _, d := range directions {
			if m.connected(x+d.dx, y+d.dy) {
				c.Value |= d.bit
			}
		}
	}
}

// connected reports whether the cell at (x, y) carries a line towards its
// neighbour. Row content never does: row lines hold text.
func (m *Matrix) connected(x, y int) bool {
	switch n := m.At(x, y).(type) {
	case *Connector:
		return !n.Individual
	case *DividerSegment:
		return DividerVisible(m, x, y)
	default:
		return false
	}
}
