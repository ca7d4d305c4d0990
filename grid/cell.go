package grid

// Cell is one slot of the grid.
//
// A visible cell covers Area(); a hidden cell is covered by some other visible
// cell's span and always has RowSpan == ColSpan == 1.
type Cell struct {
	Pos     Pos
	RowSpan int
	ColSpan int
	Hidden  bool
	Text    string
	Style   StyleOverride
}

func newCell(p Pos, text string) Cell {
	return Cell{Pos: p, RowSpan: 1, ColSpan: 1, Text: text}
}

// Area returns the cells covered by c.
func (c Cell) Area() Area { return AreaAt(c.Pos, c.RowSpan, c.ColSpan) }

// Merged reports whether c spans more than one grid cell.
func (c Cell) Merged() bool { return c.RowSpan > 1 || c.ColSpan > 1 }

func (c Cell) clone() Cell {
	c.Style = c.Style.Clone()
	return c
}

func (c *Cell) resetSpan() {
	c.RowSpan = 1
	c.ColSpan = 1
	c.Hidden = false
}
