package grid

import "math"

const (
	// DefaultTolerance is the distance, in pixels, within which a pointer
	// grabs an internal grid line.
	DefaultTolerance = 8.0
	// DefaultEdgeBand is the distance from an outer edge within which EdgeAt
	// reports that edge.
	DefaultEdgeBand = 40.0
)

// Handle identifies a draggable internal grid line. Index is the row or
// column directly above or left of the line; dragging resizes that line.
type Handle struct {
	Axis  Axis
	Index int
}

// Edge is one of the table's four outer edges.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Width and Height are the table's total extents.
func (g *Grid) Width() float64  { return g.dims.Extent(AxisCol) }
func (g *Grid) Height() float64 { return g.dims.Extent(AxisRow) }

// Contains reports whether (x, y) lies on or inside the table's outer border.
func (g *Grid) Contains(x, y float64) bool {
	return x >= 0 && x <= g.Width() && y >= 0 && y <= g.Height()
}

// CellAt maps a local point to the grid slot under it.
//
// Bounds are half-open, so points on the right or bottom border resolve to
// nothing. The returned slot may be hidden; see VisibleCellAt.
func (g *Grid) CellAt(x, y float64) (Pos, bool) {
	col, ok := g.dims.lineAt(AxisCol, x)
	if !ok {
		return Pos{}, false
	}
	row, ok := g.dims.lineAt(AxisRow, y)
	if !ok {
		return Pos{}, false
	}
	return Pos{Row: row, Col: col}, true
}

// VisibleCellAt maps a local point to the visible cell drawn under it,
// resolving hits inside a merged block to the block's master.
func (g *Grid) VisibleCellAt(x, y float64) (Pos, bool) {
	p, ok := g.CellAt(x, y)
	if !ok {
		return Pos{}, false
	}
	return g.Covering(p)
}

// BoundsOf returns the pixel rectangle covered by the cell at p, spans
// included.
func (g *Grid) BoundsOf(p Pos) (Rect, bool) {
	if !g.InBounds(p) {
		return Rect{}, false
	}
	return g.areaRect(g.at(p).Area()), true
}

// AreaBounds returns the pixel rectangle of a grid-cell area.
func (g *Grid) AreaBounds(a Area) Rect {
	return g.areaRect(a)
}

func (g *Grid) areaRect(a Area) Rect {
	return Rect{
		X: g.dims.Offset(AxisCol, a.Left),
		Y: g.dims.Offset(AxisRow, a.Top),
		W: g.dims.Span(AxisCol, a.Left, a.Cols()),
		H: g.dims.Span(AxisRow, a.Top, a.Rows()),
	}
}

// ResizeHandleAt returns the internal grid line within tolerance of (x, y).
//
// The outer border is never a handle. The orthogonal coordinate must lie
// strictly inside the table. Column lines are tested before row lines and the
// first match in scan order wins. A non-positive tolerance selects
// DefaultTolerance.
func (g *Grid) ResizeHandleAt(x, y, tolerance float64) (Handle, bool) {
	if !(tolerance > 0) {
		tolerance = DefaultTolerance
	}
	w, h := g.Width(), g.Height()

	if y > 0 && y < h {
		var line float64
		for c := 0; c < g.Cols()-1; c++ {
			line += g.dims.Size(AxisCol, c)
			if math.Abs(x-line) < tolerance {
				return Handle{Axis: AxisCol, Index: c}, true
			}
		}
	}
	if x > 0 && x < w {
		var line float64
		for r := 0; r < g.Rows()-1; r++ {
			line += g.dims.Size(AxisRow, r)
			if math.Abs(y-line) < tolerance {
				return Handle{Axis: AxisRow, Index: r}, true
			}
		}
	}
	return Handle{}, false
}

// EdgeAt reports which outer edge (x, y) is within band of. Top and bottom
// are tested first and require x strictly inside the table's width; left and
// right require y strictly inside its height. A non-positive band selects
// DefaultEdgeBand.
func (g *Grid) EdgeAt(x, y, band float64) (Edge, bool) {
	if !(band > 0) {
		band = DefaultEdgeBand
	}
	w, h := g.Width(), g.Height()

	if x > 0 && x < w {
		if math.Abs(y) < band {
			return EdgeTop, true
		}
		if math.Abs(y-h) < band {
			return EdgeBottom, true
		}
	}
	if y > 0 && y < h {
		if math.Abs(x) < band {
			return EdgeLeft, true
		}
		if math.Abs(x-w) < band {
			return EdgeRight, true
		}
	}
	return 0, false
}
