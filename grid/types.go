package grid

import "math"

// Axis selects rows or columns.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisCol
)

func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisCol:
		return "col"
	default:
		return "unknown"
	}
}

// Pos identifies a cell by its anchor (row, col).
type Pos struct {
	Row int
	Col int
}

// ComparePos orders positions row-major.
func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// Area is a half-open rectangle of grid cells: [Top, Bottom) x [Left, Right).
type Area struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// AreaAt returns the area covered by a cell anchored at p with the given spans.
func AreaAt(p Pos, rowSpan, colSpan int) Area {
	return Area{Top: p.Row, Left: p.Col, Bottom: p.Row + rowSpan, Right: p.Col + colSpan}
}

func (a Area) IsEmpty() bool { return a.Bottom <= a.Top || a.Right <= a.Left }

func (a Area) Rows() int { return maxInt(a.Bottom-a.Top, 0) }

func (a Area) Cols() int { return maxInt(a.Right-a.Left, 0) }

// TopLeft returns the anchor of the area.
func (a Area) TopLeft() Pos { return Pos{Row: a.Top, Col: a.Left} }

func (a Area) Contains(p Pos) bool {
	return p.Row >= a.Top && p.Row < a.Bottom && p.Col >= a.Left && p.Col < a.Right
}

// ContainsArea reports whether b lies entirely inside a.
func (a Area) ContainsArea(b Area) bool {
	return b.Top >= a.Top && b.Bottom <= a.Bottom && b.Left >= a.Left && b.Right <= a.Right
}

func (a Area) Intersects(b Area) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	return a.Top < b.Bottom && b.Top < a.Bottom && a.Left < b.Right && b.Left < a.Right
}

// Union returns the smallest area covering both a and b. Empty areas are ignored.
func (a Area) Union(b Area) Area {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	return Area{
		Top:    minInt(a.Top, b.Top),
		Left:   minInt(a.Left, b.Left),
		Bottom: maxInt(a.Bottom, b.Bottom),
		Right:  maxInt(a.Right, b.Right),
	}
}

// Point is a position in table-local pixels.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in table-local pixels.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// ContainsPoint uses half-open bounds: [X, X+W) x [Y, Y+H).
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Union returns the smallest rectangle covering both r and o. Empty
// rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.Right(), o.Right())
	y1 := math.Max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
