package grid

import (
	"fmt"
	"math"
)

const (
	DefaultRows      = 4
	DefaultCols      = 4
	DefaultRowHeight = 40.0
	DefaultColWidth  = 100.0
)

// Options configures a new Grid. Zero values select the defaults.
type Options struct {
	Rows      int
	Cols      int
	RowHeight float64
	ColWidth  float64

	// Sizes used for rows/columns created by InsertRow/InsertCol.
	InsertRowHeight float64
	InsertColWidth  float64

	// Base style; nil selects DefaultStyle.
	Style *Style

	// Text returns the initial text of each cell; nil selects "R{row+1}C{col+1}".
	Text func(p Pos) string
}

func normalizeOptions(opt Options) Options {
	if opt.Rows <= 0 {
		opt.Rows = DefaultRows
	}
	if opt.Cols <= 0 {
		opt.Cols = DefaultCols
	}
	if !isFinite(opt.RowHeight) || opt.RowHeight <= 0 {
		opt.RowHeight = DefaultRowHeight
	}
	if !isFinite(opt.ColWidth) || opt.ColWidth <= 0 {
		opt.ColWidth = DefaultColWidth
	}
	if !isFinite(opt.InsertRowHeight) || opt.InsertRowHeight <= 0 {
		opt.InsertRowHeight = DefaultRowHeight
	}
	if !isFinite(opt.InsertColWidth) || opt.InsertColWidth <= 0 {
		opt.InsertColWidth = DefaultColWidth
	}
	if opt.Text == nil {
		opt.Text = DefaultCellText
	}
	return opt
}

// DefaultCellText labels a cell by its 1-based row and column.
func DefaultCellText(p Pos) string {
	return fmt.Sprintf("R%dC%d", p.Row+1, p.Col+1)
}

// Grid owns the cells and dimensions of one table.
type Grid struct {
	cells [][]Cell
	dims  Dimensions
	base  Style
	opt   Options

	version       uint64
	lastChange    Change
	hasLastChange bool
}

func New(opt Options) *Grid {
	opt = normalizeOptions(opt)
	base := DefaultStyle()
	if opt.Style != nil {
		base = *opt.Style
	}

	g := &Grid{
		dims: NewDimensions(opt.Rows, opt.Cols, opt.RowHeight, opt.ColWidth),
		base: base,
		opt:  opt,
	}
	g.cells = make([][]Cell, opt.Rows)
	for r := range g.cells {
		row := make([]Cell, opt.Cols)
		for c := range row {
			p := Pos{Row: r, Col: c}
			row[c] = newCell(p, opt.Text(p))
		}
		g.cells[r] = row
	}
	return g
}

func (g *Grid) Rows() int { return len(g.cells) }

func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Version increments on every applied mutation that changed state.
func (g *Grid) Version() uint64 { return g.version }

// Dims returns a copy of the current dimensions.
func (g *Grid) Dims() Dimensions { return g.dims.Clone() }

// Base returns the table-wide style every cell inherits from.
func (g *Grid) Base() Style { return g.base }

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.Rows() && p.Col >= 0 && p.Col < g.Cols()
}

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Pos) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[p.Row][p.Col].clone(), true
}

func (g *Grid) at(p Pos) *Cell { return &g.cells[p.Row][p.Col] }

// EffectiveStyle resolves the style of the cell at p against the base style.
func (g *Grid) EffectiveStyle(p Pos) Style {
	if !g.InBounds(p) {
		return g.base
	}
	return g.at(p).Style.Resolve(g.base)
}

// Visible returns the anchors of every visible cell in row-major order.
func (g *Grid) Visible() []Pos {
	out := make([]Pos, 0, g.Rows()*g.Cols())
	for r := range g.cells {
		for c := range g.cells[r] {
			if !g.cells[r][c].Hidden {
				out = append(out, Pos{Row: r, Col: c})
			}
		}
	}
	return out
}

// Covering returns the visible cell whose area contains p. For a visible cell
// that is p itself.
func (g *Grid) Covering(p Pos) (Pos, bool) {
	if !g.InBounds(p) {
		return Pos{}, false
	}
	if !g.at(p).Hidden {
		return p, true
	}
	// Masters are always up and to the left of the cells they hide.
	for r := p.Row; r >= 0; r-- {
		for c := p.Col; c >= 0; c-- {
			cell := &g.cells[r][c]
			if cell.Hidden {
				continue
			}
			if cell.Area().Contains(p) {
				return Pos{Row: r, Col: c}, true
			}
		}
	}
	return Pos{}, false
}

// Check verifies that every cell's stored position matches its slot, that
// dimensions match the cell counts, and that visible cells tile the grid.
func (g *Grid) Check() error {
	rows, cols := g.Rows(), g.Cols()
	if rows < 1 || cols < 1 {
		return fmt.Errorf("grid: empty grid %dx%d", rows, cols)
	}
	if n := g.dims.Count(AxisRow); n != rows {
		return fmt.Errorf("grid: %d row heights for %d rows", n, rows)
	}
	if n := g.dims.Count(AxisCol); n != cols {
		return fmt.Errorf("grid: %d column widths for %d cols", n, cols)
	}

	owner := make([][]int, rows)
	for r := range owner {
		if len(g.cells[r]) != cols {
			return fmt.Errorf("grid: row %d has %d cells, want %d", r, len(g.cells[r]), cols)
		}
		owner[r] = make([]int, cols)
	}

	visible := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := g.cells[r][c]
			if cell.Pos != (Pos{Row: r, Col: c}) {
				return fmt.Errorf("grid: cell at (%d,%d) stores %v", r, c, cell.Pos)
			}
			if cell.RowSpan < 1 || cell.ColSpan < 1 {
				return fmt.Errorf("grid: cell %v has span %dx%d", cell.Pos, cell.RowSpan, cell.ColSpan)
			}
			if cell.Hidden {
				if cell.Merged() {
					return fmt.Errorf("grid: hidden cell %v has span %dx%d", cell.Pos, cell.RowSpan, cell.ColSpan)
				}
				continue
			}
			visible++
			a := cell.Area()
			if a.Bottom > rows || a.Right > cols {
				return fmt.Errorf("grid: cell %v span exceeds %dx%d", cell.Pos, rows, cols)
			}
			for rr := a.Top; rr < a.Bottom; rr++ {
				for cc := a.Left; cc < a.Right; cc++ {
					if owner[rr][cc] != 0 {
						return fmt.Errorf("grid: (%d,%d) covered twice", rr, cc)
					}
					owner[rr][cc] = visible
					if (rr != r || cc != c) && !g.cells[rr][cc].Hidden {
						return fmt.Errorf("grid: (%d,%d) inside %v is not hidden", rr, cc, cell.Pos)
					}
				}
			}
		}
	}
	for r := range owner {
		for c := range owner[r] {
			if owner[r][c] == 0 {
				return fmt.Errorf("grid: (%d,%d) not covered", r, c)
			}
		}
	}
	for _, a := range []Axis{AxisRow, AxisCol} {
		for i := 0; i < g.dims.Count(a); i++ {
			if s := g.dims.Size(a, i); math.IsNaN(s) || s < MinSize {
				return fmt.Errorf("grid: %s %d has size %v", a, i, s)
			}
		}
	}
	return nil
}

// Resize sets the size of one row or column, clamped to MinSize.
func (g *Grid) Resize(a Axis, index int, size float64) Result {
	cb := g.beginChange(ChangeResize)
	before := g.dims.Size(a, index)
	res := g.dims.Resize(a, index, size)
	if res.Rejected() || g.dims.Size(a, index) == before {
		return res
	}
	cb.axis = a
	cb.index = index
	g.commitChange(cb)
	return res
}

// Scale multiplies all column widths by sx and all row heights by sy.
func (g *Grid) Scale(sx, sy float64) Result {
	if sx == 1 && sy == 1 {
		return Ok()
	}
	cb := g.beginChange(ChangeScale)
	res := g.dims.Scale(sx, sy)
	if res.Rejected() {
		return res
	}
	g.commitChange(cb)
	return res
}

// SetText replaces the text of a visible cell.
func (g *Grid) SetText(p Pos, text string) Result {
	if !g.InBounds(p) {
		return Reject(ReasonOutOfRange)
	}
	cell := g.at(p)
	if cell.Hidden {
		return Reject(ReasonHiddenCell)
	}
	if cell.Text == text {
		return Ok()
	}
	cb := g.beginChange(ChangeText)
	cell.Text = text
	cb.area = cell.Area()
	g.commitChange(cb)
	return Ok()
}

// ApplyStyle merges patch into the overrides of each listed visible cell.
func (g *Grid) ApplyStyle(cells []Pos, patch StyleOverride) Result {
	if len(cells) == 0 {
		return Reject(ReasonNoSelection)
	}
	patch, ok := normalizeStylePatch(patch)
	if !ok {
		return Reject(ReasonInvalidSize)
	}
	var area Area
	for _, p := range cells {
		if !g.InBounds(p) {
			return Reject(ReasonOutOfRange)
		}
		if g.at(p).Hidden {
			return Reject(ReasonHiddenCell)
		}
		area = area.Union(g.at(p).Area())
	}
	if patch.IsZero() {
		return Ok()
	}

	cb := g.beginChange(ChangeStyle)
	for _, p := range cells {
		cell := g.at(p)
		cell.Style = cell.Style.Merge(patch)
	}
	cb.area = area
	g.commitChange(cb)
	return Ok()
}

// SetBaseStyle applies patch to the whole table: the base style takes the
// patched values and every cell drops its own override of those fields.
func (g *Grid) SetBaseStyle(patch StyleOverride) Result {
	patch, ok := normalizeStylePatch(patch)
	if !ok {
		return Reject(ReasonInvalidSize)
	}
	if patch.IsZero() {
		return Ok()
	}
	cb := g.beginChange(ChangeStyle)
	g.base = patch.Resolve(g.base)
	for r := range g.cells {
		for c := range g.cells[r] {
			cell := &g.cells[r][c]
			cell.Style = cell.Style.Without(patch)
		}
	}
	cb.area = Area{Bottom: g.Rows(), Right: g.Cols()}
	g.commitChange(cb)
	return Ok()
}

// ResetStyles installs ResetStyle as the base and clears every override.
func (g *Grid) ResetStyles() Result {
	cb := g.beginChange(ChangeStyle)
	g.base = ResetStyle()
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c].Style = StyleOverride{}
		}
	}
	cb.area = Area{Bottom: g.Rows(), Right: g.Cols()}
	g.commitChange(cb)
	return Ok()
}
