package grid

// MergeArea returns the area Merge would cover for cells, or the reason the
// merge would be rejected.
//
// The area is the bounding box of each cell's own covered area, so a cell
// that is already merged contributes its whole span.
func (g *Grid) MergeArea(cells []Pos) (Area, Reason) {
	seen := make(map[Pos]struct{}, len(cells))
	var box Area
	for _, p := range cells {
		if !g.InBounds(p) {
			return Area{}, ReasonOutOfRange
		}
		cell := g.at(p)
		if cell.Hidden {
			return Area{}, ReasonHiddenCell
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		box = box.Union(cell.Area())
	}
	if len(seen) < 2 {
		return Area{}, ReasonTooFewCells
	}

	// A visible cell straddling the box edge would overlap the new master.
	for r := range g.cells {
		for c := range g.cells[r] {
			cell := &g.cells[r][c]
			if cell.Hidden {
				continue
			}
			a := cell.Area()
			if a.Intersects(box) && !box.ContainsArea(a) {
				return Area{}, ReasonSplitsMerge
			}
		}
	}
	return box, ReasonNone
}

// Merge joins the listed visible cells into one cell anchored at the top-left
// of their bounding box. Every other cell inside the box becomes hidden.
func (g *Grid) Merge(cells []Pos) Result {
	box, reason := g.MergeArea(cells)
	if reason != ReasonNone {
		return Reject(reason)
	}

	cb := g.beginChange(ChangeMerge)
	for r := box.Top; r < box.Bottom; r++ {
		for c := box.Left; c < box.Right; c++ {
			cell := &g.cells[r][c]
			cell.RowSpan = 1
			cell.ColSpan = 1
			cell.Hidden = true
		}
	}
	master := g.at(box.TopLeft())
	master.RowSpan = box.Rows()
	master.ColSpan = box.Cols()
	master.Hidden = false

	cb.area = box
	g.commitChange(cb)
	return Ok()
}

// Split restores every cell covered by the merged cell at p to a visible
// unit cell. It is rejected when p is not merged.
func (g *Grid) Split(p Pos) Result {
	if !g.InBounds(p) {
		return Reject(ReasonOutOfRange)
	}
	cell := g.at(p)
	if cell.Hidden {
		return Reject(ReasonHiddenCell)
	}
	if !cell.Merged() {
		return Reject(ReasonUnitSpan)
	}

	cb := g.beginChange(ChangeSplit)
	area := cell.Area()
	for r := area.Top; r < area.Bottom; r++ {
		for c := area.Left; c < area.Right; c++ {
			g.cells[r][c].resetSpan()
		}
	}
	cb.area = area
	g.commitChange(cb)
	return Ok()
}
