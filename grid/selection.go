package grid

// Selection is a merge-aware rectangular set of visible cells.
//
// Cells are listed row-major. Area is the minimal grid box over the selected
// cells' areas and Bounds is its pixel rectangle.
type Selection struct {
	Cells  []Pos
	Area   Area
	Bounds Rect
}

func (s Selection) Empty() bool { return len(s.Cells) == 0 }

func (s Selection) Len() int { return len(s.Cells) }

// First returns the top-left-most selected cell.
func (s Selection) First() (Pos, bool) {
	if len(s.Cells) == 0 {
		return Pos{}, false
	}
	return s.Cells[0], true
}

func (s Selection) Contains(p Pos) bool {
	for _, c := range s.Cells {
		if c == p {
			return true
		}
	}
	return false
}

func (s Selection) Clone() Selection {
	out := s
	out.Cells = append([]Pos(nil), s.Cells...)
	if len(out.Cells) == 0 {
		out.Cells = nil
	}
	return out
}

// Select computes the selection dragged from anchor to current.
//
// The provisional box spans both cells' own areas. Every visible cell whose
// area intersects that box is selected whole, so a merged cell is never cut
// in half. The scan is a single pass: pulling in a partially overlapping cell
// does not widen the box for further cells.
func (g *Grid) Select(anchor, current Pos) Selection {
	if !g.InBounds(anchor) || !g.InBounds(current) {
		return Selection{}
	}
	box := g.at(anchor).Area().Union(g.at(current).Area())

	var sel Selection
	for r := range g.cells {
		for c := range g.cells[r] {
			cell := &g.cells[r][c]
			if cell.Hidden {
				continue
			}
			a := cell.Area()
			if !a.Intersects(box) {
				continue
			}
			sel.Cells = append(sel.Cells, cell.Pos)
			sel.Area = sel.Area.Union(a)
			sel.Bounds = sel.Bounds.Union(g.areaRect(a))
		}
	}
	return sel
}

// SelectCell selects the single visible cell covering p.
func (g *Grid) SelectCell(p Pos) Selection {
	v, ok := g.Covering(p)
	if !ok {
		return Selection{}
	}
	return g.Select(v, v)
}
