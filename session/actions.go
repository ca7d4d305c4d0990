package session

import "github.com/iw2rmb/cellgrid/grid"

// Merge joins the selected cells. On success the selection becomes the new
// merged cell.
func (s *Session) Merge() grid.Result {
	if s.mode != ModeEditing {
		return s.reject("merge", grid.ReasonNotEditing)
	}
	before := s.g.Version()
	res := s.g.Merge(s.sel.Cells)
	if res.Applied {
		ch, _ := s.g.LastChange()
		s.sel = s.g.SelectCell(ch.Area.TopLeft())
		s.clearGesture()
	}
	return s.finish("merge", before, res)
}

// Split restores the single selected merged cell to unit cells.
func (s *Session) Split() grid.Result {
	if s.mode != ModeEditing {
		return s.reject("split", grid.ReasonNotEditing)
	}
	switch s.sel.Len() {
	case 0:
		return s.reject("split", grid.ReasonNoSelection)
	case 1:
	default:
		return s.reject("split", grid.ReasonMultipleCells)
	}
	before := s.g.Version()
	res := s.g.Split(s.sel.Cells[0])
	if res.Applied {
		s.invalidate()
	}
	return s.finish("split", before, res)
}

// InsertRow inserts a row of empty cells at index (0..Rows).
func (s *Session) InsertRow(index int) grid.Result {
	return s.structural("insert row", func() grid.Result { return s.g.InsertRow(index) })
}

// InsertCol inserts a column of empty cells at index (0..Cols).
func (s *Session) InsertCol(index int) grid.Result {
	return s.structural("insert col", func() grid.Result { return s.g.InsertCol(index) })
}

// RemoveRow removes the row of the first selected cell.
func (s *Session) RemoveRow() grid.Result {
	first, ok := s.sel.First()
	if s.mode == ModeEditing && !ok {
		return s.reject("remove row", grid.ReasonNoSelection)
	}
	return s.structural("remove row", func() grid.Result { return s.g.RemoveRow(first.Row) })
}

// RemoveCol removes the column of the first selected cell.
func (s *Session) RemoveCol() grid.Result {
	first, ok := s.sel.First()
	if s.mode == ModeEditing && !ok {
		return s.reject("remove col", grid.ReasonNoSelection)
	}
	return s.structural("remove col", func() grid.Result { return s.g.RemoveCol(first.Col) })
}

// InsertAtEdge inserts a row or column on the given outer edge: top inserts
// row 0, bottom appends a row, left inserts column 0, right appends a column.
func (s *Session) InsertAtEdge(e grid.Edge) grid.Result {
	switch e {
	case grid.EdgeTop:
		return s.InsertRow(0)
	case grid.EdgeBottom:
		return s.InsertRow(s.g.Rows())
	case grid.EdgeLeft:
		return s.InsertCol(0)
	case grid.EdgeRight:
		return s.InsertCol(s.g.Cols())
	default:
		return s.reject("insert at edge", grid.ReasonOutOfRange)
	}
}

func (s *Session) structural(op string, fn func() grid.Result) grid.Result {
	if s.mode != ModeEditing {
		return s.reject(op, grid.ReasonNotEditing)
	}
	before := s.g.Version()
	res := fn()
	if res.Applied {
		s.invalidate()
	}
	return s.finish(op, before, res)
}

// invalidate drops state that a structural edit may have made stale.
func (s *Session) invalidate() {
	s.sel = grid.Selection{}
	s.clearGesture()
}

// ApplyStyle patches the selected cells while editing, or the whole table's
// base style while browsing.
func (s *Session) ApplyStyle(patch grid.StyleOverride) grid.Result {
	before := s.g.Version()
	if s.mode == ModeEditing {
		if s.sel.Empty() {
			return s.reject("style", grid.ReasonNoSelection)
		}
		return s.finish("style", before, s.g.ApplyStyle(s.sel.Cells, patch))
	}
	return s.finish("table style", before, s.g.SetBaseStyle(patch))
}

// ToggleBold flips bold on the style target (see Snapshot.Target).
func (s *Session) ToggleBold() grid.Result {
	return s.ApplyStyle(grid.StyleOverride{Bold: grid.Some(!s.target().Bold)})
}

// ToggleItalic flips italic on the style target.
func (s *Session) ToggleItalic() grid.Result {
	return s.ApplyStyle(grid.StyleOverride{Italic: grid.Some(!s.target().Italic)})
}

// SetAlign sets the text alignment of the style target.
func (s *Session) SetAlign(a grid.Align) grid.Result {
	return s.ApplyStyle(grid.StyleOverride{Align: grid.Some(a)})
}

// ResetStyles installs the neutral reset style on every cell.
func (s *Session) ResetStyles() grid.Result {
	before := s.g.Version()
	return s.finish("reset styles", before, s.g.ResetStyles())
}

// SetText replaces the text of the visible cell at p.
func (s *Session) SetText(p grid.Pos, text string) grid.Result {
	before := s.g.Version()
	return s.finish("set text", before, s.g.SetText(p, text))
}

// ScaleTable commits a whole-table scale: widths are multiplied by sx and
// heights by sy. Only valid while browsing.
func (s *Session) ScaleTable(sx, sy float64) grid.Result {
	if s.mode != ModeBrowsing {
		return s.reject("scale", grid.ReasonNotBrowsing)
	}
	before := s.g.Version()
	res := s.g.Scale(sx, sy)
	return s.finish("scale", before, res)
}

// target is the style the styling controls reflect: the first selected cell,
// or cell (0,0) when nothing is selected.
func (s *Session) target() grid.Style {
	if first, ok := s.sel.First(); ok {
		return s.g.EffectiveStyle(first)
	}
	return s.g.EffectiveStyle(grid.Pos{})
}
