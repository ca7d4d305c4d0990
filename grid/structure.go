package grid

// InsertRow inserts a row of fresh cells at index (0 <= index <= Rows()).
//
// Every merge in the grid is cleared: a span crossing the new row would no
// longer tile.
func (g *Grid) InsertRow(index int) Result {
	if index < 0 || index > g.Rows() {
		return Reject(ReasonOutOfRange)
	}
	cb := g.beginChange(ChangeInsert)
	if res := g.dims.InsertRow(index, g.opt.InsertRowHeight); res.Rejected() {
		return res
	}

	row := make([]Cell, g.Cols())
	for c := range row {
		row[c] = newCell(Pos{Row: index, Col: c}, "")
	}
	out := make([][]Cell, 0, g.Rows()+1)
	out = append(out, g.cells[:index]...)
	out = append(out, row)
	out = append(out, g.cells[index:]...)
	g.cells = out

	g.restamp()
	g.resetMerges()
	cb.axis = AxisRow
	cb.index = index
	cb.mergesReset = true
	g.commitChange(cb)
	return Ok()
}

// InsertCol inserts a column of fresh cells at index (0 <= index <= Cols()).
// Every merge in the grid is cleared.
func (g *Grid) InsertCol(index int) Result {
	if index < 0 || index > g.Cols() {
		return Reject(ReasonOutOfRange)
	}
	cb := g.beginChange(ChangeInsert)
	if res := g.dims.InsertCol(index, g.opt.InsertColWidth); res.Rejected() {
		return res
	}

	for r := range g.cells {
		old := g.cells[r]
		row := make([]Cell, 0, len(old)+1)
		row = append(row, old[:index]...)
		row = append(row, newCell(Pos{Row: r, Col: index}, ""))
		row = append(row, old[index:]...)
		g.cells[r] = row
	}

	g.restamp()
	g.resetMerges()
	cb.axis = AxisCol
	cb.index = index
	cb.mergesReset = true
	g.commitChange(cb)
	return Ok()
}

// RemoveRow deletes row index. It is rejected when only one row remains.
// Every merge in the grid is cleared.
func (g *Grid) RemoveRow(index int) Result {
	if index < 0 || index >= g.Rows() {
		return Reject(ReasonOutOfRange)
	}
	if g.Rows() <= 1 {
		return Reject(ReasonLastLine)
	}
	cb := g.beginChange(ChangeRemove)
	if res := g.dims.RemoveRow(index); res.Rejected() {
		return res
	}

	out := make([][]Cell, 0, g.Rows()-1)
	out = append(out, g.cells[:index]...)
	out = append(out, g.cells[index+1:]...)
	g.cells = out

	g.restamp()
	g.resetMerges()
	cb.axis = AxisRow
	cb.index = index
	cb.mergesReset = true
	g.commitChange(cb)
	return Ok()
}

// RemoveCol deletes column index. It is rejected when only one column
// remains. Every merge in the grid is cleared.
func (g *Grid) RemoveCol(index int) Result {
	if index < 0 || index >= g.Cols() {
		return Reject(ReasonOutOfRange)
	}
	if g.Cols() <= 1 {
		return Reject(ReasonLastLine)
	}
	cb := g.beginChange(ChangeRemove)
	if res := g.dims.RemoveCol(index); res.Rejected() {
		return res
	}

	for r := range g.cells {
		old := g.cells[r]
		row := make([]Cell, 0, len(old)-1)
		row = append(row, old[:index]...)
		row = append(row, old[index+1:]...)
		g.cells[r] = row
	}

	g.restamp()
	g.resetMerges()
	cb.axis = AxisCol
	cb.index = index
	cb.mergesReset = true
	g.commitChange(cb)
	return Ok()
}

// Insert and Remove dispatch on axis.
func (g *Grid) Insert(a Axis, index int) Result {
	if a == AxisCol {
		return g.InsertCol(index)
	}
	return g.InsertRow(index)
}

func (g *Grid) Remove(a Axis, index int) Result {
	if a == AxisCol {
		return g.RemoveCol(index)
	}
	return g.RemoveRow(index)
}

func (g *Grid) restamp() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c].Pos = Pos{Row: r, Col: c}
		}
	}
}

func (g *Grid) resetMerges() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c].resetSpan()
		}
	}
}
