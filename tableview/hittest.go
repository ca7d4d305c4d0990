package tableview

// screenToLocal maps component-relative terminal coordinates to the session's
// local pixel space. The top-left corner of a terminal cell is the point it
// stands for, so a cell drawn on a grid line maps onto that line.
func (m Model) screenToLocal(x, y int) (float64, float64) {
	px := float64(x+m.xOffset) * m.cfg.CellWidth
	py := float64(y+m.viewport.YOffset) * m.cfg.CellHeight
	return px, py
}
