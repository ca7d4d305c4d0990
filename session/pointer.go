package session

import "github.com/iw2rmb/cellgrid/grid"

// PointerDown handles a primary-button press at local (x, y).
//
// While editing, a press on an internal grid line starts a resize; a press
// inside the table starts a selection drag; a press outside the table exits
// editing. While browsing it does nothing.
func (s *Session) PointerDown(x, y float64) Gesture {
	if s.mode != ModeEditing {
		return GestureNone
	}
	s.clearGesture()

	if h, ok := s.g.ResizeHandleAt(x, y, s.cfg.Tolerance); ok {
		s.resize = &resizeState{
			handle:   h,
			anchor:   axisCoord(h.Axis, x, y),
			original: s.g.Dims().Size(h.Axis, h.Index),
		}
		s.log.Debugf("resize start: %s %d from %.1f", h.Axis, h.Index, s.resize.original)
		return GestureResize
	}

	if !s.g.Contains(x, y) {
		s.Exit()
		return GestureExit
	}

	// Points on the closed right/bottom border map to no cell.
	p, ok := s.g.VisibleCellAt(x, y)
	if !ok {
		return GestureNone
	}
	s.dragging = true
	s.dragAnchor = p
	s.sel = s.g.Select(p, p)
	return GestureSelect
}

// PointerMove handles pointer motion at local (x, y) and returns the cursor
// a renderer should show.
func (s *Session) PointerMove(x, y float64) Cursor {
	if r := s.resize; r != nil {
		delta := axisCoord(r.handle.Axis, x, y) - r.anchor
		before := s.g.Version()
		res := s.g.Resize(r.handle.Axis, r.handle.Index, r.original+delta)
		s.refreshBounds()
		s.finish("resize", before, res)
		return cursorFor(r.handle.Axis)
	}

	if s.dragging {
		if p, ok := s.g.VisibleCellAt(x, y); ok {
			s.sel = s.g.Select(s.dragAnchor, p)
		}
		return CursorDefault
	}

	if s.mode != ModeEditing {
		return CursorDefault
	}
	if h, ok := s.g.ResizeHandleAt(x, y, s.cfg.Tolerance); ok {
		return cursorFor(h.Axis)
	}
	return CursorDefault
}

// PointerUp ends any resize or selection drag.
func (s *Session) PointerUp() {
	if s.resize != nil {
		s.log.Debugf("resize end: %s %d", s.resize.handle.Axis, s.resize.handle.Index)
	}
	s.clearGesture()
}

// EdgeAt reports the outer edge whose insertion affordance sits under
// (x, y). Only points outside the table count, and only while editing.
func (s *Session) EdgeAt(x, y float64) (grid.Edge, bool) {
	if s.mode != ModeEditing || s.g.Contains(x, y) {
		return 0, false
	}
	return s.g.EdgeAt(x, y, s.cfg.EdgeBand)
}

func axisCoord(a grid.Axis, x, y float64) float64 {
	if a == grid.AxisCol {
		return x
	}
	return y
}

func cursorFor(a grid.Axis) Cursor {
	if a == grid.AxisCol {
		return CursorColResize
	}
	return CursorRowResize
}
