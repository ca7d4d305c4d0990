package tableview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/cellgrid/grid"
	"github.com/iw2rmb/cellgrid/session"
)

const horizontalStep = 4

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		return m.updateKey(msg), nil
	default:
		// Hosts may drive the session directly between messages.
		m.syncFromSession()
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	s := m.sess
	sel := s.Selection()

	switch {
	case key.Matches(msg, km.Enter):
		m.last = s.Enter()
	case key.Matches(msg, km.Exit):
		m.last = s.Exit()
	case key.Matches(msg, km.Merge):
		m.last = s.Merge()
	case key.Matches(msg, km.Split):
		m.last = s.Split()
	case key.Matches(msg, km.InsertRowAbove):
		m.last = s.InsertRow(insertBefore(sel, grid.AxisRow))
	case key.Matches(msg, km.InsertRowBelow):
		m.last = s.InsertRow(insertAfter(sel, grid.AxisRow, s.Grid().Rows()))
	case key.Matches(msg, km.InsertColLeft):
		m.last = s.InsertCol(insertBefore(sel, grid.AxisCol))
	case key.Matches(msg, km.InsertColRight):
		m.last = s.InsertCol(insertAfter(sel, grid.AxisCol, s.Grid().Cols()))
	case key.Matches(msg, km.RemoveRow):
		m.last = s.RemoveRow()
	case key.Matches(msg, km.RemoveCol):
		m.last = s.RemoveCol()
	case key.Matches(msg, km.Bold):
		m.last = s.ToggleBold()
	case key.Matches(msg, km.Italic):
		m.last = s.ToggleItalic()
	case key.Matches(msg, km.AlignLeft):
		m.last = s.SetAlign(grid.AlignLeft)
	case key.Matches(msg, km.AlignRight):
		m.last = s.SetAlign(grid.AlignRight)
	case key.Matches(msg, km.AlignCenter):
		m.last = s.SetAlign(grid.AlignCenter)
	case key.Matches(msg, km.ResetStyles):
		m.last = s.ResetStyles()
	case key.Matches(msg, km.ScrollUp):
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
		return m
	case key.Matches(msg, km.ScrollDown):
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
		return m
	case key.Matches(msg, km.ScrollLeft):
		m.xOffset = max(m.xOffset-horizontalStep, 0)
		m.rebuildContent()
		return m
	case key.Matches(msg, km.ScrollRight):
		m.xOffset += horizontalStep
		m.rebuildContent()
		return m
	default:
		return m
	}
	m.syncFromSession()
	return m
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	x, y := m.screenToLocal(msg.X, msg.Y)
	s := m.sess

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		// Terminals have no double-click; a press on the table activates it.
		if s.Mode() == session.ModeBrowsing {
			if !s.Grid().Contains(x, y) {
				return m, nil
			}
			s.Enter()
		}
		if e, ok := s.EdgeAt(x, y); ok {
			m.last = s.InsertAtEdge(e)
		} else {
			s.PointerDown(x, y)
		}
	case tea.MouseActionMotion:
		m.cursor = s.PointerMove(x, y)
	case tea.MouseActionRelease:
		s.PointerUp()
	}

	m.syncFromSession()
	return m, nil
}

func insertBefore(sel grid.Selection, a grid.Axis) int {
	if sel.Empty() {
		return 0
	}
	if a == grid.AxisRow {
		return sel.Area.Top
	}
	return sel.Area.Left
}

func insertAfter(sel grid.Selection, a grid.Axis, count int) int {
	if sel.Empty() {
		return count
	}
	if a == grid.AxisRow {
		return sel.Area.Bottom
	}
	return sel.Area.Right
}
