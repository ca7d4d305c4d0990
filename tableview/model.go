package tableview

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/cellgrid/grid"
	"github.com/iw2rmb/cellgrid/session"
)

// Model is a Bubble Tea component that renders and drives a session.
type Model struct {
	cfg  Config
	sess *session.Session

	viewport viewport.Model
	xOffset  int

	snap   session.Snapshot
	cursor session.Cursor
	last   grid.Result
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		sess:     cfg.Session,
		viewport: viewport.New(0, 0),
	}
	m.rebuildContent()
	return m
}

func (m Model) Session() *session.Session { return m.sess }

// Cursor is the pointer shape reported by the last mouse motion.
func (m Model) Cursor() session.Cursor { return m.cursor }

// LastResult is the result of the last trigger sent to the session.
func (m Model) LastResult() grid.Result { return m.last }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.rebuildContent()
	return m
}

func (m Model) View() string {
	base := m.viewport.View()
	if !m.cfg.ShowActions || m.snap.Mode != session.ModeEditing {
		return base
	}
	return overlay.Composite(m.renderActionBar(), base, overlay.Left, overlay.Bottom, 0, 0)
}

// syncFromSession re-renders when the session's snapshot token moved.
func (m *Model) syncFromSession() {
	snap := m.sess.Snapshot()
	if snap.Token == m.snap.Token {
		return
	}
	m.snap = snap
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) rebuildContent() {
	m.snap = m.sess.Snapshot()
	m.viewport.SetContent(m.renderContent())
}
