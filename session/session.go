package session

import (
	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"

	"github.com/iw2rmb/cellgrid/grid"
)

type resizeState struct {
	handle   grid.Handle
	anchor   float64
	original float64
}

// Session owns one grid and the transient state of the gesture in progress.
type Session struct {
	cfg  Config
	g    *grid.Grid
	mode Mode
	sel  grid.Selection

	// Cleared on pointer-up.
	resize     *resizeState
	dragging   bool
	dragAnchor grid.Pos

	log *ll.Logger
}

func New(cfg Config) *Session {
	cfg = normalizeConfig(cfg)
	s := &Session{
		cfg: cfg,
		g:   grid.New(cfg.Grid),
	}
	s.log = ll.New("session").Handler(lh.NewTextHandler(cfg.Trace))
	if cfg.Debug {
		s.log.Enable()
		s.log.Resume()
	} else {
		s.log.Disable()
		s.log.Suspend()
	}
	s.log.Infof("new %dx%d grid", s.g.Rows(), s.g.Cols())
	return s
}

// Grid exposes the underlying grid for queries. Mutate it only through the
// session so selection and change events stay consistent.
func (s *Session) Grid() *grid.Grid { return s.g }

func (s *Session) Mode() Mode { return s.mode }

// Selection returns a copy of the current selection.
func (s *Session) Selection() grid.Selection { return s.sel.Clone() }

// Resizing reports whether a resize drag is in progress.
func (s *Session) Resizing() bool { return s.resize != nil }

// Dragging reports whether a selection drag is in progress.
func (s *Session) Dragging() bool { return s.dragging }

// Enter switches to editing. It is rejected when already editing.
func (s *Session) Enter() grid.Result {
	if s.mode == ModeEditing {
		return s.reject("enter", grid.ReasonNoChange)
	}
	s.mode = ModeEditing
	s.sel = grid.Selection{}
	s.clearGesture()
	s.log.Infof("mode -> %s", s.mode)
	return grid.Ok()
}

// Exit switches back to browsing and drops the selection.
func (s *Session) Exit() grid.Result {
	if s.mode == ModeBrowsing {
		return s.reject("exit", grid.ReasonNoChange)
	}
	s.mode = ModeBrowsing
	s.sel = grid.Selection{}
	s.clearGesture()
	s.log.Infof("mode -> %s", s.mode)
	return grid.Ok()
}

func (s *Session) clearGesture() {
	s.resize = nil
	s.dragging = false
	s.dragAnchor = grid.Pos{}
}

func (s *Session) reject(op string, r grid.Reason) grid.Result {
	s.log.Debugf("%s rejected: %s", op, r)
	return grid.Reject(r)
}

// finish logs res and, when the grid version moved past before, runs the
// debug invariant check and fires OnChange.
func (s *Session) finish(op string, before uint64, res grid.Result) grid.Result {
	if res.Rejected() {
		s.log.Debugf("%s rejected: %s", op, res.Reason)
		return res
	}
	if s.g.Version() == before {
		return res
	}
	s.log.Debugf("%s applied: version %d -> %d", op, before, s.g.Version())
	if s.cfg.Debug {
		if err := s.g.Check(); err != nil {
			s.log.Errorf("%s broke grid invariants: %v", op, err)
		}
	}
	if s.cfg.OnChange != nil {
		s.cfg.OnChange(s.buildChangeEvent())
	}
	return res
}

// refreshBounds recomputes the selection's pixel rectangle after sizes changed.
func (s *Session) refreshBounds() {
	if s.sel.Empty() {
		return
	}
	s.sel.Bounds = s.g.AreaBounds(s.sel.Area)
}
