package session

import "github.com/iw2rmb/cellgrid/grid"

// ChangeEvent is delivered to Config.OnChange after an applied mutation.
type ChangeEvent struct {
	Version uint64
	Change  grid.Change
	Mode    Mode

	// Selection after the mutation, row-major.
	Selection []grid.Pos
}

func (s *Session) buildChangeEvent() ChangeEvent {
	ev := ChangeEvent{
		Version:   s.g.Version(),
		Mode:      s.mode,
		Selection: s.sel.Clone().Cells,
	}
	ev.Change, _ = s.g.LastChange()
	return ev
}
