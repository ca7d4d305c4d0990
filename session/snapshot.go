package session

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/iw2rmb/cellgrid/grid"
)

type SnapshotToken uint64

// CellView is one visible cell as a renderer should draw it.
type CellView struct {
	Pos      grid.Pos
	RowSpan  int
	ColSpan  int
	Bounds   grid.Rect
	Text     string
	Style    grid.Style
	Selected bool
}

type SelectionView struct {
	Active bool
	Cells  []grid.Pos
	Area   grid.Area
	Bounds grid.Rect
}

// Actions reports which triggers would currently be accepted.
type Actions struct {
	CanMerge     bool
	CanSplit     bool
	CanInsert    bool
	CanRemoveRow bool
	CanRemoveCol bool
	CanStyle     bool
	CanScale     bool
}

// Snapshot is a read-only view of the session for one frame.
//
// Token changes whenever anything a renderer draws changes; hosts may skip
// redraws while it stays the same. It is never zero.
type Snapshot struct {
	Token   SnapshotToken
	Version uint64
	Mode    Mode

	Rows       int
	Cols       int
	RowHeights []float64
	ColWidths  []float64
	Width      float64
	Height     float64

	// Visible cells in row-major order.
	Cells     []CellView
	Selection SelectionView
	Actions   Actions

	// Style the styling controls reflect: the first selected cell's, or cell
	// (0,0)'s when nothing is selected.
	Target grid.Style
}

func (s *Session) Snapshot() Snapshot {
	dims := s.g.Dims()
	snap := Snapshot{
		Version:    s.g.Version(),
		Mode:       s.mode,
		Rows:       s.g.Rows(),
		Cols:       s.g.Cols(),
		RowHeights: dims.Sizes(grid.AxisRow),
		ColWidths:  dims.Sizes(grid.AxisCol),
		Width:      s.g.Width(),
		Height:     s.g.Height(),
		Actions:    s.actions(),
		Target:     s.target(),
	}

	if !s.sel.Empty() {
		snap.Selection = SelectionView{
			Active: true,
			Cells:  s.sel.Clone().Cells,
			Area:   s.sel.Area,
			Bounds: s.sel.Bounds,
		}
	}

	visible := s.g.Visible()
	snap.Cells = make([]CellView, 0, len(visible))
	for _, p := range visible {
		c, _ := s.g.Cell(p)
		b, _ := s.g.BoundsOf(p)
		snap.Cells = append(snap.Cells, CellView{
			Pos:      p,
			RowSpan:  c.RowSpan,
			ColSpan:  c.ColSpan,
			Bounds:   b,
			Text:     c.Text,
			Style:    s.g.EffectiveStyle(p),
			Selected: s.sel.Contains(p),
		})
	}

	snap.Token = hashSnapshot(snap)
	return snap
}

func (s *Session) actions() Actions {
	editing := s.mode == ModeEditing
	n := s.sel.Len()
	a := Actions{
		CanInsert:    editing,
		CanRemoveRow: editing && n > 0 && s.g.Rows() > 1,
		CanRemoveCol: editing && n > 0 && s.g.Cols() > 1,
		CanStyle:     !editing || n > 0,
		CanScale:     !editing,
	}
	if editing && n >= 2 {
		_, reason := s.g.MergeArea(s.sel.Cells)
		a.CanMerge = reason == grid.ReasonNone
	}
	if editing && n == 1 {
		c, _ := s.g.Cell(s.sel.Cells[0])
		a.CanSplit = c.Merged()
	}
	return a
}

// hashSnapshot covers everything that affects drawing. Cell contents are
// covered by the grid version.
func hashSnapshot(snap Snapshot) SnapshotToken {
	h := fnv.New64a()
	writeU64 := func(v uint64) {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		_, _ = h.Write(b[:])
	}
	writeI := func(v int) { writeU64(uint64(v)) }
	writeF := func(v float64) { writeU64(math.Float64bits(v)) }

	writeU64(snap.Version)
	writeI(int(snap.Mode))
	writeI(snap.Rows)
	writeI(snap.Cols)
	writeI(len(snap.Selection.Cells))
	for _, p := range snap.Selection.Cells {
		writeI(p.Row)
		writeI(p.Col)
	}
	writeF(snap.Selection.Bounds.X)
	writeF(snap.Selection.Bounds.Y)
	writeF(snap.Selection.Bounds.W)
	writeF(snap.Selection.Bounds.H)

	tok := SnapshotToken(h.Sum64())
	if tok == 0 {
		return 1
	}
	return tok
}
