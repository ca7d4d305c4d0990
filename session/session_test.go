package session

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/cellgrid/grid"
)

func newEditing(t *testing.T, cfg Config) *Session {
	t.Helper()
	s := New(cfg)
	if res := s.Enter(); !res.Applied {
		t.Fatalf("enter: %v", res)
	}
	return s
}

func TestModeTransitions(t *testing.T) {
	s := New(Config{})
	if s.Mode() != ModeBrowsing {
		t.Fatalf("initial mode: got %v, want %v", s.Mode(), ModeBrowsing)
	}
	if res := s.Exit(); res.Reason != grid.ReasonNoChange {
		t.Fatalf("exit while browsing: got %v", res)
	}
	if res := s.Enter(); !res.Applied || s.Mode() != ModeEditing {
		t.Fatalf("enter: got %v mode %v", res, s.Mode())
	}
	if res := s.Enter(); res.Reason != grid.ReasonNoChange {
		t.Fatalf("enter twice: got %v", res)
	}
	s.PointerDown(50, 20)
	if s.Selection().Empty() {
		t.Fatalf("press inside must select")
	}
	if res := s.Exit(); !res.Applied || s.Mode() != ModeBrowsing {
		t.Fatalf("exit: got %v mode %v", res, s.Mode())
	}
	if !s.Selection().Empty() || s.Dragging() {
		t.Fatalf("exit must clear selection and drag")
	}
}

func TestStructuralOpsRequireEditing(t *testing.T) {
	s := New(Config{})
	v := s.Grid().Version()

	ops := map[string]func() grid.Result{
		"merge":      s.Merge,
		"split":      s.Split,
		"insert row": func() grid.Result { return s.InsertRow(0) },
		"insert col": func() grid.Result { return s.InsertCol(0) },
		"remove row": s.RemoveRow,
		"remove col": s.RemoveCol,
		"edge":       func() grid.Result { return s.InsertAtEdge(grid.EdgeBottom) },
	}
	for name, op := range ops {
		if res := op(); res.Reason != grid.ReasonNotEditing {
			t.Fatalf("%s while browsing: got %v, want %v", name, res, grid.ReasonNotEditing)
		}
	}
	if s.Grid().Version() != v {
		t.Fatalf("rejected ops bumped version")
	}
}

func TestPointerDown_BrowsingIsIgnored(t *testing.T) {
	s := New(Config{})
	if g := s.PointerDown(50, 20); g != GestureNone {
		t.Fatalf("gesture while browsing: got %v", g)
	}
	if c := s.PointerMove(100, 20); c != CursorDefault {
		t.Fatalf("hover cursor while browsing: got %v", c)
	}
}

func TestResizeDrag(t *testing.T) {
	var events []ChangeEvent
	s := newEditing(t, Config{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})

	if c := s.PointerMove(103, 20); c != CursorColResize {
		t.Fatalf("hover over col line: got %v", c)
	}
	if c := s.PointerMove(50, 78); c != CursorRowResize {
		t.Fatalf("hover over row line: got %v", c)
	}

	if g := s.PointerDown(103, 20); g != GestureResize {
		t.Fatalf("press on col line: got %v", g)
	}
	if !s.Resizing() {
		t.Fatalf("resize must be active")
	}
	s.PointerMove(133, 90)
	if got := s.Grid().Dims().Size(grid.AxisCol, 0); got != 130 {
		t.Fatalf("width after drag: got %v, want %v", got, 130.0)
	}
	s.PointerMove(-500, 90)
	if got := s.Grid().Dims().Size(grid.AxisCol, 0); got != grid.MinSize {
		t.Fatalf("width after overdrag: got %v, want %v", got, grid.MinSize)
	}
	s.PointerUp()
	if s.Resizing() {
		t.Fatalf("pointer up must end the resize")
	}

	if len(events) != 2 {
		t.Fatalf("events: got %d, want 2", len(events))
	}
	if events[1].Change.Kind != grid.ChangeResize || events[1].Change.Index != 0 {
		t.Fatalf("event change: got %+v", events[1].Change)
	}

	// Moves after pointer up no longer resize.
	s.PointerMove(300, 90)
	if got := s.Grid().Dims().Size(grid.AxisCol, 0); got != grid.MinSize {
		t.Fatalf("width changed after pointer up: got %v", got)
	}
}

func TestResizeKeepsSelectionBoundsCurrent(t *testing.T) {
	s := newEditing(t, Config{})
	s.PointerDown(150, 20)
	s.PointerUp()

	s.PointerDown(50, 40)
	s.PointerMove(50, 60)
	s.PointerUp()

	want := grid.Rect{X: 100, Y: 0, W: 100, H: 60}
	if got := s.Selection().Bounds; got != want {
		t.Fatalf("selection bounds: got %+v, want %+v", got, want)
	}
}

func TestDragSelection_ClosesOverMergedCell(t *testing.T) {
	s := newEditing(t, Config{})
	s.PointerDown(10, 10)
	s.PointerMove(150, 60)
	s.PointerUp()
	if res := s.Merge(); !res.Applied {
		t.Fatalf("merge: %v", res)
	}

	// (0,1) and (1,0) are hidden slots of the merged block.
	s.PointerDown(150, 10)
	s.PointerMove(50, 60)
	if diff := cmp.Diff([]grid.Pos{{Row: 0, Col: 0}}, s.Selection().Cells); diff != "" {
		t.Fatalf("selection (-want +got):\n%s", diff)
	}

	// Moving off the table keeps the last selection.
	s.PointerMove(250, 85)
	s.PointerMove(900, 900)
	want := []grid.Pos{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}
	if diff := cmp.Diff(want, s.Selection().Cells); diff != "" {
		t.Fatalf("selection (-want +got):\n%s", diff)
	}
	s.PointerUp()
	if s.Dragging() {
		t.Fatalf("pointer up must end the drag")
	}
}

func TestPointerDown_OutsideExits(t *testing.T) {
	s := newEditing(t, Config{})
	if g := s.PointerDown(500, 500); g != GestureExit {
		t.Fatalf("press outside: got %v", g)
	}
	if s.Mode() != ModeBrowsing {
		t.Fatalf("mode: got %v, want %v", s.Mode(), ModeBrowsing)
	}
}

func TestMerge_SelectsMaster(t *testing.T) {
	s := newEditing(t, Config{})
	s.PointerDown(150, 50)
	s.PointerMove(250, 90)
	s.PointerUp()

	if res := s.Merge(); !res.Applied {
		t.Fatalf("merge: %v", res)
	}
	sel := s.Selection()
	if diff := cmp.Diff([]grid.Pos{{Row: 1, Col: 1}}, sel.Cells); diff != "" {
		t.Fatalf("selection after merge (-want +got):\n%s", diff)
	}
	if want := (grid.Rect{X: 100, Y: 40, W: 200, H: 80}); sel.Bounds != want {
		t.Fatalf("bounds: got %+v, want %+v", sel.Bounds, want)
	}

	if res := s.Merge(); res.Reason != grid.ReasonTooFewCells {
		t.Fatalf("merge single: got %v", res)
	}
	if res := s.Split(); !res.Applied {
		t.Fatalf("split: %v", res)
	}
	if !s.Selection().Empty() {
		t.Fatalf("split must clear the selection")
	}
	if err := s.Grid().Check(); err != nil {
		t.Fatalf("invariant: %v", err)
	}
}

func TestSplit_SelectionCount(t *testing.T) {
	s := newEditing(t, Config{})
	if res := s.Split(); res.Reason != grid.ReasonNoSelection {
		t.Fatalf("split without selection: got %v", res)
	}
	s.PointerDown(50, 20)
	s.PointerMove(150, 20)
	s.PointerUp()
	if res := s.Split(); res.Reason != grid.ReasonMultipleCells {
		t.Fatalf("split with two cells: got %v", res)
	}
	s.PointerDown(50, 20)
	s.PointerUp()
	if res := s.Split(); res.Reason != grid.ReasonUnitSpan {
		t.Fatalf("split unit cell: got %v", res)
	}
}

func TestInsertAndRemove(t *testing.T) {
	s := newEditing(t, Config{Grid: grid.Options{Rows: 3, Cols: 3}})

	s.PointerDown(150, 50)
	s.PointerUp()
	if res := s.RemoveRow(); !res.Applied {
		t.Fatalf("remove row: %v", res)
	}
	if s.Grid().Rows() != 2 {
		t.Fatalf("rows: got %d, want 2", s.Grid().Rows())
	}
	if !s.Selection().Empty() {
		t.Fatalf("remove must clear selection")
	}
	if res := s.RemoveCol(); res.Reason != grid.ReasonNoSelection {
		t.Fatalf("remove col without selection: got %v", res)
	}

	if res := s.InsertRow(1); !res.Applied {
		t.Fatalf("insert row: %v", res)
	}
	if res := s.InsertAtEdge(grid.EdgeRight); !res.Applied {
		t.Fatalf("insert right: %v", res)
	}
	if s.Grid().Rows() != 3 || s.Grid().Cols() != 4 {
		t.Fatalf("size: got %dx%d, want 3x4", s.Grid().Rows(), s.Grid().Cols())
	}
	c, _ := s.Grid().Cell(grid.Pos{Row: 0, Col: 3})
	if c.Text != "" {
		t.Fatalf("appended column text: got %q", c.Text)
	}
	if res := s.InsertCol(9); res.Reason != grid.ReasonOutOfRange {
		t.Fatalf("insert col out of range: got %v", res)
	}
}

func TestEdgeAt_OutsideOnlyWhileEditing(t *testing.T) {
	s := New(Config{})
	if _, ok := s.EdgeAt(200, 180); ok {
		t.Fatalf("edge must not report while browsing")
	}
	s.Enter()
	if e, ok := s.EdgeAt(200, 180); !ok || e != grid.EdgeBottom {
		t.Fatalf("below table: got %v,%v", e, ok)
	}
	if _, ok := s.EdgeAt(200, 150); ok {
		t.Fatalf("points inside the table are not edge affordances")
	}
}

func TestApplyStyle_ModeSelectsTarget(t *testing.T) {
	s := New(Config{})
	if res := s.ApplyStyle(grid.StyleOverride{Fill: grid.Some("#fafafa")}); !res.Applied {
		t.Fatalf("table style: %v", res)
	}
	if got := s.Grid().Base().Fill; got != "#fafafa" {
		t.Fatalf("base fill: got %q", got)
	}

	s.Enter()
	if res := s.ToggleBold(); res.Reason != grid.ReasonNoSelection {
		t.Fatalf("style without selection: got %v", res)
	}
	s.PointerDown(150, 20)
	s.PointerUp()
	if res := s.ToggleBold(); !res.Applied {
		t.Fatalf("bold: %v", res)
	}
	if !s.Grid().EffectiveStyle(grid.Pos{Row: 0, Col: 1}).Bold {
		t.Fatalf("selected cell must be bold")
	}
	if s.Grid().EffectiveStyle(grid.Pos{}).Bold {
		t.Fatalf("unselected cell must not be bold")
	}
	if res := s.ToggleBold(); !res.Applied || s.Grid().EffectiveStyle(grid.Pos{Row: 0, Col: 1}).Bold {
		t.Fatalf("second toggle must clear bold: %v", res)
	}
	if res := s.SetAlign(grid.AlignLeft); !res.Applied {
		t.Fatalf("align: %v", res)
	}
	if res := s.ResetStyles(); !res.Applied {
		t.Fatalf("reset: %v", res)
	}
	if got := s.Grid().EffectiveStyle(grid.Pos{Row: 0, Col: 1}); got != grid.ResetStyle() {
		t.Fatalf("style after reset: got %+v", got)
	}
}

func TestScaleTable_BrowsingOnly(t *testing.T) {
	s := New(Config{})
	if res := s.ScaleTable(2, 0.5); !res.Applied {
		t.Fatalf("scale: %v", res)
	}
	if got := s.Grid().Width(); got != 800 {
		t.Fatalf("width: got %v, want %v", got, 800.0)
	}
	if got := s.Grid().Height(); got != 80 {
		t.Fatalf("height: got %v, want %v", got, 80.0)
	}
	s.Enter()
	if res := s.ScaleTable(2, 2); res.Reason != grid.ReasonNotBrowsing {
		t.Fatalf("scale while editing: got %v", res)
	}
}

func TestOnChange_OnlyForAppliedMutations(t *testing.T) {
	var got []grid.ChangeKind
	s := newEditing(t, Config{OnChange: func(ev ChangeEvent) {
		got = append(got, ev.Change.Kind)
		if ev.Version != ev.Change.VersionAfter {
			t.Fatalf("event version %d != change version %d", ev.Version, ev.Change.VersionAfter)
		}
	}})

	s.Merge()
	s.Split()
	s.SetText(grid.Pos{}, "R1C1")
	s.SetText(grid.Pos{}, "hello")
	s.InsertRow(0)
	s.RemoveRow()
	s.PointerDown(50, 20)
	s.PointerMove(150, 60)
	s.PointerUp()
	s.Merge()

	want := []grid.ChangeKind{grid.ChangeText, grid.ChangeInsert, grid.ChangeMerge}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("change kinds (-want +got):\n%s", diff)
	}
}

func TestSnapshot(t *testing.T) {
	s := New(Config{})
	snap := s.Snapshot()
	if snap.Token == 0 {
		t.Fatalf("token must be non-zero")
	}
	if len(snap.Cells) != 16 || snap.Width != 400 || snap.Height != 160 {
		t.Fatalf("snapshot shape: %d cells %vx%v", len(snap.Cells), snap.Width, snap.Height)
	}
	if want := (Actions{CanStyle: true, CanScale: true}); snap.Actions != want {
		t.Fatalf("browsing actions: got %+v, want %+v", snap.Actions, want)
	}
	if again := s.Snapshot(); again.Token != snap.Token {
		t.Fatalf("token unstable for unchanged session")
	}

	s.Enter()
	s.PointerDown(50, 20)
	s.PointerMove(150, 60)
	s.PointerUp()
	snap2 := s.Snapshot()
	if snap2.Token == snap.Token {
		t.Fatalf("token must change with mode and selection")
	}
	want := Actions{CanMerge: true, CanInsert: true, CanRemoveRow: true, CanRemoveCol: true, CanStyle: true}
	if snap2.Actions != want {
		t.Fatalf("editing actions: got %+v, want %+v", snap2.Actions, want)
	}
	if !snap2.Selection.Active || len(snap2.Selection.Cells) != 4 {
		t.Fatalf("selection view: got %+v", snap2.Selection)
	}
	selected := 0
	for _, c := range snap2.Cells {
		if c.Selected {
			selected++
		}
	}
	if selected != 4 {
		t.Fatalf("selected cell views: got %d, want 4", selected)
	}

	s.Merge()
	snap3 := s.Snapshot()
	if len(snap3.Cells) != 13 {
		t.Fatalf("cells after merge: got %d, want 13", len(snap3.Cells))
	}
	first := snap3.Cells[0]
	if first.RowSpan != 2 || first.ColSpan != 2 || first.Bounds != (grid.Rect{W: 200, H: 80}) {
		t.Fatalf("merged cell view: got %+v", first)
	}
	if !snap3.Actions.CanSplit || snap3.Actions.CanMerge {
		t.Fatalf("actions after merge: got %+v", snap3.Actions)
	}
}

func TestSnapshot_TargetFollowsSelection(t *testing.T) {
	s := newEditing(t, Config{})
	s.PointerDown(250, 100)
	s.PointerUp()
	s.ApplyStyle(grid.StyleOverride{TextColor: grid.Some("#00ff00")})

	if got := s.Snapshot().Target.TextColor; got != "#00ff00" {
		t.Fatalf("target with selection: got %q", got)
	}
	s.Exit()
	if got := s.Snapshot().Target.TextColor; got != grid.DefaultStyle().TextColor {
		t.Fatalf("target without selection: got %q", got)
	}
}

func TestTrace_SilentUnlessDebug(t *testing.T) {
	var buf bytes.Buffer
	s := New(Config{Trace: &buf})
	s.Merge()
	s.Enter()
	s.Merge()
	if buf.Len() != 0 {
		t.Fatalf("trace written without debug: %q", buf.String())
	}
}
