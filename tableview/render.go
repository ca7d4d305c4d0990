package tableview

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/cellgrid/grid"
	"github.com/iw2rmb/cellgrid/internal/grapheme"
	"github.com/iw2rmb/cellgrid/session"
)

// layout holds the terminal column of every vertical grid line and the
// terminal row of every horizontal one.
type layout struct {
	xs []int
	ys []int
}

func newLayout(snap session.Snapshot, cellW, cellH float64) layout {
	return layout{
		xs: lineCells(snap.ColWidths, cellW),
		ys: lineCells(snap.RowHeights, cellH),
	}
}

// lineCells rounds each line offset to the nearest terminal cell, keeping
// lines strictly increasing.
func lineCells(sizes []float64, scale float64) []int {
	out := make([]int, len(sizes)+1)
	var off float64
	for i := range out {
		v := int(math.Round(off / scale))
		if i > 0 && v <= out[i-1] {
			v = out[i-1] + 1
		}
		out[i] = v
		if i < len(sizes) {
			off += sizes[i]
		}
	}
	return out
}

func (l layout) box(a grid.Area) (x0, y0, x1, y1 int) {
	return l.xs[a.Left], l.ys[a.Top], l.xs[a.Right], l.ys[a.Bottom]
}

func (l layout) width() int  { return l.xs[len(l.xs)-1] + 1 }
func (l layout) height() int { return l.ys[len(l.ys)-1] + 1 }

// Edge markers sit this many terminal cells outside the table.
const (
	markerGapX = 2
	markerGapY = 1
)

func (m Model) renderContent() string {
	snap := m.snap
	if snap.Rows == 0 || snap.Cols == 0 {
		return ""
	}
	lay := newLayout(snap, m.cfg.CellWidth, m.cfg.CellHeight)

	w, h := lay.width(), lay.height()
	editing := snap.Mode == session.ModeEditing
	if editing {
		w += markerGapX
		h += markerGapY
	}
	cv := newCanvas(w, h)

	styles := []lipgloss.Style{
		styleNone:            lipgloss.NewStyle(),
		styleBorder:          m.cfg.Style.Border,
		styleSelectionBorder: m.cfg.Style.SelectionBorder,
		styleMarker:          m.cfg.Style.Marker,
	}

	for i, cell := range snap.Cells {
		slot := styleCellBase + i
		styles = append(styles, m.cellStyle(cell))

		x0, y0, x1, y1 := lay.box(grid.AreaAt(cell.Pos, cell.RowSpan, cell.ColSpan))
		cv.fill(x0+1, y0+1, x1, y1, slot)
		cv.box(x0, y0, x1, y1, styleBorder)
		m.placeText(cv, cell, x0, y0, x1, y1, slot)
	}

	if snap.Selection.Active {
		x0, y0, x1, y1 := lay.box(snap.Selection.Area)
		cv.restyleOutline(x0, y0, x1, y1, styleSelectionBorder)
	}

	if editing {
		tw, th := lay.width()-1, lay.height()-1
		cv.text(tw/2, th+markerGapY, w, "+", styleMarker)
		cv.text(tw+markerGapX, th/2, w, "+", styleMarker)
	}

	return cv.render(m.xOffset, m.contentWidth(), styles)
}

// contentWidth is the number of terminal columns the view shows. A zero
// viewport width shows everything.
func (m Model) contentWidth() int {
	if m.viewport.Width <= 0 {
		return math.MaxInt32
	}
	return m.viewport.Width
}

func (m Model) cellStyle(cell session.CellView) lipgloss.Style {
	st := m.cfg.Style.Text
	if m.cfg.Style.UseCellColors {
		st = st.Background(lipgloss.Color(cell.Style.Fill)).Foreground(lipgloss.Color(cell.Style.TextColor))
	}
	if cell.Style.Bold {
		st = st.Bold(true)
	}
	if cell.Style.Italic {
		st = st.Italic(true)
	}
	if cell.Selected {
		st = m.cfg.Style.Selection.Inherit(st)
	}
	return st
}

// placeText writes the cell's text on the middle interior row, one column of
// padding on each side when the interior has room for it.
func (m Model) placeText(cv *canvas, cell session.CellView, x0, y0, x1, y1, slot int) {
	inner := x1 - x0 - 1
	if inner <= 0 || y1-y0 < 2 {
		return
	}
	pad := 0
	if inner >= 3 {
		pad = 1
	}
	avail := inner - 2*pad
	text := grapheme.Truncate(grapheme.Flatten(cell.Text), avail, "…")
	tw := grapheme.Width(text)

	var off int
	switch cell.Style.Align {
	case grid.AlignLeft:
		off = 0
	case grid.AlignRight:
		off = avail - tw
	default:
		off = (avail - tw) / 2
	}
	y := (y0 + y1) / 2
	start := x0 + 1 + pad + off
	cv.text(start, y, x1, text, slot)
}

func (m Model) renderActionBar() string {
	snap := m.snap
	km := m.cfg.KeyMap
	parts := []string{snap.Mode.String()}

	add := func(ok bool, b ...keyHint) {
		if !ok {
			return
		}
		for _, h := range b {
			parts = append(parts, h.String())
		}
	}
	a := snap.Actions
	add(a.CanMerge, hint(km.Merge))
	add(a.CanSplit, hint(km.Split))
	add(a.CanInsert, hint(km.InsertRowAbove), hint(km.InsertColLeft))
	add(a.CanRemoveRow, hint(km.RemoveRow))
	add(a.CanRemoveCol, hint(km.RemoveCol))
	add(a.CanStyle, hint(km.Bold), hint(km.Italic))
	add(true, hint(km.Exit))

	if m.last.Rejected() && m.last.Reason != grid.ReasonNone {
		parts = append(parts, m.last.String())
	}
	return m.cfg.Style.ActionBar.Render(" " + strings.Join(parts, " · ") + " ")
}

type keyHint struct{ key, desc string }

func hint(b key.Binding) keyHint {
	h := b.Help()
	return keyHint{key: h.Key, desc: h.Desc}
}

func (h keyHint) String() string { return h.key + " " + h.desc }
