package tableview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/cellgrid/internal/grapheme"
)

// Border direction bits. A canvas cell's glyph is chosen from the union of
// the line directions leaving it.
const (
	dirUp    uint8 = 1
	dirDown  uint8 = 2
	dirLeft  uint8 = 4
	dirRight uint8 = 8
)

var boxGlyphs = [16]string{
	0:                                   " ",
	dirUp:                               "╵",
	dirDown:                             "╷",
	dirUp | dirDown:                     "│",
	dirLeft:                             "╴",
	dirRight:                            "╶",
	dirLeft | dirRight:                  "─",
	dirUp | dirLeft:                     "┘",
	dirDown | dirLeft:                   "┐",
	dirUp | dirRight:                    "└",
	dirDown | dirRight:                  "┌",
	dirUp | dirDown | dirLeft:           "┤",
	dirUp | dirDown | dirRight:          "├",
	dirUp | dirLeft | dirRight:          "┴",
	dirDown | dirLeft | dirRight:        "┬",
	dirUp | dirDown | dirLeft | dirRight: "┼",
}

// Style slots shared by every frame. Cell styles follow from styleCellBase.
const (
	styleNone = iota
	styleBorder
	styleSelectionBorder
	styleMarker
	styleCellBase
)

type canvasCell struct {
	// text is a grapheme cluster; empty on the trailing half of a wide one.
	text  string
	mask  uint8
	style int
	cont  bool
}

type canvas struct {
	w, h  int
	cells [][]canvasCell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]canvasCell, h)}
	for y := range c.cells {
		row := make([]canvasCell, w)
		for x := range row {
			row[x].text = " "
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) in(x, y int) bool { return x >= 0 && x < c.w && y >= 0 && y < c.h }

func (c *canvas) fill(x0, y0, x1, y1, style int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if c.in(x, y) {
				c.cells[y][x].style = style
			}
		}
	}
}

// box draws the outline of [x0,x1] x [y0,y1] with the given style.
func (c *canvas) box(x0, y0, x1, y1, style int) {
	for x := x0; x <= x1; x++ {
		var m uint8
		if x > x0 {
			m |= dirLeft
		}
		if x < x1 {
			m |= dirRight
		}
		c.line(x, y0, m, style)
		c.line(x, y1, m, style)
	}
	for y := y0; y <= y1; y++ {
		var m uint8
		if y > y0 {
			m |= dirUp
		}
		if y < y1 {
			m |= dirDown
		}
		c.line(x0, y, m, style)
		c.line(x1, y, m, style)
	}
}

func (c *canvas) line(x, y int, mask uint8, style int) {
	if !c.in(x, y) {
		return
	}
	cell := &c.cells[y][x]
	cell.mask |= mask
	cell.text = ""
	cell.cont = false
	cell.style = style
}

// restyleOutline changes the style of border cells already on the outline of
// [x0,x1] x [y0,y1] without adding line segments.
func (c *canvas) restyleOutline(x0, y0, x1, y1, style int) {
	set := func(x, y int) {
		if c.in(x, y) && c.cells[y][x].mask != 0 {
			c.cells[y][x].style = style
		}
	}
	for x := x0; x <= x1; x++ {
		set(x, y0)
		set(x, y1)
	}
	for y := y0; y <= y1; y++ {
		set(x0, y)
		set(x1, y)
	}
}

// text writes s starting at (x, y), clipped to columns before limit. Wide
// clusters that would straddle limit are dropped.
func (c *canvas) text(x, y, limit int, s string, style int) {
	if y < 0 || y >= c.h {
		return
	}
	if limit > c.w {
		limit = c.w
	}
	for _, cl := range grapheme.Split(s) {
		cw := grapheme.ClusterWidth(cl)
		if cw == 0 {
			continue
		}
		if x+cw > limit {
			return
		}
		if x >= 0 {
			c.cells[y][x] = canvasCell{text: cl, style: style}
			for i := 1; i < cw; i++ {
				c.cells[y][x+i] = canvasCell{style: style, cont: true}
			}
		}
		x += cw
	}
}

// render returns columns [from, from+width) of every row, grouping runs of
// equal style slot. Unstyled trailing blanks are trimmed.
func (c *canvas) render(from, width int, styles []lipgloss.Style) string {
	if width <= 0 || from >= c.w {
		width = 0
	}
	to := from + width
	if to > c.w {
		to = c.w
	}

	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := c.cells[y]
		end := to
		for end > from && row[end-1].style == styleNone && row[end-1].mask == 0 && row[end-1].text == " " {
			end--
		}

		var sb strings.Builder
		var run strings.Builder
		runStyle := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle >= 0 && runStyle < len(styles) {
				sb.WriteString(styles[runStyle].Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for x := from; x < end; x++ {
			cell := row[x]
			var s string
			switch {
			case cell.mask != 0:
				s = boxGlyphs[cell.mask]
			case cell.cont:
				// Trailing half of a wide cluster whose head is off-screen.
				if x == from {
					s = " "
				}
			default:
				s = cell.text
				if w := grapheme.ClusterWidth(s); w > 1 && x+w > end {
					s = " "
				}
			}
			if s == "" {
				continue
			}
			if cell.style != runStyle {
				flush()
				runStyle = cell.style
			}
			run.WriteString(s)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
