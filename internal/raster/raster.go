// Package raster draws session snapshots to images with fogleman/gg.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iw2rmb/cellgrid/grid"
	"github.com/iw2rmb/cellgrid/internal/grapheme"
	"github.com/iw2rmb/cellgrid/session"
)

const (
	DefaultMargin     = 32.0
	DefaultBackground = "#ffffff"

	// textInset is the horizontal padding between a cell border and its text.
	textInset = 8.0

	selectionStroke      = "#3b82f6"
	selectionStrokeWidth = 2.0

	markerOffset = 20.0
	markerRadius = 8.0
)

var selectionFill = color.NRGBA{R: 59, G: 130, B: 246, A: 38}

type Options struct {
	// Scale multiplies every local coordinate. Zero means 1.
	Scale float64
	// Margin around the table, in output pixels. Negative selects
	// DefaultMargin.
	Margin     float64
	Background string
	// Markers draws the outer-edge insert affordances while editing.
	Markers bool
}

func normalizeOptions(opt Options) Options {
	if !(opt.Scale > 0) || math.IsInf(opt.Scale, 0) {
		opt.Scale = 1
	}
	if !(opt.Margin >= 0) || math.IsInf(opt.Margin, 0) {
		opt.Margin = DefaultMargin
	}
	if opt.Background == "" {
		opt.Background = DefaultBackground
	}
	return opt
}

// Render draws snap into a new image sized to the table plus the margin.
func Render(snap session.Snapshot, opt Options) (image.Image, error) {
	dc, err := draw(snap, opt)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders snap and encodes it as PNG to w.
func WritePNG(w io.Writer, snap session.Snapshot, opt Options) error {
	dc, err := draw(snap, opt)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

func draw(snap session.Snapshot, opt Options) (*gg.Context, error) {
	opt = normalizeOptions(opt)
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}

	w := int(math.Ceil(snap.Width*opt.Scale + 2*opt.Margin))
	h := int(math.Ceil(snap.Height*opt.Scale + 2*opt.Margin))
	dc := gg.NewContext(max(w, 1), max(h, 1))

	setColor(dc, opt.Background, color.White)
	dc.Clear()

	dc.Translate(opt.Margin, opt.Margin)
	dc.Scale(opt.Scale, opt.Scale)

	for _, cell := range snap.Cells {
		if err := drawCell(dc, fonts, cell, opt.Scale); err != nil {
			return nil, err
		}
	}

	if snap.Selection.Active {
		b := snap.Selection.Bounds
		dc.DrawRectangle(b.X, b.Y, b.W, b.H)
		dc.SetColor(selectionFill)
		dc.FillPreserve()
		setColor(dc, selectionStroke, color.Black)
		dc.SetLineWidth(selectionStrokeWidth)
		dc.Stroke()
	}

	if opt.Markers && snap.Mode == session.ModeEditing {
		if err := drawMarkers(dc, fonts, snap); err != nil {
			return nil, err
		}
	}
	return dc, nil
}

func drawCell(dc *gg.Context, fonts *fontBank, cell session.CellView, scale float64) error {
	b := cell.Bounds
	st := cell.Style

	dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	setColor(dc, st.Fill, color.White)
	dc.Fill()

	if st.StrokeWidth > 0 {
		dc.DrawRectangle(b.X, b.Y, b.W, b.H)
		setColor(dc, st.Stroke, color.Black)
		dc.SetLineWidth(st.StrokeWidth)
		dc.Stroke()
	}

	text := grapheme.Flatten(cell.Text)
	if text == "" {
		return nil
	}
	// Faces are built at output size so glyphs stay sharp under Scale.
	face, err := fonts.face(st.Bold, st.Italic, math.Max(st.FontSize, grid.MinFontSize)*scale)
	if err != nil {
		return err
	}

	dc.Push()
	defer dc.Pop()

	dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	dc.Clip()
	dc.Scale(1/scale, 1/scale)
	dc.SetFontFace(face)
	setColor(dc, st.TextColor, color.Black)

	avail := (b.W - 2*textInset) * scale
	text = fitText(dc, text, avail)

	x, ax := (b.X+b.W/2)*scale, 0.5
	switch st.Align {
	case grid.AlignLeft:
		x, ax = (b.X+textInset)*scale, 0
	case grid.AlignRight:
		x, ax = (b.Right()-textInset)*scale, 1
	}
	dc.DrawStringAnchored(text, x, (b.Y+b.H/2)*scale, ax, 0.5)
	dc.ResetClip()
	return nil
}

// fitText trims whole grapheme clusters from the end of s, adding an
// ellipsis, until it fits in width pixels.
func fitText(dc *gg.Context, s string, width float64) string {
	if w, _ := dc.MeasureString(s); w <= width {
		return s
	}
	clusters := grapheme.Split(s)
	for n := len(clusters) - 1; n > 0; n-- {
		cand := strings.Join(clusters[:n], "") + "…"
		if w, _ := dc.MeasureString(cand); w <= width {
			return cand
		}
	}
	return ""
}

func drawMarkers(dc *gg.Context, fonts *fontBank, snap session.Snapshot) error {
	face, err := fonts.face(true, false, 14)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	for _, p := range []grid.Point{
		{X: snap.Width / 2, Y: snap.Height + markerOffset},
		{X: snap.Width + markerOffset, Y: snap.Height / 2},
	} {
		dc.DrawCircle(p.X, p.Y, markerRadius)
		setColor(dc, selectionStroke, color.Black)
		dc.Fill()
		dc.SetColor(color.White)
		dc.DrawStringAnchored("+", p.X, p.Y, 0.5, 0.5)
	}
	return nil
}

// setColor sets a hex color, or fallback when s does not parse.
func setColor(dc *gg.Context, s string, fallback color.Color) {
	c, err := colorful.Hex(s)
	if err != nil {
		dc.SetColor(fallback)
		return
	}
	dc.SetColor(c)
}
