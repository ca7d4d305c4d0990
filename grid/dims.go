package grid

import "math"

// MinSize is the smallest row height or column width, in pixels.
const MinSize = 20.0

// Dimensions holds row heights and column widths.
//
// Offsets and extents are always summed from the current sizes; nothing is
// cached across mutations.
type Dimensions struct {
	rowHeights []float64
	colWidths  []float64
}

// NewDimensions returns rows x cols uniform sizes, each clamped to MinSize.
func NewDimensions(rows, cols int, rowHeight, colWidth float64) Dimensions {
	rows = maxInt(rows, 1)
	cols = maxInt(cols, 1)
	rowHeight = clampSize(rowHeight)
	colWidth = clampSize(colWidth)

	d := Dimensions{
		rowHeights: make([]float64, rows),
		colWidths:  make([]float64, cols),
	}
	for i := range d.rowHeights {
		d.rowHeights[i] = rowHeight
	}
	for i := range d.colWidths {
		d.colWidths[i] = colWidth
	}
	return d
}

func (d *Dimensions) axis(a Axis) *[]float64 {
	if a == AxisCol {
		return &d.colWidths
	}
	return &d.rowHeights
}

// Count returns the number of rows or columns.
func (d Dimensions) Count(a Axis) int {
	return len(*(&d).axis(a))
}

// Size returns the size of line i on axis a, or 0 when i is out of range.
func (d Dimensions) Size(a Axis, i int) float64 {
	sizes := *(&d).axis(a)
	if i < 0 || i >= len(sizes) {
		return 0
	}
	return sizes[i]
}

// Sizes returns a copy of all sizes on axis a.
func (d Dimensions) Sizes(a Axis) []float64 {
	return append([]float64(nil), *(&d).axis(a)...)
}

// Offset returns the cumulative pixel offset of grid line index on axis a.
// Line 0 is the outer top/left border; line Count(a) is the bottom/right
// border. index is clamped into [0, Count(a)].
func (d Dimensions) Offset(a Axis, index int) float64 {
	sizes := *(&d).axis(a)
	index = clampInt(index, 0, len(sizes))
	var off float64
	for _, s := range sizes[:index] {
		off += s
	}
	return off
}

// Extent returns the total size of axis a.
func (d Dimensions) Extent(a Axis) float64 {
	return d.Offset(a, d.Count(a))
}

// Span returns the summed size of lines [start, start+n) on axis a.
func (d Dimensions) Span(a Axis, start, n int) float64 {
	return d.Offset(a, start+n) - d.Offset(a, start)
}

// Clone returns a deep copy.
func (d Dimensions) Clone() Dimensions {
	return Dimensions{
		rowHeights: append([]float64(nil), d.rowHeights...),
		colWidths:  append([]float64(nil), d.colWidths...),
	}
}

// Insert adds a line of the given size at index, shifting later lines.
// 0 <= index <= Count(a). Sizes below MinSize are raised to it.
func (d *Dimensions) Insert(a Axis, index int, size float64) Result {
	sizes := d.axis(a)
	if index < 0 || index > len(*sizes) {
		return Reject(ReasonOutOfRange)
	}
	if !isFinite(size) || size <= 0 {
		return Reject(ReasonInvalidSize)
	}
	res := Ok()
	if size < MinSize {
		size = MinSize
		res.Clamped = true
	}

	out := make([]float64, 0, len(*sizes)+1)
	out = append(out, (*sizes)[:index]...)
	out = append(out, size)
	out = append(out, (*sizes)[index:]...)
	*sizes = out
	return res
}

// Remove deletes line index. It is rejected when it would leave the axis empty.
func (d *Dimensions) Remove(a Axis, index int) Result {
	sizes := d.axis(a)
	if index < 0 || index >= len(*sizes) {
		return Reject(ReasonOutOfRange)
	}
	if len(*sizes) <= 1 {
		return Reject(ReasonLastLine)
	}
	out := make([]float64, 0, len(*sizes)-1)
	out = append(out, (*sizes)[:index]...)
	out = append(out, (*sizes)[index+1:]...)
	*sizes = out
	return Ok()
}

// Resize sets the size of line index, clamping it to MinSize.
func (d *Dimensions) Resize(a Axis, index int, size float64) Result {
	sizes := d.axis(a)
	if index < 0 || index >= len(*sizes) {
		return Reject(ReasonOutOfRange)
	}
	if math.IsNaN(size) || math.IsInf(size, 1) {
		return Reject(ReasonInvalidSize)
	}
	res := Ok()
	if size < MinSize {
		size = MinSize
		res.Clamped = true
	}
	(*sizes)[index] = size
	return res
}

// Scale multiplies every column width by sx and every row height by sy.
// Scaled sizes are clamped to MinSize.
func (d *Dimensions) Scale(sx, sy float64) Result {
	if !isFinite(sx) || !isFinite(sy) || sx <= 0 || sy <= 0 {
		return Reject(ReasonInvalidSize)
	}
	res := Ok()
	scale := func(sizes []float64, f float64) {
		for i, s := range sizes {
			next := s * f
			if next < MinSize {
				next = MinSize
				res.Clamped = true
			}
			sizes[i] = next
		}
	}
	scale(d.colWidths, sx)
	scale(d.rowHeights, sy)
	return res
}

func (d *Dimensions) InsertRow(index int, height float64) Result {
	return d.Insert(AxisRow, index, height)
}

func (d *Dimensions) InsertCol(index int, width float64) Result {
	return d.Insert(AxisCol, index, width)
}

func (d *Dimensions) RemoveRow(index int) Result { return d.Remove(AxisRow, index) }

func (d *Dimensions) RemoveCol(index int) Result { return d.Remove(AxisCol, index) }

// lineAt returns the index of the line whose half-open interval contains v.
func (d Dimensions) lineAt(a Axis, v float64) (int, bool) {
	if math.IsNaN(v) || v < 0 {
		return 0, false
	}
	var start float64
	for i, s := range *d.axis(a) {
		if v >= start && v < start+s {
			return i, true
		}
		start += s
	}
	return 0, false
}

func clampSize(v float64) float64 {
	if !isFinite(v) || v < MinSize {
		return MinSize
	}
	return v
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
