package grid

// Align is the horizontal text alignment inside a cell.
type Align uint8

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

const (
	// MinFontSize is the smallest font size accepted by style patches.
	MinFontSize = 8.0
)

// Style is a fully resolved cell style.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	TextColor   string
	FontFamily  string
	FontSize    float64
	Align       Align
	Bold        bool
	Italic      bool
}

// DefaultStyle is the base style of a new grid.
func DefaultStyle() Style {
	return Style{
		Fill:        "#ffffff",
		Stroke:      "#e11d48",
		StrokeWidth: 1,
		TextColor:   "#1e293b",
		FontFamily:  "SourceHanSerifCN-Bold, serif",
		FontSize:    14,
		Align:       AlignCenter,
	}
}

// ResetStyle is the neutral style installed by Grid.ResetStyles.
func ResetStyle() Style {
	return Style{
		Fill:        "#ffffff",
		Stroke:      "#cbd5e1",
		StrokeWidth: 1,
		TextColor:   "#334155",
		FontFamily:  "Arial",
		FontSize:    14,
		Align:       AlignCenter,
	}
}

// StyleOverride holds per-cell style fields. A nil field inherits from the
// grid's base style.
type StyleOverride struct {
	Fill        *string
	Stroke      *string
	StrokeWidth *float64
	TextColor   *string
	FontFamily  *string
	FontSize    *float64
	Align       *Align
	Bold        *bool
	Italic      *bool
}

// Some returns a pointer to v, for building a StyleOverride inline.
func Some[T any](v T) *T { return &v }

// IsZero reports whether no field is overridden.
func (o StyleOverride) IsZero() bool {
	return o.Fill == nil && o.Stroke == nil && o.StrokeWidth == nil &&
		o.TextColor == nil && o.FontFamily == nil && o.FontSize == nil &&
		o.Align == nil && o.Bold == nil && o.Italic == nil
}

// Resolve applies o on top of base.
func (o StyleOverride) Resolve(base Style) Style {
	out := base
	if o.Fill != nil {
		out.Fill = *o.Fill
	}
	if o.Stroke != nil {
		out.Stroke = *o.Stroke
	}
	if o.StrokeWidth != nil {
		out.StrokeWidth = *o.StrokeWidth
	}
	if o.TextColor != nil {
		out.TextColor = *o.TextColor
	}
	if o.FontFamily != nil {
		out.FontFamily = *o.FontFamily
	}
	if o.FontSize != nil {
		out.FontSize = *o.FontSize
	}
	if o.Align != nil {
		out.Align = *o.Align
	}
	if o.Bold != nil {
		out.Bold = *o.Bold
	}
	if o.Italic != nil {
		out.Italic = *o.Italic
	}
	return out
}

// Merge returns o with every field set in patch replaced by patch's value.
func (o StyleOverride) Merge(patch StyleOverride) StyleOverride {
	out := o.Clone()
	p := patch.Clone()
	if p.Fill != nil {
		out.Fill = p.Fill
	}
	if p.Stroke != nil {
		out.Stroke = p.Stroke
	}
	if p.StrokeWidth != nil {
		out.StrokeWidth = p.StrokeWidth
	}
	if p.TextColor != nil {
		out.TextColor = p.TextColor
	}
	if p.FontFamily != nil {
		out.FontFamily = p.FontFamily
	}
	if p.FontSize != nil {
		out.FontSize = p.FontSize
	}
	if p.Align != nil {
		out.Align = p.Align
	}
	if p.Bold != nil {
		out.Bold = p.Bold
	}
	if p.Italic != nil {
		out.Italic = p.Italic
	}
	return out
}

// Without returns o with every field set in mask cleared back to inherit.
func (o StyleOverride) Without(mask StyleOverride) StyleOverride {
	out := o.Clone()
	if mask.Fill != nil {
		out.Fill = nil
	}
	if mask.Stroke != nil {
		out.Stroke = nil
	}
	if mask.StrokeWidth != nil {
		out.StrokeWidth = nil
	}
	if mask.TextColor != nil {
		out.TextColor = nil
	}
	if mask.FontFamily != nil {
		out.FontFamily = nil
	}
	if mask.FontSize != nil {
		out.FontSize = nil
	}
	if mask.Align != nil {
		out.Align = nil
	}
	if mask.Bold != nil {
		out.Bold = nil
	}
	if mask.Italic != nil {
		out.Italic = nil
	}
	return out
}

// Clone copies every set field so the result shares no pointers with o.
func (o StyleOverride) Clone() StyleOverride {
	var out StyleOverride
	if o.Fill != nil {
		out.Fill = Some(*o.Fill)
	}
	if o.Stroke != nil {
		out.Stroke = Some(*o.Stroke)
	}
	if o.StrokeWidth != nil {
		out.StrokeWidth = Some(*o.StrokeWidth)
	}
	if o.TextColor != nil {
		out.TextColor = Some(*o.TextColor)
	}
	if o.FontFamily != nil {
		out.FontFamily = Some(*o.FontFamily)
	}
	if o.FontSize != nil {
		out.FontSize = Some(*o.FontSize)
	}
	if o.Align != nil {
		out.Align = Some(*o.Align)
	}
	if o.Bold != nil {
		out.Bold = Some(*o.Bold)
	}
	if o.Italic != nil {
		out.Italic = Some(*o.Italic)
	}
	return out
}

// normalizeStylePatch clamps numeric fields and reports false when a field
// cannot be applied at all.
func normalizeStylePatch(p StyleOverride) (StyleOverride, bool) {
	p = p.Clone()
	if p.FontSize != nil {
		v := *p.FontSize
		if !isFinite(v) {
			return StyleOverride{}, false
		}
		if v < MinFontSize {
			*p.FontSize = MinFontSize
		}
	}
	if p.StrokeWidth != nil {
		v := *p.StrokeWidth
		if !isFinite(v) {
			return StyleOverride{}, false
		}
		if v < 0 {
			*p.StrokeWidth = 0
		}
	}
	if p.Align != nil {
		switch *p.Align {
		case AlignCenter, AlignLeft, AlignRight:
		default:
			return StyleOverride{}, false
		}
	}
	return p, true
}
