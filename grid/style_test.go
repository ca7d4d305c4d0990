package grid

import (
	"math"
	"testing"
)

func TestStyleOverride_ResolveAndMerge(t *testing.T) {
	base := DefaultStyle()

	o := StyleOverride{Fill: Some("#000000"), Bold: Some(true)}
	got := o.Resolve(base)
	if got.Fill != "#000000" || !got.Bold || got.Stroke != base.Stroke {
		t.Fatalf("resolve: got %+v", got)
	}

	o = o.Merge(StyleOverride{Fill: Some("#ff0000"), Align: Some(AlignRight)})
	got = o.Resolve(base)
	if got.Fill != "#ff0000" || got.Align != AlignRight || !got.Bold {
		t.Fatalf("merge: got %+v", got)
	}

	o = o.Without(StyleOverride{Bold: Some(false)})
	if o.Bold != nil || o.Fill == nil {
		t.Fatalf("without: got %+v", o)
	}
	if !(StyleOverride{}).IsZero() || o.IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}

func TestStyleOverride_CloneSharesNothing(t *testing.T) {
	o := StyleOverride{FontSize: Some(12.0)}
	cp := o.Clone()
	*cp.FontSize = 30
	if *o.FontSize != 12 {
		t.Fatalf("clone aliased FontSize")
	}
}

func TestApplyStyle_TargetsListedCellsOnly(t *testing.T) {
	g := New(Options{})
	g.Merge([]Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}})

	res := g.ApplyStyle([]Pos{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, StyleOverride{Fill: Some("#eeeeee")})
	if !res.Applied {
		t.Fatalf("apply style: %v", res)
	}
	if got := g.EffectiveStyle(Pos{}).Fill; got != "#eeeeee" {
		t.Fatalf("styled master fill: got %q", got)
	}
	if got := g.EffectiveStyle(Pos{Row: 1, Col: 1}).Fill; got != "#eeeeee" {
		t.Fatalf("styled cell fill: got %q", got)
	}
	if got := g.EffectiveStyle(Pos{Row: 2, Col: 2}).Fill; got != DefaultStyle().Fill {
		t.Fatalf("untouched cell fill: got %q", got)
	}
	ch, _ := g.LastChange()
	if ch.Kind != ChangeStyle || ch.Area != (Area{Top: 0, Left: 0, Bottom: 2, Right: 2}) {
		t.Fatalf("last change: got %+v", ch)
	}
}

func TestApplyStyle_Rejections(t *testing.T) {
	g := New(Options{})
	g.Merge([]Pos{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	v := g.Version()

	cases := []struct {
		name  string
		cells []Pos
		patch StyleOverride
		want  Reason
	}{
		{name: "no cells", patch: StyleOverride{Bold: Some(true)}, want: ReasonNoSelection},
		{name: "hidden", cells: []Pos{{Row: 0, Col: 1}}, patch: StyleOverride{Bold: Some(true)}, want: ReasonHiddenCell},
		{name: "out of range", cells: []Pos{{Row: 7, Col: 0}}, patch: StyleOverride{Bold: Some(true)}, want: ReasonOutOfRange},
		{name: "nan font", cells: []Pos{{}}, patch: StyleOverride{FontSize: Some(math.NaN())}, want: ReasonInvalidSize},
		{name: "bad align", cells: []Pos{{}}, patch: StyleOverride{Align: Some(Align(9))}, want: ReasonInvalidSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := g.ApplyStyle(tc.cells, tc.patch)
			if res.Applied || res.Reason != tc.want {
				t.Fatalf("got %v, want rejection %v", res, tc.want)
			}
			if g.Version() != v {
				t.Fatalf("rejected style bumped version")
			}
		})
	}
}

func TestApplyStyle_ClampsFontSize(t *testing.T) {
	g := New(Options{})
	if res := g.ApplyStyle([]Pos{{}}, StyleOverride{FontSize: Some(2.0), StrokeWidth: Some(-1.0)}); !res.Applied {
		t.Fatalf("apply: %v", res)
	}
	st := g.EffectiveStyle(Pos{})
	if st.FontSize != MinFontSize || st.StrokeWidth != 0 {
		t.Fatalf("clamped style: got font %v stroke %v", st.FontSize, st.StrokeWidth)
	}
}

func TestSetBaseStyle_DropsCellOverridesOfPatchedFields(t *testing.T) {
	g := New(Options{})
	g.ApplyStyle([]Pos{{}}, StyleOverride{Fill: Some("#111111"), Bold: Some(true)})

	if res := g.SetBaseStyle(StyleOverride{Fill: Some("#222222")}); !res.Applied {
		t.Fatalf("set base: %v", res)
	}
	st := g.EffectiveStyle(Pos{})
	if st.Fill != "#222222" {
		t.Fatalf("fill after base patch: got %q, want %q", st.Fill, "#222222")
	}
	if !st.Bold {
		t.Fatalf("unpatched override must survive")
	}
	if got := g.Base().Fill; got != "#222222" {
		t.Fatalf("base fill: got %q", got)
	}
}

func TestResetStyles(t *testing.T) {
	g := New(Options{})
	g.ApplyStyle([]Pos{{Row: 1, Col: 1}}, StyleOverride{Italic: Some(true), TextColor: Some("#ff0000")})

	if res := g.ResetStyles(); !res.Applied {
		t.Fatalf("reset: %v", res)
	}
	if got, want := g.Base(), ResetStyle(); got != want {
		t.Fatalf("base: got %+v, want %+v", got, want)
	}
	for _, p := range g.Visible() {
		c := mustCell(t, g, p)
		if !c.Style.IsZero() {
			t.Fatalf("cell %v kept override %+v", p, c.Style)
		}
	}
	if got := mustCell(t, g, Pos{Row: 1, Col: 1}).Text; got != "R2C2" {
		t.Fatalf("reset must keep text: got %q", got)
	}
}
