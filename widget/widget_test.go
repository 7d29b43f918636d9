// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"testing"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/hstackui/hstack/layout"
	"github.com/hstackui/hstack/text"
	"github.com/hstackui/hstack/unit"
)

// TestWidgetConstraints tests that widgets return dimensions within
// their constraints.
func TestWidgetConstraints(t *testing.T) {
	sh := text.NewShaper()
	constraints := [][2]layout.Constraint{
		{layout.Exactly(20), layout.Exactly(10)},
		{layout.AtMostOf(20), layout.AtMostOf(10)},
		{layout.AtMostOf(1000), layout.AtMostOf(1000)},
		{layout.Exactly(0), layout.AtMostOf(0)},
	}
	for _, tc := range []struct {
		label   string
		element func() layout.Element
	}{
		{
			label:   "Spacer",
			element: func() layout.Element { return NewSpacer(layout.Fit, layout.Fit, image.Pt(40, 30)) },
		},
		{
			label:   "Label",
			element: func() layout.Element { return NewLabel(sh, "Some label text") },
		},
		{
			label: "Icon",
			element: func() layout.Element {
				ic, _ := NewIcon(icons.ToggleCheckBox)
				return ic
			},
		},
	} {
		t.Run(tc.label, func(t *testing.T) {
			for _, cs := range constraints {
				dims, err := tc.element().Measure(cs[0], cs[1])
				if err != nil {
					t.Fatal(err)
				}
				if !fits(dims.Size.X, cs[0]) || !fits(dims.Size.Y, cs[1]) {
					t.Errorf("dims size %v not within constraints %v", dims.Size, cs)
				}
			}
		})
	}
}

func fits(v int, c layout.Constraint) bool {
	switch c.Mode {
	case layout.Exact:
		return v == c.Size
	case layout.AtMost:
		return v >= 0 && v <= c.Size
	default:
		return v >= 0
	}
}

func TestSpacer(t *testing.T) {
	s := NewSpacer(layout.Fit, layout.Fit, image.Pt(40, 30))
	dims, _ := s.Measure(layout.AtMostOf(25), layout.Unbounded())
	if exp := image.Pt(25, 30); dims.Size != exp || !dims.State.Has(layout.WidthTooSmall) {
		t.Errorf("clipped spacer measured %v", dims)
	}
	dims, _ = s.Measure(layout.Unbounded(), layout.Unbounded())
	if exp := image.Pt(40, 30); dims.Size != exp || dims.State != 0 {
		t.Errorf("unbounded spacer measured %v", dims)
	}
}

func TestLabel(t *testing.T) {
	sh := text.NewShaper()
	small := NewLabel(sh, "Hello")
	big := NewLabel(sh, "Hello")
	big.TextSize = unit.Sp(16)
	big.Metric = unit.Metric{PxPerSp: 2}

	d1, err := small.Measure(layout.Unbounded(), layout.Unbounded())
	if err != nil {
		t.Fatal(err)
	}
	d2, err := big.Measure(layout.Unbounded(), layout.Unbounded())
	if err != nil {
		t.Fatal(err)
	}
	if d1.Size.X <= 0 || d1.Size.Y <= 0 {
		t.Errorf("label measured %v", d1)
	}
	if d2.Size.X <= d1.Size.X || d2.Size.Y <= d1.Size.Y {
		t.Errorf("scaled label %v not larger than %v", d2.Size, d1.Size)
	}
	d3, _ := small.Measure(layout.AtMostOf(d1.Size.X-1), layout.Unbounded())
	if !d3.State.Has(layout.WidthTooSmall) {
		t.Errorf("clipped label state %v", d3.State)
	}
}

func TestLabelNoShaper(t *testing.T) {
	l := &Label{Text: "x"}
	if _, err := l.Measure(layout.Unbounded(), layout.Unbounded()); err != nil {
		t.Fatal(err)
	}
	if l.Shaper == nil {
		t.Error("shaper not created")
	}
}

func TestIcon(t *testing.T) {
	ic, err := NewIcon(icons.ActionHome)
	if err != nil {
		t.Fatal(err)
	}
	ic.Size = unit.Dp(24)
	ic.Metric = unit.Metric{PxPerDp: 2}
	dims, _ := ic.Measure(layout.Unbounded(), layout.Unbounded())
	// Material icons are square.
	if exp := image.Pt(48, 48); dims.Size != exp {
		t.Errorf("icon measured %v, expected %v", dims.Size, exp)
	}
	dims, _ = ic.Measure(layout.Exactly(30), layout.Unbounded())
	if exp := image.Pt(30, 30); dims.Size != exp {
		t.Errorf("exact width icon measured %v, expected %v", dims.Size, exp)
	}
}

func TestIconByName(t *testing.T) {
	for _, n := range IconNames() {
		if _, err := IconByName(n); err != nil {
			t.Errorf("icon %q: %v", n, err)
		}
	}
	if _, err := IconByName("no_such_icon"); err == nil {
		t.Error("unknown icon name accepted")
	}
	if _, err := NewIcon([]byte("not iconvg")); err == nil {
		t.Error("invalid icon data accepted")
	}
}

func TestHStackOfWidgets(t *testing.T) {
	sh := text.NewShaper()
	ic, _ := IconByName("menu")
	title := NewLabel(sh, "Title")
	title.Width = layout.Fill
	s := layout.NewHStack(layout.HeightAware,
		ic,
		title,
		NewSpacer(8, 4, image.Point{}),
	)
	dims, err := s.Measure(layout.Exactly(320), layout.AtMostOf(100))
	if err != nil {
		t.Fatal(err)
	}
	s.Layout()
	if exp := 320 - 24 - 8; title.Bounds.Dx() != exp {
		t.Errorf("title width %d, expected %d", title.Bounds.Dx(), exp)
	}
	if dims.Size.X != 320 {
		t.Errorf("stack width %d", dims.Size.X)
	}
}
