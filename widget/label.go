// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"golang.org/x/image/font/opentype"

	"github.com/hstackui/hstack/font/gofont"
	"github.com/hstackui/hstack/layout"
	"github.com/hstackui/hstack/text"
	"github.com/hstackui/hstack/unit"
)

// DefaultTextSize is the text size of a Label without a TextSize.
var DefaultTextSize = unit.Sp(16)

// Label is a single line of text.
type Label struct {
	layout.Node
	Text string
	// TextSize is the font size. The zero value means
	// DefaultTextSize.
	TextSize unit.Value
	// Font defaults to the Go regular font.
	Font *opentype.Font
	// Metric converts TextSize to pixels.
	Metric unit.Converter
	// Shaper measures the text. Labels sharing a Shaper share its
	// cache.
	Shaper *text.Shaper
}

// NewLabel returns a Fit sized Label measured by sh.
func NewLabel(sh *text.Shaper, txt string) *Label {
	l := &Label{Text: txt, Shaper: sh}
	l.Width, l.Height = layout.Fit, layout.Fit
	return l
}

func (l *Label) Measure(width, height layout.Constraint) (layout.Dimensions, error) {
	if l.Shaper == nil {
		l.Shaper = text.NewShaper()
	}
	fnt := l.Font
	if fnt == nil {
		fnt = gofont.Regular()
	}
	var c unit.Converter = unit.Metric{}
	if l.Metric != nil {
		c = l.Metric
	}
	size := l.TextSize
	if size.V == 0 {
		size = DefaultTextSize
	}
	content, err := l.Shaper.Measure(fnt, c.Px(size), l.Text)
	if err != nil {
		return layout.Dimensions{}, fmt.Errorf("label %q: %w", l.Text, err)
	}
	return layout.ResolveContent(content, width, height), nil
}
