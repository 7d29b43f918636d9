// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"
	"math"
	"sort"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/hstackui/hstack/layout"
	"github.com/hstackui/hstack/unit"
)

// DefaultIconSize is the width of an Icon without a Size.
var DefaultIconSize = unit.Dp(24)

// Icon is an element sized by IconVG data.
type Icon struct {
	layout.Node
	// Size is the icon width. The height follows from the icon's
	// aspect ratio.
	Size   unit.Value
	Metric unit.Converter

	// Aspect ratio of the icon's view box.
	dx, dy float32
}

var namedIcons = map[string][]byte{
	"check_box": icons.ToggleCheckBox,
	"close":     icons.NavigationClose,
	"home":      icons.ActionHome,
	"menu":      icons.NavigationMenu,
	"search":    icons.ActionSearch,
	"settings":  icons.ActionSettings,
}

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte) (*Icon, error) {
	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	dx, dy := m.ViewBox.AspectRatio()
	ic := &Icon{dx: dx, dy: dy}
	ic.Width, ic.Height = layout.Fit, layout.Fit
	return ic, nil
}

// IconByName returns a material design icon by name.
func IconByName(name string) (*Icon, error) {
	data, ok := namedIcons[name]
	if !ok {
		return nil, fmt.Errorf("widget: unknown icon %q", name)
	}
	return NewIcon(data)
}

// IconNames returns the names accepted by IconByName.
func IconNames() []string {
	names := make([]string, 0, len(namedIcons))
	for n := range namedIcons {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (ic *Icon) Measure(width, height layout.Constraint) (layout.Dimensions, error) {
	var c unit.Converter = unit.Metric{}
	if ic.Metric != nil {
		c = ic.Metric
	}
	size := ic.Size
	if size.V == 0 {
		size = DefaultIconSize
	}
	w := c.Px(size)
	if width.Mode == layout.Exact {
		w = width.Size
	}
	content := image.Point{X: w}
	if ic.dx > 0 {
		content.Y = int(math.Round(float64(float32(w) * ic.dy / ic.dx)))
	}
	return layout.ResolveContent(content, width, height), nil
}
