// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/hstackui/hstack/layout"
)

// Spacer is an empty element with a fixed content size.
type Spacer struct {
	layout.Node
	// Content is the size in pixels the Spacer has when its
	// requested size is Fit.
	Content image.Point
}

// NewSpacer returns a Spacer with the requested sizes and content.
func NewSpacer(width, height layout.Size, content image.Point) *Spacer {
	s := &Spacer{Content: content}
	s.Width, s.Height = width, height
	return s
}

func (s *Spacer) Measure(width, height layout.Constraint) (layout.Dimensions, error) {
	return layout.ResolveContent(s.Content, width, height), nil
}
