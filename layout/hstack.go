// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"go.uber.org/zap"

	"github.com/hstackui/hstack/unit"
)

// ErrMultipleFillWidth is returned by HStack.Measure when more than
// one visible child requests Fill width.
var ErrMultipleFillWidth = errors.New("layout: more than one child with fill width")

// Variant selects the sizing policy of an HStack.
type Variant uint8

const (
	// Basic measures every child with the conventional height
	// constraint and never stretches children vertically.
	Basic Variant = iota
	// HeightAware defers Fill height children until the height of
	// their siblings is known, and stretches them during layout.
	HeightAware
	// Refactored behaves exactly like Basic.
	Refactored
)

var nopLogger = zap.NewNop()

// HStack lays out child elements left to right.
//
// Children requesting a literal or Fit width are measured first, in
// order, each constrained to the width their preceding siblings left
// over. At most one child may request Fill width; it is measured last
// and receives the remaining space.
//
// HStack is itself an Element and may be nested in another HStack.
type HStack struct {
	Node
	Variant Variant
	// Inset is the padding around the children.
	Inset Inset
	// Metric converts Inset to pixels. A nil Metric converts
	// dp and sp at scale 1.
	Metric unit.Converter
	// Logger receives debug output for each measure pass.
	Logger *zap.Logger

	children []Element
}

// measurePass accumulates the running state of a single measure
// cycle.
type measurePass struct {
	width, height Constraint
	pad           insetPx
	log           *zap.Logger

	consumed  int
	maxHeight int
	state     State
}

// NewHStack returns an HStack with the given children.
func NewHStack(v Variant, children ...Element) *HStack {
	s := &HStack{Variant: v}
	s.Add(children...)
	return s
}

// Add appends children. Insertion order is layout order.
func (s *HStack) Add(children ...Element) {
	for _, c := range children {
		s.Insert(len(s.children), c)
	}
}

// Insert inserts a child at index i.
func (s *HStack) Insert(i int, child Element) {
	n := child.Embed()
	if n == &s.Node {
		panic("inserting into itself")
	}
	if n.parent != nil {
		panic("element already has a parent")
	}
	if i < 0 || i > len(s.children) {
		panic(fmt.Sprintf("insert index %d out of range [0,%d]", i, len(s.children)))
	}
	s.children = append(s.children, nil)
	copy(s.children[i+1:], s.children[i:])
	s.children[i] = child
	n.parent = s
}

// Remove removes a child.
func (s *HStack) Remove(child Element) {
	n := child.Embed()
	if n.parent != s {
		panic("not a child of this node")
	}
	for i, c := range s.children {
		if c.Embed() == n {
			s.children = append(s.children[:i], s.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Children returns the children in layout order.
func (s *HStack) Children() []Element {
	return append([]Element(nil), s.children...)
}

// Len returns the number of children.
func (s *HStack) Len() int {
	return len(s.children)
}

// Measure measures the children and resolves the size of the stack
// within the width and height constraints. The result is also
// recorded in the stack's Node for the following Layout.
func (s *HStack) Measure(width, height Constraint) (Dimensions, error) {
	p := &measurePass{
		width:  width,
		height: height,
		pad:    s.Inset.px(s.converter()),
		log:    s.logger(),
	}
	p.log.Debug("measure",
		zap.Stringer("variant", s.Variant),
		zap.Stringer("width", width),
		zap.Stringer("height", height),
		zap.Int("children", len(s.children)),
	)
	var err error
	var content image.Point
	switch s.Variant {
	case HeightAware:
		content, err = s.measureHeightAware(p)
	default:
		content, err = s.measureBasic(p)
	}
	if err != nil {
		return Dimensions{}, err
	}
	var dims Dimensions
	dims.Size.X, dims.State = ResolveSizeAndState(content.X, width, p.state, Horizontal)
	dims.Size.Y, dims.State = ResolveSizeAndState(content.Y, height, dims.State, Vertical)
	s.measured = dims
	return dims, nil
}

func (s *HStack) measureBasic(p *measurePass) (image.Point, error) {
	fill := -1
	for i, c := range s.children {
		n := c.Embed()
		if n.Visibility == Gone {
			continue
		}
		if n.Width == Fill {
			if fill >= 0 {
				return image.Point{}, fmt.Errorf("%w: children %d and %d", ErrMultipleFillWidth, fill, i)
			}
			fill = i
			p.log.Debug("deferred fill width child", zap.Int("index", i))
			continue
		}
		if err := p.measure(i, c, p.childHeight(n)); err != nil {
			return image.Point{}, err
		}
	}
	if fill >= 0 {
		c := s.children[fill]
		if err := p.measure(fill, c, p.childHeight(c.Embed())); err != nil {
			return image.Point{}, err
		}
	}
	return image.Pt(p.consumed, p.maxHeight), nil
}

func (s *HStack) measureHeightAware(p *measurePass) (image.Point, error) {
	deferHeight := p.height.Mode != Exact
	fill := -1
	fillMeasured := false
	var deferred []int
	for i, c := range s.children {
		n := c.Embed()
		if n.Visibility == Gone {
			continue
		}
		if n.Width == Fill {
			if fill >= 0 {
				return image.Point{}, fmt.Errorf("%w: children %d and %d", ErrMultipleFillWidth, fill, i)
			}
			fill = i
			p.log.Debug("deferred fill width child", zap.Int("index", i))
			continue
		}
		if deferHeight && n.Height == Fill {
			deferred = append(deferred, i)
			p.log.Debug("deferred fill height child", zap.Int("index", i))
			continue
		}
		if err := p.measure(i, c, p.childHeight(n)); err != nil {
			return image.Point{}, err
		}
	}
	if fill >= 0 {
		c := s.children[fill]
		if n := c.Embed(); !deferHeight || n.Height != Fill {
			if err := p.measure(fill, c, p.childHeight(n)); err != nil {
				return image.Point{}, err
			}
			fillMeasured = true
		}
	}
	stretch := Exactly(p.maxHeight)
	for _, i := range deferred {
		if err := p.measure(i, s.children[i], stretch); err != nil {
			return image.Point{}, err
		}
	}
	if fill >= 0 && !fillMeasured {
		if err := p.measure(fill, s.children[fill], stretch); err != nil {
			return image.Point{}, err
		}
	}
	return image.Pt(p.consumed, p.maxHeight+p.pad.vertical()), nil
}

// Layout positions the visible children left to right, using the
// dimensions recorded by the last Measure. Bounds are relative to the
// stack.
func (s *HStack) Layout() {
	pad := s.Inset.px(s.converter())
	x := pad.left
	top := pad.top
	for _, c := range s.children {
		n := c.Embed()
		if n.Visibility == Gone {
			continue
		}
		sz := n.measured.Size
		bottom := top + sz.Y
		if s.Variant == HeightAware && n.Height == Fill {
			bottom = top + s.measured.Size.Y
		}
		n.Bounds = image.Rectangle{
			Min: image.Pt(x, top),
			Max: image.Pt(x+sz.X, bottom),
		}
		if l, ok := c.(Layouter); ok {
			l.Layout()
		}
		x = n.Bounds.Max.X
	}
}

func (s *HStack) converter() unit.Converter {
	if s.Metric == nil {
		return unit.Metric{}
	}
	return s.Metric
}

func (s *HStack) logger() *zap.Logger {
	if s.Logger == nil {
		return nopLogger
	}
	return s.Logger
}

// childHeight is the conventional height constraint for n.
func (p *measurePass) childHeight(n *Node) Constraint {
	return ChildConstraint(p.height, p.pad.vertical(), n.Height)
}

// measure measures the ith child with the width left over by the
// children measured so far.
func (p *measurePass) measure(i int, c Element, height Constraint) error {
	width := WidthConstraint(p.width, p.pad.horizontal(), p.consumed, c.Embed().Width)
	dims, err := measure(c, width, height)
	if err != nil {
		return err
	}
	p.consumed += dims.Size.X
	if dims.Size.Y > p.maxHeight {
		p.maxHeight = dims.Size.Y
	}
	p.state |= dims.State
	p.log.Debug("measured child",
		zap.Int("index", i),
		zap.Stringer("width", width),
		zap.Stringer("height", height),
		zap.Int("measured_width", dims.Size.X),
		zap.Int("measured_height", dims.Size.Y),
	)
	return nil
}

// ParseVariant parses "basic", "height_aware" or "refactored".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "":
		return Basic, nil
	case "height_aware", "height-aware":
		return HeightAware, nil
	case "refactored":
		return Refactored, nil
	default:
		return 0, fmt.Errorf("layout: unknown variant %q", s)
	}
}

func (v Variant) String() string {
	switch v {
	case Basic:
		return "basic"
	case HeightAware:
		return "height_aware"
	case Refactored:
		return "refactored"
	default:
		panic("unreachable")
	}
}
