// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// Element is anything a container can arrange.
type Element interface {
	// Embed returns the layout state shared by all elements.
	Embed() *Node
	// Measure computes the element's desired size within the
	// given constraints. The container records the result in the
	// element's Node.
	Measure(width, height Constraint) (Dimensions, error)
}

// Layouter is implemented by elements that arrange children of their
// own. Layout is called after the element's Bounds are assigned.
type Layouter interface {
	Layout()
}

// Node is the layout state embedded in every element.
type Node struct {
	// Width and Height are the requested sizes.
	Width, Height Size
	Visibility    Visibility
	// Bounds is the position assigned by the last layout pass,
	// relative to the parent container.
	Bounds image.Rectangle

	measured Dimensions
	parent   *HStack
}

// Embed implements Element.
func (n *Node) Embed() *Node {
	return n
}

// Measured returns the dimensions recorded by the last measure pass.
func (n *Node) Measured() Dimensions {
	return n.measured
}

// Parent returns the container the element was added to, if any.
func (n *Node) Parent() *HStack {
	return n.parent
}

// measure runs the element's measurement and records the result.
func measure(e Element, width, height Constraint) (Dimensions, error) {
	dims, err := e.Measure(width, height)
	if err != nil {
		return Dimensions{}, err
	}
	dims.Size.X = max(0, dims.Size.X)
	dims.Size.Y = max(0, dims.Size.Y)
	e.Embed().measured = dims
	return dims, nil
}
