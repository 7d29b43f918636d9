// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/hstackui/hstack/unit"
)

// Mode is the kind of bound a Constraint places on a size.
type Mode uint8

// Constraint is the range of acceptable sizes along one axis,
// handed from a container to a child for a single measure cycle.
type Constraint struct {
	Mode Mode
	Size int
}

// Size is the size an element requests along one axis: either a
// non-negative literal size in pixels, Fill or Fit.
type Size int

// Visibility controls whether an element takes part in layout.
type Visibility uint8

// State records whether a measurement was clipped by its constraints.
type State uint8

// Dimensions are the resolved size and state of an element.
type Dimensions struct {
	Size  image.Point
	State State
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	// Exact demands the element is exactly Size.
	Exact Mode = iota
	// AtMost allows any size up to Size.
	AtMost
	// Unspecified places no bound on the size; Size is a hint.
	Unspecified
)

const (
	// Fill claims the space left after siblings are sized.
	Fill Size = -1
	// Fit sizes the element to its own content.
	Fit Size = -2
)

const (
	Visible Visibility = iota
	// Invisible elements still take up space.
	Invisible
	// Gone elements take up no space and are skipped.
	Gone
)

const (
	WidthTooSmall State = 1 << iota
	HeightTooSmall
)

const (
	Horizontal Axis = iota
	Vertical
)

// Exactly returns an Exact constraint of n pixels.
func Exactly(n int) Constraint {
	return Constraint{Mode: Exact, Size: max(0, n)}
}

// AtMostOf returns an AtMost constraint of n pixels.
func AtMostOf(n int) Constraint {
	return Constraint{Mode: AtMost, Size: max(0, n)}
}

// Unbounded returns an Unspecified constraint.
func Unbounded() Constraint {
	return Constraint{Mode: Unspecified}
}

// Resolve clamps size to the constraint. The second return value
// reports whether the constraint forced a size smaller than
// requested.
func (c Constraint) Resolve(size int) (int, bool) {
	size = max(0, size)
	switch c.Mode {
	case Exact:
		return c.Size, false
	case AtMost:
		if c.Size < size {
			return c.Size, true
		}
		return size, false
	default:
		return size, false
	}
}

// ResolveSizeAndState resolves size against c and merges the too
// small flag for axis into childState.
func ResolveSizeAndState(size int, c Constraint, childState State, axis Axis) (int, State) {
	sz, small := c.Resolve(size)
	if small {
		childState |= axis.tooSmall()
	}
	return sz, childState
}

// ResolveContent resolves an element's content size against its
// width and height constraints.
func ResolveContent(content image.Point, width, height Constraint) Dimensions {
	var d Dimensions
	d.Size.X, d.State = ResolveSizeAndState(content.X, width, 0, Horizontal)
	d.Size.Y, d.State = ResolveSizeAndState(content.Y, height, d.State, Vertical)
	return d
}

// ChildConstraint derives the constraint for a child requesting size
// from its container's constraint, following the conventional rules
// where the container's padding is removed from the available space.
func ChildConstraint(parent Constraint, padding int, requested Size) Constraint {
	size := max(0, parent.Size-padding)
	if requested >= 0 {
		return Constraint{Mode: Exact, Size: int(requested)}
	}
	switch parent.Mode {
	case Exact:
		if requested == Fill {
			return Constraint{Mode: Exact, Size: size}
		}
		return Constraint{Mode: AtMost, Size: size}
	case AtMost:
		return Constraint{Mode: AtMost, Size: size}
	default:
		return Constraint{Mode: Unspecified, Size: size}
	}
}

// WidthConstraint derives the width constraint for a child of a
// horizontal stack, taking into account the width consumed by
// siblings measured before it.
func WidthConstraint(parent Constraint, padding, consumed int, requested Size) Constraint {
	spaceLeft := max(0, parent.Size-consumed-padding)
	if requested >= 0 {
		return Constraint{Mode: Exact, Size: int(requested)}
	}
	switch parent.Mode {
	case Exact:
		if requested == Fill {
			return Constraint{Mode: Exact, Size: spaceLeft}
		}
		return Constraint{Mode: AtMost, Size: spaceLeft}
	case AtMost:
		return Constraint{Mode: AtMost, Size: spaceLeft}
	default:
		return Constraint{Mode: Unspecified, Size: spaceLeft}
	}
}

// ParseConstraint parses the format produced by Constraint.String,
// such as "exact 300", "at_most 100" or "unspecified".
func ParseConstraint(s string) (Constraint, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Constraint{}, fmt.Errorf("layout: empty constraint")
	}
	var c Constraint
	switch strings.ToLower(fields[0]) {
	case "exact":
		c.Mode = Exact
	case "at_most":
		c.Mode = AtMost
	case "unspecified":
		c.Mode = Unspecified
		if len(fields) == 1 {
			return c, nil
		}
	default:
		return Constraint{}, fmt.Errorf("layout: unknown constraint mode %q", fields[0])
	}
	if len(fields) != 2 {
		return Constraint{}, fmt.Errorf("layout: invalid constraint %q", s)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return Constraint{}, fmt.Errorf("layout: invalid constraint size %q", fields[1])
	}
	c.Size = n
	return c, nil
}

// ParseSize parses "fill", "fit" or a non-negative pixel count.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fill":
		return Fill, nil
	case "fit", "":
		return Fit, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("layout: invalid size %q", s)
	}
	return Size(n), nil
}

// ParseVisibility parses "visible", "invisible" or "gone".
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "visible", "":
		return Visible, nil
	case "invisible":
		return Invisible, nil
	case "gone":
		return Gone, nil
	default:
		return 0, fmt.Errorf("layout: invalid visibility %q", s)
	}
}

// Has reports whether all flags in f are set.
func (s State) Has(f State) bool {
	return s&f == f
}

// Inset is the padding a container keeps between its edges and its
// children.
type Inset struct {
	Top, Right, Bottom, Left unit.Value
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v unit.Value) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// insetPx is an Inset converted to pixels.
type insetPx struct {
	top, right, bottom, left int
}

func (in Inset) px(c unit.Converter) insetPx {
	return insetPx{
		top:    max(0, c.Px(in.Top)),
		right:  max(0, c.Px(in.Right)),
		bottom: max(0, c.Px(in.Bottom)),
		left:   max(0, c.Px(in.Left)),
	}
}

func (p insetPx) horizontal() int { return p.left + p.right }
func (p insetPx) vertical() int   { return p.top + p.bottom }

func (a Axis) tooSmall() State {
	if a == Horizontal {
		return WidthTooSmall
	}
	return HeightTooSmall
}

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case AtMost:
		return "at_most"
	case Unspecified:
		return "unspecified"
	default:
		panic("unreachable")
	}
}

func (c Constraint) String() string {
	if c.Mode == Unspecified && c.Size == 0 {
		return c.Mode.String()
	}
	return fmt.Sprintf("%s %d", c.Mode, c.Size)
}

func (s Size) String() string {
	switch {
	case s == Fill:
		return "fill"
	case s == Fit:
		return "fit"
	case s >= 0:
		return strconv.Itoa(int(s))
	default:
		return fmt.Sprintf("Size(%d)", int(s))
	}
}

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	default:
		panic("unreachable")
	}
}

func (s State) String() string {
	var flags []string
	if s.Has(WidthTooSmall) {
		flags = append(flags, "width-too-small")
	}
	if s.Has(HeightTooSmall) {
		flags = append(flags, "height-too-small")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, "|")
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
