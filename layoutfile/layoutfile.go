// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layoutfile decodes HCL scene descriptions into element trees.

A scene names the constraints of the root stack and its children in
layout order:

	width   = "exact 320"
	height  = "at_most 100"
	density = 2

	stack {
	  variant = "height_aware"
	  padding {
	    left = 4
	    top  = 4
	  }
	  child "menu" {
	    kind = "icon"
	    icon = "menu"
	  }
	  child "title" {
	    kind  = "label"
	    width = "fill"
	    text  = "Inbox"
	  }
	}

Child kinds are spacer, label, icon and stack. Padding, text and icon
sizes are in dp and sp, scaled by density.
*/
package layoutfile

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"go.uber.org/zap"

	"github.com/hstackui/hstack/font/gofont"
	"github.com/hstackui/hstack/layout"
	"github.com/hstackui/hstack/text"
	"github.com/hstackui/hstack/unit"
	"github.com/hstackui/hstack/widget"
)

// Scene is a decoded scene description.
type Scene struct {
	Root          *layout.HStack
	Width, Height layout.Constraint
	Metric        unit.Metric

	names map[*layout.Node]string
}

type document struct {
	Width   string     `hcl:"width"`
	Height  string     `hcl:"height"`
	Density float64    `hcl:"density,optional"`
	Stack   stackBlock `hcl:"stack,block"`
}

type stackBlock struct {
	Variant  string        `hcl:"variant,optional"`
	Padding  *paddingBlock `hcl:"padding,block"`
	Children []childBlock  `hcl:"child,block"`
}

type paddingBlock struct {
	Top    float64 `hcl:"top,optional"`
	Right  float64 `hcl:"right,optional"`
	Bottom float64 `hcl:"bottom,optional"`
	Left   float64 `hcl:"left,optional"`
}

type childBlock struct {
	Name       string `hcl:"name,label"`
	Kind       string `hcl:"kind"`
	Width      string `hcl:"width,optional"`
	Height     string `hcl:"height,optional"`
	Visibility string `hcl:"visibility,optional"`

	// spacer
	ContentWidth  int `hcl:"content_width,optional"`
	ContentHeight int `hcl:"content_height,optional"`

	// label
	Text     string  `hcl:"text,optional"`
	TextSize float64 `hcl:"text_size,optional"`
	Mono     bool    `hcl:"mono,optional"`

	// icon
	Icon     string  `hcl:"icon,optional"`
	IconSize float64 `hcl:"icon_size,optional"`

	// stack
	Variant  string        `hcl:"variant,optional"`
	Padding  *paddingBlock `hcl:"padding,block"`
	Children []childBlock  `hcl:"child,block"`
}

type builder struct {
	metric unit.Metric
	shaper *text.Shaper
	names  map[*layout.Node]string
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, src)
}

// Parse decodes a scene. The filename selects the syntax: a .json
// suffix selects HCL's JSON syntax, anything else native HCL.
func Parse(filename string, src []byte) (*Scene, error) {
	var doc document
	if err := hclsimple.Decode(hclName(filename), src, nil, &doc); err != nil {
		return nil, fmt.Errorf("layoutfile: %w", err)
	}
	width, err := layout.ParseConstraint(doc.Width)
	if err != nil {
		return nil, fmt.Errorf("layoutfile: width: %w", err)
	}
	height, err := layout.ParseConstraint(doc.Height)
	if err != nil {
		return nil, fmt.Errorf("layoutfile: height: %w", err)
	}
	if doc.Density < 0 {
		return nil, fmt.Errorf("layoutfile: negative density %g", doc.Density)
	}
	b := &builder{
		metric: unit.Metric{PxPerDp: float32(doc.Density), PxPerSp: float32(doc.Density)},
		shaper: text.NewShaper(),
		names:  make(map[*layout.Node]string),
	}
	root, err := b.stack(doc.Stack.Variant, doc.Stack.Padding, doc.Stack.Children)
	if err != nil {
		return nil, err
	}
	b.names[root.Embed()] = "root"
	return &Scene{
		Root:   root,
		Width:  width,
		Height: height,
		Metric: b.metric,
		names:  b.names,
	}, nil
}

// hclName makes sure hclsimple recognizes the file type.
func hclName(filename string) string {
	if strings.HasSuffix(filename, ".json") || strings.HasSuffix(filename, ".hcl") {
		return filename
	}
	return filename + ".hcl"
}

func (b *builder) stack(variant string, pad *paddingBlock, children []childBlock) (*layout.HStack, error) {
	v, err := layout.ParseVariant(variant)
	if err != nil {
		return nil, err
	}
	s := layout.NewHStack(v)
	s.Metric = b.metric
	if pad != nil {
		s.Inset = layout.Inset{
			Top:    unit.Dp(float32(pad.Top)),
			Right:  unit.Dp(float32(pad.Right)),
			Bottom: unit.Dp(float32(pad.Bottom)),
			Left:   unit.Dp(float32(pad.Left)),
		}
	}
	for _, c := range children {
		e, err := b.element(c)
		if err != nil {
			return nil, fmt.Errorf("layoutfile: child %q: %w", c.Name, err)
		}
		s.Add(e)
	}
	return s, nil
}

func (b *builder) element(c childBlock) (layout.Element, error) {
	var e layout.Element
	switch c.Kind {
	case "spacer":
		e = widget.NewSpacer(layout.Fit, layout.Fit, image.Pt(c.ContentWidth, c.ContentHeight))
	case "label":
		l := widget.NewLabel(b.shaper, c.Text)
		l.Metric = b.metric
		if c.TextSize > 0 {
			l.TextSize = unit.Sp(float32(c.TextSize))
		}
		if c.Mono {
			l.Font = gofont.Mono()
		}
		e = l
	case "icon":
		ic, err := widget.IconByName(c.Icon)
		if err != nil {
			return nil, err
		}
		ic.Metric = b.metric
		if c.IconSize > 0 {
			ic.Size = unit.Dp(float32(c.IconSize))
		}
		e = ic
	case "stack":
		s, err := b.stack(c.Variant, c.Padding, c.Children)
		if err != nil {
			return nil, err
		}
		e = s
	default:
		return nil, fmt.Errorf("unknown kind %q", c.Kind)
	}
	n := e.Embed()
	var err error
	if n.Width, err = layout.ParseSize(c.Width); err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	if n.Height, err = layout.ParseSize(c.Height); err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	if n.Visibility, err = layout.ParseVisibility(c.Visibility); err != nil {
		return nil, err
	}
	b.names[n] = c.Name
	return e, nil
}

// Name returns the name an element was declared with.
func (s *Scene) Name(e layout.Element) string {
	return s.names[e.Embed()]
}

// Lookup returns the element declared with name, searching the tree
// depth first.
func (s *Scene) Lookup(name string) layout.Element {
	var found layout.Element
	s.Walk(func(e layout.Element, _ int) {
		if found == nil && s.Name(e) == name {
			found = e
		}
	})
	return found
}

// Walk calls f for the root and every descendant in layout order.
func (s *Scene) Walk(f func(e layout.Element, depth int)) {
	walk(s.Root, 0, f)
}

func walk(e layout.Element, depth int, f func(layout.Element, int)) {
	f(e, depth)
	if s, ok := e.(*layout.HStack); ok {
		for _, c := range s.Children() {
			walk(c, depth+1, f)
		}
	}
}

// SetLogger sets the logger of every stack in the scene.
func (s *Scene) SetLogger(l *zap.Logger) {
	s.Walk(func(e layout.Element, _ int) {
		if st, ok := e.(*layout.HStack); ok {
			st.Logger = l.With(zap.String("stack", s.Name(e)))
		}
	})
}

// Run measures the scene within its constraints and lays it out.
func (s *Scene) Run() (layout.Dimensions, error) {
	dims, err := s.Root.Measure(s.Width, s.Height)
	if err != nil {
		return layout.Dimensions{}, err
	}
	s.Root.Layout()
	return dims, nil
}
