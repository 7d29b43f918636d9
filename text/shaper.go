// SPDX-License-Identifier: Unlicense OR MIT

// Package text measures single lines of text for layout.
package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Shaper measures strings set in OpenType fonts. Faces and
// measurements are cached; a Shaper is not safe for concurrent use.
type Shaper struct {
	faces map[faceKey]font.Face
	cache measureCache
}

type faceKey struct {
	font *opentype.Font
	px   int
}

// NewShaper returns an empty Shaper.
func NewShaper() *Shaper {
	return new(Shaper)
}

// Measure returns the size in pixels of str set on a single line in
// fnt at px pixels per em. The height is the line height of the face.
func (s *Shaper) Measure(fnt *opentype.Font, px int, str string) (image.Point, error) {
	if px <= 0 {
		return image.Point{}, nil
	}
	k := measureKey{font: fnt, px: px, str: str}
	if sz, ok := s.cache.Get(k); ok {
		return sz, nil
	}
	face, err := s.face(fnt, px)
	if err != nil {
		return image.Point{}, err
	}
	m := face.Metrics()
	sz := image.Point{
		X: font.MeasureString(face, str).Ceil(),
		Y: m.Height.Ceil(),
	}
	s.cache.Put(k, sz)
	return sz, nil
}

func (s *Shaper) face(fnt *opentype.Font, px int) (font.Face, error) {
	k := faceKey{font: fnt, px: px}
	if f, ok := s.faces[k]; ok {
		return f, nil
	}
	// At 72 DPI a point is a pixel.
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: face at %dpx: %w", px, err)
	}
	if s.faces == nil {
		s.faces = make(map[faceKey]font.Face)
	}
	s.faces[k] = f
	return f, nil
}
