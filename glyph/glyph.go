// seehuhn.de/go/sigil - name sigils on a 26-letter wheel
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package glyph converts short strings into filled outlines.
//
// Labels on the sigil wheel are drawn as paths rather than as text, so
// that every surface (raster, PDF) paints exactly the same shapes.  The
// outlines come from the Go fonts shipped with golang.org/x/image.
package glyph

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// unitsPerEm is the size at which outlines are extracted.
// Outlines are scaled from there, so the value only affects precision.
const unitsPerEm = 1024

// Face is a parsed font.  A Face is safe for concurrent use.
type Face struct {
	f *sfnt.Font

	mu  sync.Mutex
	buf sfnt.Buffer

	capHeight float64 // in font units at unitsPerEm
}

// Parse reads a TrueType or OpenType font.
func Parse(ttf []byte) (*Face, error) {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := &Face{f: f}

	m, err := f.Metrics(&face.buf, fixed.I(unitsPerEm), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("font metrics: %w", err)
	}
	face.capHeight = fromFixed(m.CapHeight)
	if face.capHeight <= 0 {
		// some fonts leave the OS/2 cap height empty
		face.capHeight = fromFixed(m.Ascent) * 0.7
	}
	return face, nil
}

var (
	boldOnce    = sync.OnceValues(func() (*Face, error) { return Parse(gobold.TTF) })
	regularOnce = sync.OnceValues(func() (*Face, error) { return Parse(goregular.TTF) })
)

// Bold returns the Go Bold face.
func Bold() (*Face, error) { return boldOnce() }

// Regular returns the Go Regular face.
func Regular() (*Face, error) { return regularOnce() }

// Outline returns the outline of text set at the given size.
// The text is centred on the origin: horizontally on its advance width
// and vertically on the cap height, matching a "middle" baseline.
// The y axis grows downwards.
func (face *Face) Outline(text string, size float64) (*path.Data, error) {
	face.mu.Lock()
	defer face.mu.Unlock()

	scale := size / unitsPerEm
	ppem := fixed.I(unitsPerEm)

	out := &path.Data{}
	var pen float64
	prev := sfnt.GlyphIndex(0)
	for i, r := range text {
		gid, err := face.f.GlyphIndex(&face.buf, r)
		if err != nil {
			return nil, fmt.Errorf("glyph index for %q: %w", r, err)
		}
		if i > 0 {
			kern, err := face.f.Kern(&face.buf, prev, gid, ppem, font.HintingNone)
			if err == nil {
				pen += fromFixed(kern)
			}
		}
		segs, err := face.f.LoadGlyph(&face.buf, gid, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("load glyph %q: %w", r, err)
		}
		appendSegments(out, segs, pen)

		adv, err := face.f.GlyphAdvance(&face.buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("advance of %q: %w", r, err)
		}
		pen += fromFixed(adv)
		prev = gid
	}

	// centre horizontally on the advance, vertically on the cap height
	dx := -pen / 2
	dy := face.capHeight / 2
	m := matrix.Matrix{scale, 0, 0, scale, dx * scale, dy * scale}
	return Transform(out, m), nil
}

// appendSegments copies glyph segments into p, shifted right by dx.
// The segments are only valid until the next use of the font buffer.
func appendSegments(p *path.Data, segs sfnt.Segments, dx float64) {
	pt := func(a fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: fromFixed(a.X) + dx, Y: fromFixed(a.Y)}
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.CubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	if open {
		p.Close()
	}
}

// Transform returns a copy of p with every point mapped through m.
// The matrix uses the PDF convention: x' = m[0]x + m[2]y + m[4],
// y' = m[1]x + m[3]y + m[5].
func Transform(p *path.Data, m matrix.Matrix) *path.Data {
	out := &path.Data{
		Cmds:   append([]path.Command(nil), p.Cmds...),
		Coords: make([]vec.Vec2, len(p.Coords)),
	}
	for i, c := range p.Coords {
		out.Coords[i] = vec.Vec2{
			X: m[0]*c.X + m[2]*c.Y + m[4],
			Y: m[1]*c.X + m[3]*c.Y + m[5],
		}
	}
	return out
}

// Place returns the matrix which rotates a centred outline clockwise by
// angle radians and moves it to at.
func Place(at vec.Vec2, angle float64) matrix.Matrix {
	sin, cos := math.Sincos(angle)
	return matrix.Matrix{cos, sin, -sin, cos, at.X, at.Y}
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
