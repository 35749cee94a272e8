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

// Package scene describes a flat 2D drawing as an ordered list of shapes.
//
// A scene carries no behaviour of its own.  Surfaces consume it: the SVG
// writer in this package, the raster canvas in seehuhn.de/go/sigil/raster
// and the PDF writer in seehuhn.de/go/sigil/sigilpdf.  Shapes are painted
// in list order, later shapes on top.
//
// Coordinates are in canvas units with the origin at the top-left corner
// and y growing downwards.
package scene

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Scene is an ordered list of shapes on a Width×Height canvas.
type Scene struct {
	Width, Height float64
	Shapes        []Shape
}

// New returns an empty scene of the given size.
func New(width, height float64) *Scene {
	return &Scene{Width: width, Height: height}
}

// Add appends shapes to the scene.
func (s *Scene) Add(shapes ...Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Shape is one of [Rect], [Circle], [Disc], [Line], [Polyline] or [Text].
type Shape interface {
	isShape()
}

// Rect is a filled axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
	Fill       color.NRGBA
	Class      string
}

// Circle is a stroked circle outline.
type Circle struct {
	Center vec.Vec2
	Radius float64
	Stroke color.NRGBA
	Width  float64
	Class  string
}

// Disc is a filled circle.
type Disc struct {
	Center vec.Vec2
	Radius float64
	Fill   color.NRGBA
	Class  string
}

// Line is a stroked straight segment with butt ends.
type Line struct {
	A, B   vec.Vec2
	Stroke color.NRGBA
	Width  float64
	Class  string
}

// Polyline is an open path of straight segments with round caps and
// round joins.
type Polyline struct {
	Points []vec.Vec2
	Stroke color.NRGBA
	Width  float64
	Class  string
}

// Text is a single line of text, centred horizontally and vertically
// on At and rotated clockwise by Angle radians around At.
type Text struct {
	At     vec.Vec2
	Angle  float64
	Size   float64
	Bold   bool
	Family string
	Fill   color.NRGBA
	Text   string
	Class  string
}

func (Rect) isShape()     {}
func (Circle) isShape()   {}
func (Disc) isShape()     {}
func (Line) isShape()     {}
func (Polyline) isShape() {}
func (Text) isShape()     {}

// ClassOf returns the class label of a shape.
func ClassOf(sh Shape) string {
	switch sh := sh.(type) {
	case Rect:
		return sh.Class
	case Circle:
		return sh.Class
	case Disc:
		return sh.Class
	case Line:
		return sh.Class
	case Polyline:
		return sh.Class
	case Text:
		return sh.Class
	}
	return ""
}

// Count returns the number of shapes with the given class.
func (s *Scene) Count(class string) int {
	n := 0
	for _, sh := range s.Shapes {
		if ClassOf(sh) == class {
			n++
		}
	}
	return n
}

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498

// CirclePath approximates a circle with four cubic Bézier curves,
// starting at the rightmost point.
func CirclePath(c vec.Vec2, r float64) *path.Data {
	k := r * kappa
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	return (&path.Data{}).
		MoveTo(pt(c.X+r, c.Y)).
		CubeTo(pt(c.X+r, c.Y-k), pt(c.X+k, c.Y-r), pt(c.X, c.Y-r)).
		CubeTo(pt(c.X-k, c.Y-r), pt(c.X-r, c.Y-k), pt(c.X-r, c.Y)).
		CubeTo(pt(c.X-r, c.Y+k), pt(c.X-k, c.Y+r), pt(c.X, c.Y+r)).
		CubeTo(pt(c.X+k, c.Y+r), pt(c.X+r, c.Y+k), pt(c.X+r, c.Y)).
		Close()
}

// RectPath returns the closed outline of an axis-aligned rectangle.
func RectPath(x, y, w, h float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()
}

// PolylinePath returns the open path through pts.
func PolylinePath(pts []vec.Vec2) *path.Data {
	d := &path.Data{}
	if len(pts) == 0 {
		return d
	}
	d = d.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		d = d.LineTo(pt)
	}
	return d
}
