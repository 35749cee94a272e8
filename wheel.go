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

package sigil

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Alphabet lists the letters of the wheel in slot order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Ring selects which of the two concentric point rings a letter
// occurrence binds to.
type Ring int

const (
	// Outer is used for the 1st, 3rd, 5th, ... occurrence of a letter.
	Outer Ring = iota
	// Inner is used for the 2nd, 4th, 6th, ... occurrence of a letter.
	Inner
)

func (r Ring) String() string {
	switch r {
	case Outer:
		return "outer"
	case Inner:
		return "inner"
	default:
		return "ring(?)"
	}
}

// offset returns the angular offset of the ring, in slots.
// The inner ring is rotated by half a slot so that inner and outer
// points of the same letter never share a radial line.
func (r Ring) offset() float64 {
	if r == Inner {
		return 0.5
	}
	return 0
}

// LetterIndex returns the slot of an upper-case letter.
// The second return value is false for anything outside [Alphabet].
func LetterIndex(c byte) (int, bool) {
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	return int(c - 'A'), true
}

// Radii is a pair of radii, one per ring.
type Radii struct {
	Outer float64
	Inner float64
}

// Of returns the radius used for ring r.
func (p Radii) Of(r Ring) float64 {
	if r == Inner {
		return p.Inner
	}
	return p.Outer
}

// Presentation radii.  These are fixed constants of the two diagrams,
// not derived values.
var (
	// PreviewSigilRadii places sigil points and letter labels in the
	// interactive diagram.
	PreviewSigilRadii = Radii{Outer: 180, Inner: 110}

	// WheelRadii are the two background circles of both diagrams.
	WheelRadii = Radii{Outer: 220, Inner: 140}

	// ExportSigilRadii places sigil points in the exported image,
	// nested inside the inner background circle.
	ExportSigilRadii = Radii{Outer: 100, Inner: 70}
)

// Layout maps wheel slots to canvas coordinates.
// The zero value is not useful; start from [DefaultLayout].
type Layout struct {
	// Center is the wheel centre in canvas coordinates (y grows downwards).
	Center vec.Vec2

	// Slots is the number of equally spaced letter slots.
	Slots int
}

// DefaultLayout is the 26-slot wheel centred on a 500×500 canvas.
func DefaultLayout() Layout {
	return Layout{
		Center: vec.Vec2{X: 250, Y: 250},
		Slots:  len(Alphabet),
	}
}

// Position returns the centre of slot i at the given radius.
// Offset is measured in slots; 0.5 rotates by half a slot.
// Slot 0 is centred half a slot clockwise of the top of the wheel.
func (l Layout) Position(i int, radius, offset float64) vec.Vec2 {
	deg := (float64(i)+0.5+offset)*360/float64(l.Slots) - 90
	return l.polar(radius, deg)
}

// Point returns the position of a letter occurrence bound to ring.
// The second return value is false if letter is not part of the wheel.
func (l Layout) Point(letter byte, ring Ring, radii Radii) (vec.Vec2, bool) {
	i, ok := LetterIndex(letter)
	if !ok || i >= l.Slots {
		return vec.Vec2{}, false
	}
	return l.Position(i, radii.Of(ring), ring.offset()), true
}

// Tick returns the end points of the radial tick on the boundary in front
// of slot i, running from radius from to radius to.
func (l Layout) Tick(i int, from, to float64) (a, b vec.Vec2) {
	deg := float64(i)*360/float64(l.Slots) - 90
	return l.polar(from, deg), l.polar(to, deg)
}

// Arc returns the point at angle rad on a circle around the centre.
// Angle 0 points right, angles grow clockwise on screen.
func (l Layout) Arc(radius, rad float64) vec.Vec2 {
	return vec.Vec2{
		X: l.Center.X + radius*math.Cos(rad),
		Y: l.Center.Y + radius*math.Sin(rad),
	}
}

func (l Layout) polar(radius, deg float64) vec.Vec2 {
	return l.Arc(radius, deg*math.Pi/180)
}
