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

package glyph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func bounds(p *path.Data) (lo, hi vec.Vec2) {
	lo = vec.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	hi = vec.Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, c := range p.Coords {
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return lo, hi
}

func TestOutlineIsCentred(t *testing.T) {
	face, err := Bold()
	require.NoError(t, err)

	p, err := face.Outline("H", 100)
	require.NoError(t, err)
	require.NotEmpty(t, p.Cmds)

	lo, hi := bounds(p)
	// H is symmetric and as tall as the cap height
	assert.InDelta(t, 0, (lo.X+hi.X)/2, 5)
	assert.InDelta(t, 0, (lo.Y+hi.Y)/2, 5)
	assert.Greater(t, hi.Y-lo.Y, 50.0)
	assert.Less(t, hi.Y-lo.Y, 100.0)
}

func TestOutlineScales(t *testing.T) {
	face, err := Regular()
	require.NoError(t, err)

	small, err := face.Outline("A", 10)
	require.NoError(t, err)
	large, err := face.Outline("A", 20)
	require.NoError(t, err)

	require.Equal(t, small.Cmds, large.Cmds)
	for i := range small.Coords {
		assert.InDelta(t, 2*small.Coords[i].X, large.Coords[i].X, 1e-9)
		assert.InDelta(t, 2*small.Coords[i].Y, large.Coords[i].Y, 1e-9)
	}
}

func TestOutlineOfSpaceIsEmpty(t *testing.T) {
	face, err := Bold()
	require.NoError(t, err)
	p, err := face.Outline(" ", 18)
	require.NoError(t, err)
	assert.Empty(t, p.Cmds)
}

func TestFacesAreShared(t *testing.T) {
	a, err := Bold()
	require.NoError(t, err)
	b, err := Bold()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("not a font"))
	assert.Error(t, err)
}

func TestPlace(t *testing.T) {
	m := Place(vec.Vec2{X: 10, Y: 20}, math.Pi/2)
	p := Transform((&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 0}), m)
	// a quarter turn clockwise on screen takes +x to +y
	assert.InDelta(t, 10, p.Coords[0].X, 1e-12)
	assert.InDelta(t, 21, p.Coords[0].Y, 1e-12)
}
