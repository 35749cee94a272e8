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

package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sigil/scene"
)

// coverageMap collects emitted coverage into a dense w×h grid.
type coverageMap struct {
	w, h int
	v    []float32
}

func newCoverageMap(w, h int) *coverageMap {
	return &coverageMap{w: w, h: h, v: make([]float32, w*h)}
}

func (m *coverageMap) emit(y, xMin int, coverage []float32) {
	copy(m.v[y*m.w+xMin:], coverage)
}

func (m *coverageMap) at(x, y int) float32 {
	return m.v[y*m.w+x]
}

func (m *coverageMap) sum() float64 {
	var s float64
	for _, c := range m.v {
		s += float64(c)
	}
	return s
}

// rasterizers returns one rasterizer per fill approach.
func rasterizers(w, h int) map[string]*Rasterizer {
	clip := rect.Rect{URx: float64(w), URy: float64(h)}
	small := NewRasterizer(clip)
	large := NewRasterizer(clip)
	large.smallPathThreshold = 0
	return map[string]*Rasterizer{"small": small, "large": large}
}

// TestTriangleCoverage checks exact coverage values for a thin triangle.
// The triangle (0,0)→(10,0)→(10,1) has the diagonal edge y = x/10, so
// pixel x has coverage (2x+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	for name, r := range rasterizers(10, 1) {
		t.Run(name, func(t *testing.T) {
			m := newCoverageMap(10, 1)
			r.FillNonZero(triangle, m.emit)

			const epsilon = 1e-6
			for x := range 10 {
				expected := float32(2*x+1) / 20
				if d := math.Abs(float64(m.at(x, 0) - expected)); d > epsilon {
					t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, m.at(x, 0))
				}
			}
		})
	}
}

// TestFillApproachesAgree renders the same ring with 2D buffers and with
// the active edge list.
func TestFillApproachesAgree(t *testing.T) {
	const size = 64
	c := vec.Vec2{X: 32, Y: 32}
	ring := scene.CirclePath(c, 28)
	inner := scene.CirclePath(c, 18)
	ring.Cmds = append(ring.Cmds, inner.Cmds...)
	ring.Coords = append(ring.Coords, inner.Coords...)

	maps := make(map[string]*coverageMap)
	for name, r := range rasterizers(size, size) {
		m := newCoverageMap(size, size)
		r.FillEvenOdd(ring, m.emit)
		maps[name] = m
	}

	small, large := maps["small"], maps["large"]
	for i := range small.v {
		require.InDelta(t, small.v[i], large.v[i], 1e-5, "pixel %d", i)
	}

	want := math.Pi * (28*28 - 18*18)
	assert.InEpsilon(t, want, small.sum(), 0.01)
	assert.InDelta(t, 0, small.at(32, 32), 1e-5, "hole of the ring")
	assert.InDelta(t, 1, small.at(32, 32-23), 1e-6, "inside the ring")
}

func TestStrokeButtLine(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 5}).
		LineTo(vec.Vec2{X: 8, Y: 5})

	for name, r := range rasterizers(10, 10) {
		t.Run(name, func(t *testing.T) {
			m := newCoverageMap(10, 10)
			r.Width = 2
			r.Stroke(line, m.emit)

			for y := range 10 {
				for x := range 10 {
					want := float32(0)
					if x >= 2 && x < 8 && (y == 4 || y == 5) {
						want = 1
					}
					assert.InDelta(t, want, m.at(x, y), 1e-6, "pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestStrokeRoundCapDot(t *testing.T) {
	pt := vec.Vec2{X: 10, Y: 10}
	dot := (&path.Data{}).MoveTo(pt).LineTo(pt)

	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	r.Width = 8
	r.Cap = graphics.LineCapRound
	m := newCoverageMap(20, 20)
	r.Stroke(dot, m.emit)

	// the arc is approximated by a polygon inside the circle
	assert.InEpsilon(t, math.Pi*16, m.sum(), 0.1)
	assert.InDelta(t, 1, m.at(10, 10), 1e-6)

	// butt caps leave nothing to draw
	r.Reset(r.Clip)
	r.Width = 8
	empty := newCoverageMap(20, 20)
	r.Stroke(dot, empty.emit)
	assert.Zero(t, empty.sum())
}

func TestStrokeClosedCircle(t *testing.T) {
	const size = 64
	c := vec.Vec2{X: 32, Y: 32}
	circle := scene.CirclePath(c, 20)

	for name, r := range rasterizers(size, size) {
		t.Run(name, func(t *testing.T) {
			m := newCoverageMap(size, size)
			r.Width = 4
			r.Stroke(circle, m.emit)

			assert.InEpsilon(t, 2*math.Pi*20*4, m.sum(), 0.02)
			assert.InDelta(t, 0, m.at(32, 32), 1e-5)
			assert.InDelta(t, 1, m.at(32, 12), 1e-6)
			assert.InDelta(t, 1, m.at(51, 32), 1e-6)
		})
	}
}

// TestStrokeRoundJoin strokes a right angle with round joins: the outer
// corner is a quarter disc and the inner corner is filled once.
func TestStrokeRoundJoin(t *testing.T) {
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 20}).
		LineTo(vec.Vec2{X: 20, Y: 20}).
		LineTo(vec.Vec2{X: 20, Y: 5})

	r := NewRasterizer(rect.Rect{URx: 30, URy: 30})
	r.Width = 4
	r.Join = graphics.LineJoinRound
	m := newCoverageMap(30, 30)
	r.Stroke(corner, m.emit)

	// two 15×4 bars overlapping in a 2×2 square, plus a quarter disc
	want := 15*4 + 15*4 - 2*2 + math.Pi*4/4
	assert.InEpsilon(t, want, m.sum(), 0.02)
	for _, c := range m.v {
		require.LessOrEqual(t, c, float32(1))
	}
}

// TestStrokeDoubleBack checks that a path reversing onto itself is still
// painted once, with a round tip.
func TestStrokeDoubleBack(t *testing.T) {
	back := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 10}).
		LineTo(vec.Vec2{X: 15, Y: 10}).
		LineTo(vec.Vec2{X: 5, Y: 10})

	r := NewRasterizer(rect.Rect{URx: 30, URy: 20})
	r.Width = 4
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	m := newCoverageMap(30, 20)
	r.Stroke(back, m.emit)

	want := 10*4 + math.Pi*4
	assert.InEpsilon(t, want, m.sum(), 0.05)
	assert.InDelta(t, 1, m.at(15, 10), 1e-6, "round tip")
}

func TestClipLimitsOutput(t *testing.T) {
	square := scene.RectPath(-5, -5, 20, 20)
	r := NewRasterizer(rect.Rect{URx: 4, URy: 3})
	var rows []int
	r.FillNonZero(square, func(y, xMin int, coverage []float32) {
		rows = append(rows, y)
		assert.Equal(t, 0, xMin)
		assert.Len(t, coverage, 4)
	})
	assert.Equal(t, []int{0, 1, 2}, rows)
}
