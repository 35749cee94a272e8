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
	"fmt"
	"image"
	"image/color"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sigil"
	"seehuhn.de/go/sigil/scene"
	"seehuhn.de/go/sigil/testcases"
)

// wheelRing returns the band between the two wheel circles, scaled to a
// size×size canvas, for filling with the even-odd rule.
func wheelRing(size int) *path.Data {
	s := float64(size) / 500
	c := vec.Vec2{X: 250 * s, Y: 250 * s}
	ring := scene.CirclePath(c, sigil.WheelRadii.Outer*s)
	inner := scene.CirclePath(c, sigil.WheelRadii.Inner*s)
	ring.Cmds = append(ring.Cmds, inner.Cmds...)
	ring.Coords = append(ring.Coords, inner.Coords...)
	return ring
}

// addCircleToVector adds a circle to a vector.Rasterizer, counter-clockwise
// unless clockwise is set.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx+radius, cy)
	if clockwise {
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
	} else {
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
	}
	r.ClosePath()
}

func vectorRing(r *vector.Rasterizer, size int) {
	s := float32(size) / 500
	addCircleToVector(r, 250*s, 250*s, float32(sigil.WheelRadii.Outer)*s, false)
	addCircleToVector(r, 250*s, 250*s, float32(sigil.WheelRadii.Inner)*s, true)
}

// TestRingMatchesVector compares the wheel ring against the rasterizer in
// golang.org/x/image/vector.
func TestRingMatchesVector(t *testing.T) {
	const size = 100

	m := newCoverageMap(size, size)
	NewRasterizer(rect.Rect{URx: size, URy: size}).FillEvenOdd(wheelRing(size), m.emit)

	ref := image.NewAlpha(image.Rect(0, 0, size, size))
	vr := vector.NewRasterizer(size, size)
	vectorRing(vr, size)
	vr.Draw(ref, ref.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	var total float64
	for y := range size {
		for x := range size {
			want := float64(ref.AlphaAt(x, y).A) / 255
			d := math.Abs(float64(m.at(x, y)) - want)
			assert.Less(t, d, 0.3, "pixel (%d,%d)", x, y)
			total += d
		}
	}
	assert.Less(t, total/(size*size), 0.01)
}

func BenchmarkWheelRing(b *testing.B) {
	for _, size := range []int{50, 500, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			ring := wheelRing(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillEvenOdd(ring, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

func BenchmarkVectorWheelRing(b *testing.B) {
	for _, size := range []int{50, 500, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				vectorRing(r, size)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkExport(b *testing.B) {
	st := sigil.ExportStyle()
	c := NewCanvas(int(st.Size), int(st.Size))
	s := sigil.ExportScene("Solara Nightingale", st)

	b.ReportAllocs()
	for b.Loop() {
		c.Clear(st.Paper)
		if err := c.Draw(s); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExportAll measures steady-state performance by reusing a single
// Exporter across all fixtures.  Every call sees a new name and redraws.
func BenchmarkExportAll(b *testing.B) {
	var names []string
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			names = append(names, tc.Input)
		}
	}

	st := sigil.ExportStyle()
	e := NewExporter(st, int(st.Size))

	b.ReportAllocs()
	for b.Loop() {
		for _, name := range names {
			if _, err := e.Update(name); err != nil {
				b.Fatal(err)
			}
		}
	}
}
