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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened piece of a stroked path, in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A to B
	N    vec.Vec2 // unit normal, T turned 90° counter-clockwise
}

// Stroke paints the outline of p using Width, Cap, Join and MiterLimit.
// The coverage slice passed to emit is only valid during the call.
//
// The outline of every subpath is built as one or two polygons, and all
// polygons are filled together with the nonzero rule.  Overlapping parts
// of a self-intersecting path are therefore painted once.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.flattenPath(p)
	if len(r.segsOffsets) == 0 && len(r.degeneratePoints) == 0 {
		return
	}

	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	// A subpath without length only shows with round caps, as a dot.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.degeneratePoints {
			r.beginPolygon()
			r.addArc(pt, r.Width/2, vec.Vec2{X: 1}, 2*math.Pi, true)
		}
	}

	for i := range r.segsOffsets {
		end := len(r.segs)
		if i+1 < len(r.segsOffsets) {
			end = r.segsOffsets[i+1]
		}
		segs := r.segs[r.segsOffsets[i]:end]
		if r.subpathClosed[i] {
			r.strokeClosed(segs)
		} else {
			r.strokeOpen(segs)
		}
	}

	r.beginEdges()
	for i, start := range r.strokeOffsets {
		end := len(r.stroke)
		if i+1 < len(r.strokeOffsets) {
			end = r.strokeOffsets[i+1]
		}
		poly := r.stroke[start:end]
		if len(poly) < 3 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.scan(fillNonZero, emit)
}

// beginPolygon starts a new outline polygon in r.stroke.
func (r *Rasterizer) beginPolygon() {
	r.strokeOffsets = append(r.strokeOffsets, len(r.stroke))
}

// flattenPath splits p into straight segments, grouped by subpath:
//   - r.segs holds the segments of all subpaths
//   - r.segsOffsets holds the start of each subpath in r.segs
//   - r.subpathClosed records which subpaths end in ClosePath
//   - r.degeneratePoints holds subpaths which have drawing commands
//     but no length
func (r *Rasterizer) flattenPath(p *path.Data) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.degeneratePoints = r.degeneratePoints[:0]

	var current, start vec.Vec2
	first := 0    // index of the first segment of the current subpath
	open := false // inside a subpath
	drawn := false

	finish := func(closed bool) {
		switch {
		case len(r.segs) > first:
			r.segsOffsets = append(r.segsOffsets, first)
			r.subpathClosed = append(r.subpathClosed, closed)
		case drawn || closed:
			r.degeneratePoints = append(r.degeneratePoints, start)
		}
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			current = p.Coords[k]
			start = current
			first = len(r.segs)
			open = true
			drawn = false
			k++

		case path.CmdLineTo:
			if open {
				drawn = true
				r.addStrokeSegment(current, p.Coords[k])
				current = p.Coords[k]
			}
			k++

		case path.CmdQuadTo:
			if open {
				drawn = true
				r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addStrokeSegment)
				current = p.Coords[k+1]
			}
			k += 2

		case path.CmdCubeTo:
			if open {
				drawn = true
				r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addStrokeSegment)
				current = p.Coords[k+2]
			}
			k += 3

		case path.CmdClose:
			if !open {
				continue
			}
			if current != start {
				r.addStrokeSegment(current, start)
			}
			finish(true)
			current = start
			first = len(r.segs)
			open = false
			drawn = false
		}
	}
	if open {
		finish(false)
	}
}

// addStrokeSegment appends the segment from a to b, unless it is too
// short to have a direction.
func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// strokeOpen outlines an open subpath as a single polygon: along the +N
// side forwards, around the end cap, along the -N side backwards and
// around the start cap.
func (r *Rasterizer) strokeOpen(segs []strokeSegment) {
	d := r.Width / 2
	first, last := &segs[0], &segs[len(segs)-1]

	r.beginPolygon()
	r.addCap(first.A, first.T.Mul(-1), d)

	r.stroke = append(r.stroke, first.A.Add(first.N.Mul(d)))
	for i := range len(segs) - 1 {
		r.addCorner(segs[i].B, &segs[i], &segs[i+1], d, 1)
	}
	r.stroke = append(r.stroke, last.B.Add(last.N.Mul(d)))

	r.addCap(last.B, last.T, d)

	r.stroke = append(r.stroke, last.B.Sub(last.N.Mul(d)))
	for i := len(segs) - 1; i > 0; i-- {
		r.addCorner(segs[i].A, &segs[i-1], &segs[i], d, -1)
	}
	r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)))
}

// strokeClosed outlines a closed subpath as two polygons, one per side.
// The +N side is traced forwards and the -N side backwards, so the band
// between them has winding number ±1 while the inside cancels to 0.
func (r *Rasterizer) strokeClosed(segs []strokeSegment) {
	d := r.Width / 2
	n := len(segs)

	r.beginPolygon()
	for i := range n {
		r.addCorner(segs[i].B, &segs[i], &segs[(i+1)%n], d, 1)
	}
	if r.dropSmallPolygon() {
		return
	}

	r.beginPolygon()
	for i := n - 1; i >= 0; i-- {
		r.addCorner(segs[i].A, &segs[(i+n-1)%n], &segs[i], d, -1)
	}
	r.dropSmallPolygon()
}

// dropSmallPolygon discards the current polygon if it has fewer than
// three vertices.
func (r *Rasterizer) dropSmallPolygon() bool {
	last := len(r.strokeOffsets) - 1
	if len(r.stroke)-r.strokeOffsets[last] >= 3 {
		return false
	}
	r.stroke = r.stroke[:r.strokeOffsets[last]]
	r.strokeOffsets = r.strokeOffsets[:last]
	return true
}

// addCorner appends the outline vertices around the point P where segment
// in ends and segment out starts.  The side s is +1 for the +N side, walked
// in path direction, and -1 for the -N side, walked backwards.
func (r *Rasterizer) addCorner(P vec.Vec2, in, out *strokeSegment, d, s float64) {
	cos := in.T.Dot(out.T)
	sin := in.T.X*out.T.Y - in.T.Y*out.T.X

	// offset points before and after the corner, in walking order
	before := P.Add(in.N.Mul(s * d))
	after := P.Add(out.N.Mul(s * d))
	if s < 0 {
		before, after = after, before
	}

	switch {
	case cos < cuspCosineThreshold:
		// The path doubles back: go around the tip with a cap.
		r.stroke = append(r.stroke, before)
		r.addCap(P, in.T, d)
		r.stroke = append(r.stroke, after)

	case math.Abs(sin) < collinearityThreshold:
		r.stroke = append(r.stroke, before, after)

	case (sin > 0) == (s > 0):
		// inner side of the turn
		if q, ok := innerIntersection(P, in.T, out.T, d, s); ok {
			r.stroke = append(r.stroke, q)
		} else {
			r.stroke = append(r.stroke, before, after)
		}

	default:
		r.stroke = append(r.stroke, before)
		r.addJoin(P, in, out, d, s, math.Atan2(sin, cos))
		r.stroke = append(r.stroke, after)
	}
}

// addCap appends the cap at P.  T points away from the stroke and the
// vertices run from the +N(T) side to the -N(T) side.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.stroke = append(r.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// innerIntersection returns the point where the two offset lines meet on
// the inner side of a corner.
func innerIntersection(P, T1, T2 vec.Vec2, d, s float64) (vec.Vec2, bool) {
	cos := T1.Dot(T2)
	if cos > 1-1e-9 {
		return vec.Vec2{}, false
	}
	half := math.Sqrt((1 + cos) / 2) // cos(θ/2)
	if half < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := vec.Vec2{X: -T1.Y - T2.Y, Y: T1.X + T2.X}.Mul(s)
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * half))), true
}

// addJoin appends the join vertices on the outer side of a corner.
// theta is the signed turning angle from in.T to out.T.
func (r *Rasterizer) addJoin(P vec.Vec2, in, out *strokeSegment, d, s, theta float64) {
	switch r.Join {
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/cos(θ/2).
		half := math.Cos(theta / 2)
		const eps = 1e-10
		if half <= 0 || 1/half > r.MiterLimit+eps {
			return // bevel
		}
		bis := in.N.Add(out.N).Mul(s)
		l := bis.Length()
		if l > zeroLengthThreshold {
			r.stroke = append(r.stroke, P.Add(bis.Mul(d/(l*half))))
		}

	case graphics.LineJoinRound:
		if s > 0 {
			r.addArc(P, d, in.N, theta, false)
		} else {
			r.addArc(P, d, out.N.Mul(-1), -theta, false)
		}
	}
}

// addArc appends vertices along the arc of the given radius around
// center, starting in direction dir and turning by sweep radians
// (positive is counter-clockwise in user space).  The number of vertices
// keeps the device-space deviation below Flatness.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	n := 1
	if devRadius >= r.Flatness {
		// a chord over angle φ deviates by radius·(1 - cos(φ/2))
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		v := vec.Vec2{
			X: dir.X*cos - dir.Y*sin,
			Y: dir.X*sin + dir.Y*cos,
		}
		r.stroke = append(r.stroke, center.Add(v.Mul(radius)))
	}
}
