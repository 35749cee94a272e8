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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sigil/scene"
)

// SigilPath holds one canvas point per binding of a [NameTrace].
type SigilPath []vec.Vec2

// BuildPath resolves every binding of tr to a point on the wheel.
// Bindings whose letter is unknown to the layout are skipped.
// The result keeps the order of tr and may contain the same point
// more than once.
func BuildPath(tr NameTrace, l Layout, radii Radii) SigilPath {
	if len(tr) == 0 {
		return nil
	}
	pts := make(SigilPath, 0, len(tr))
	for _, b := range tr {
		pt, ok := l.Point(b.Letter, b.Ring, radii)
		if !ok {
			continue
		}
		pts = append(pts, pt)
	}
	return pts
}

// Data returns the open polyline through the points, in order.
// An empty path gives empty data.
func (p SigilPath) Data() *path.Data {
	return scene.PolylinePath(p)
}
