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

// Package sigil turns names into sigils on a 26-letter wheel.
//
// The letters A to Z occupy 26 equally spaced slots around a circle.
// [Trace] reads the letters of a name in order and binds every occurrence
// of a letter alternately to the outer and the inner ring of points.
// [BuildPath] resolves the bindings to canvas points through a [Layout],
// giving the polyline of the sigil.
//
// Two diagrams are built on top of this: [Preview] produces the
// interactive wheel with optional letter labels, and [ExportScene]
// produces the standalone image which the raster package encodes as PNG.
// Both return a scene.Scene and differ only in their [Style].
package sigil
