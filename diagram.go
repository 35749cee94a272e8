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
	"image/color"
	"math"
	"strings"

	"seehuhn.de/go/sigil/scene"
)

// Style collects the presentation constants of one diagram.
// Only the renderers read it; the trace and the layout are shared.
type Style struct {
	Layout Layout
	Size   float64 // side of the square canvas

	Wheel Radii // background circles
	Sigil Radii // sigil points

	CircleWidth  float64
	TickWidth    float64 // 0 disables the radial ticks
	DotRadius    float64 // centre dot
	PathWidth    float64
	MarkerRadius float64

	// Letter labels on the sigil points (preview only).
	OuterLabelSize float64
	InnerLabelSize float64
	LabelFamily    string

	// Curved name label between the wheel circles (export only).
	ArcRadius    float64
	ArcLabelSize float64
	ArcFamily    string

	Paper  color.NRGBA // 0 alpha means no background
	Ink    color.NRGBA
	Muted  color.NRGBA
	Accent color.NRGBA
}

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
	gray  = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
)

// PreviewStyle is the style of the interactive wheel diagram.
func PreviewStyle() Style {
	return Style{
		Layout:         DefaultLayout(),
		Size:           500,
		Wheel:          WheelRadii,
		Sigil:          PreviewSigilRadii,
		CircleWidth:    3,
		TickWidth:      2,
		DotRadius:      5,
		PathWidth:      2,
		MarkerRadius:   4,
		OuterLabelSize: 24,
		InnerLabelSize: 20,
		LabelFamily:    "Arial",
		Ink:            black,
		Muted:          gray,
		Accent:         red,
	}
}

// ExportStyle is the style of the exported sigil image.
func ExportStyle() Style {
	return Style{
		Layout:       DefaultLayout(),
		Size:         500,
		Wheel:        WheelRadii,
		Sigil:        ExportSigilRadii,
		CircleWidth:  3,
		DotRadius:    5,
		PathWidth:    3,
		MarkerRadius: 4,
		ArcRadius:    180,
		ArcLabelSize: 18,
		ArcFamily:    "serif",
		Paper:        white,
		Ink:          black,
		Muted:        gray,
		Accent:       red,
	}
}

// Shape classes used in the generated scenes.
const (
	ClassBackground = "background"
	ClassWheel      = "wheel"
	ClassCenter     = "center"
	ClassTick       = "tick"
	ClassOuterLabel = "label-outer"
	ClassInnerLabel = "label-inner"
	ClassArcLabel   = "label-arc"
	ClassPath       = "sigil"
	ClassMarker     = "marker"
)

// Preview draws the interactive wheel diagram for name.
// Every call recomputes the trace and the scene from scratch.
func Preview(name string, showLetters bool, st Style) *scene.Scene {
	s := scene.New(st.Size, st.Size)
	drawWheel(s, st)

	l := st.Layout
	for i := 0; i < l.Slots; i++ {
		if st.TickWidth > 0 {
			a, b := l.Tick(i, st.Wheel.Inner, st.Wheel.Outer)
			s.Add(scene.Line{A: a, B: b, Stroke: st.Ink, Width: st.TickWidth, Class: ClassTick})
		}
		if showLetters && i < len(Alphabet) {
			letter := Alphabet[i : i+1]
			s.Add(
				scene.Text{
					At:     l.Position(i, st.Sigil.Outer, Outer.offset()),
					Size:   st.OuterLabelSize,
					Bold:   true,
					Family: st.LabelFamily,
					Fill:   st.Ink,
					Text:   letter,
					Class:  ClassOuterLabel,
				},
				scene.Text{
					At:     l.Position(i, st.Sigil.Inner, Inner.offset()),
					Size:   st.InnerLabelSize,
					Bold:   true,
					Family: st.LabelFamily,
					Fill:   st.Muted,
					Text:   letter,
					Class:  ClassInnerLabel,
				})
		}
	}

	drawSigil(s, BuildPath(Trace(name), l, st.Sigil), st)
	return s
}

// ExportScene draws the standalone sigil image for name: the wheel,
// the name written once around the wheel, and the sigil.
// If name has no letters only the wheel is drawn.
func ExportScene(name string, st Style) *scene.Scene {
	s := scene.New(st.Size, st.Size)
	if st.Paper.A != 0 {
		s.Add(scene.Rect{W: st.Size, H: st.Size, Fill: st.Paper, Class: ClassBackground})
	}
	drawWheel(s, st)

	tr := Trace(name)
	if len(tr) == 0 {
		return s
	}

	// The label walks the upper-cased name, one character per slot,
	// starting at the top and proceeding clockwise.
	label := []rune(strings.ToUpper(name))
	step := 2 * math.Pi / float64(len(label))
	for i, c := range label {
		angle := -math.Pi/2 + float64(i)*step
		s.Add(scene.Text{
			At:     st.Layout.Arc(st.ArcRadius, angle),
			Angle:  angle + math.Pi/2,
			Size:   st.ArcLabelSize,
			Bold:   true,
			Family: st.ArcFamily,
			Fill:   st.Ink,
			Text:   string(c),
			Class:  ClassArcLabel,
		})
	}

	drawSigil(s, BuildPath(tr, st.Layout, st.Sigil), st)
	return s
}

// drawWheel adds the static background: both circles and the centre dot.
func drawWheel(s *scene.Scene, st Style) {
	c := st.Layout.Center
	s.Add(
		scene.Circle{Center: c, Radius: st.Wheel.Outer, Stroke: st.Ink, Width: st.CircleWidth, Class: ClassWheel},
		scene.Circle{Center: c, Radius: st.Wheel.Inner, Stroke: st.Ink, Width: st.CircleWidth, Class: ClassWheel},
		scene.Disc{Center: c, Radius: st.DotRadius, Fill: st.Ink, Class: ClassCenter},
	)
}

// drawSigil adds the polyline and one marker per traced point.
func drawSigil(s *scene.Scene, p SigilPath, st Style) {
	if len(p) == 0 {
		return
	}
	s.Add(scene.Polyline{Points: p, Stroke: st.Accent, Width: st.PathWidth, Class: ClassPath})
	for _, pt := range p {
		s.Add(scene.Disc{Center: pt, Radius: st.MarkerRadius, Fill: st.Accent, Class: ClassMarker})
	}
}
