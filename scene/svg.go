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

package scene

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"
)

// WriteSVG writes the scene as a standalone SVG document.
func WriteSVG(w io.Writer, s *Scene) error {
	bw := bufio.NewWriter(w)
	width, height := num(s.Width), num(s.Height)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		width, height, width, height)
	for _, sh := range s.Shapes {
		writeShape(bw, sh)
	}
	bw.WriteString("</svg>\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// SVG returns the scene as an SVG document.
func SVG(s *Scene) string {
	var b strings.Builder
	_ = WriteSVG(&b, s) // strings.Builder does not fail
	return b.String()
}

func writeShape(w *bufio.Writer, sh Shape) {
	switch sh := sh.(type) {
	case Rect:
		fmt.Fprintf(w, `<rect%s x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			class(sh.Class), num(sh.X), num(sh.Y), num(sh.W), num(sh.H), paint(sh.Fill))
	case Circle:
		fmt.Fprintf(w, `<circle%s cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
			class(sh.Class), num(sh.Center.X), num(sh.Center.Y), num(sh.Radius), paint(sh.Stroke), num(sh.Width))
	case Disc:
		fmt.Fprintf(w, `<circle%s cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			class(sh.Class), num(sh.Center.X), num(sh.Center.Y), num(sh.Radius), paint(sh.Fill))
	case Line:
		fmt.Fprintf(w, `<line%s x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			class(sh.Class), num(sh.A.X), num(sh.A.Y), num(sh.B.X), num(sh.B.Y), paint(sh.Stroke), num(sh.Width))
	case Polyline:
		if len(sh.Points) == 0 {
			return
		}
		var d strings.Builder
		for i, pt := range sh.Points {
			if i == 0 {
				d.WriteString("M ")
			} else {
				d.WriteString(" L ")
			}
			d.WriteString(num(pt.X))
			d.WriteByte(' ')
			d.WriteString(num(pt.Y))
		}
		fmt.Fprintf(w, `<path%s d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			class(sh.Class), d.String(), paint(sh.Stroke), num(sh.Width))
	case Text:
		weight := "normal"
		if sh.Bold {
			weight = "bold"
		}
		var rotate string
		if sh.Angle != 0 {
			rotate = fmt.Sprintf(` transform="rotate(%s %s %s)"`,
				num(sh.Angle*180/math.Pi), num(sh.At.X), num(sh.At.Y))
		}
		fmt.Fprintf(w, `<text%s x="%s" y="%s"%s text-anchor="middle" dominant-baseline="middle" font-size="%s" font-weight="%s" font-family="%s" fill="%s">`,
			class(sh.Class), num(sh.At.X), num(sh.At.Y), rotate, num(sh.Size), weight, attr(sh.Family), paint(sh.Fill))
		xml.EscapeText(w, []byte(sh.Text))
		w.WriteString("</text>\n")
	}
}

func class(c string) string {
	if c == "" {
		return ""
	}
	return ` class="` + attr(c) + `"`
}

func attr(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

// num formats a coordinate with at most three decimals.
func num(x float64) string {
	x = math.Round(x*1000) / 1000
	if x == 0 {
		x = 0 // normalise -0
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// paint formats an opaque colour as #rrggbb and a translucent one as
// a CSS rgba() value.
func paint(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, num(float64(c.A)/255))
}
