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

// Package sigilpdf writes scenes as single-page PDF files.
//
// Shapes map onto PDF path painting operators.  Text is painted as glyph
// outlines, so the file needs no embedded font.  Colours are painted
// opaque; the alpha channel of the scene colours is ignored.
package sigilpdf

import (
	"fmt"
	imgcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sigil/glyph"
	"seehuhn.de/go/sigil/scene"
)

// Write creates the PDF file fileName containing s on a single page.
// One scene unit becomes one PDF point.
func Write(fileName string, s *scene.Scene) error {
	paper := &pdf.Rectangle{URx: s.Width, URy: s.Height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("create %s: %w", fileName, err)
	}

	// scenes use a top-left origin
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, s.Height})

	for _, sh := range s.Shapes {
		if err := drawShape(page, sh); err != nil {
			page.Close()
			return err
		}
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("write %s: %w", fileName, err)
	}
	return nil
}

func drawShape(page *document.Page, sh scene.Shape) error {
	switch sh := sh.(type) {
	case scene.Rect:
		page.SetFillColor(rgb(sh.Fill))
		page.Rectangle(sh.X, sh.Y, sh.W, sh.H)
		page.Fill()
	case scene.Disc:
		page.SetFillColor(rgb(sh.Fill))
		addPath(page, scene.CirclePath(sh.Center, sh.Radius))
		page.Fill()
	case scene.Circle:
		page.SetStrokeColor(rgb(sh.Stroke))
		page.SetLineWidth(sh.Width)
		addPath(page, scene.CirclePath(sh.Center, sh.Radius))
		page.Stroke()
	case scene.Line:
		page.SetStrokeColor(rgb(sh.Stroke))
		page.SetLineWidth(sh.Width)
		page.SetLineCap(graphics.LineCapButt)
		page.MoveTo(sh.A.X, sh.A.Y)
		page.LineTo(sh.B.X, sh.B.Y)
		page.Stroke()
	case scene.Polyline:
		if len(sh.Points) < 2 {
			return nil
		}
		page.SetStrokeColor(rgb(sh.Stroke))
		page.SetLineWidth(sh.Width)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		addPath(page, scene.PolylinePath(sh.Points))
		page.Stroke()
	case scene.Text:
		face, err := glyph.Regular()
		if sh.Bold {
			face, err = glyph.Bold()
		}
		if err != nil {
			return err
		}
		outline, err := face.Outline(sh.Text, sh.Size)
		if err != nil {
			return err
		}
		page.SetFillColor(rgb(sh.Fill))
		addPath(page, glyph.Transform(outline, glyph.Place(sh.At, sh.Angle)))
		page.Fill()
	default:
		return fmt.Errorf("sigilpdf: unsupported shape %T", sh)
	}
	return nil
}

// addPath appends p to the current path.  Quadratic segments are raised
// to cubics, since PDF has no quadratic curve operator.
func addPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func rgb(c imgcolor.NRGBA) color.Color {
	return color.DeviceRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}
