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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sigil/glyph"
	"seehuhn.de/go/sigil/scene"
)

// Canvas paints scenes into an RGBA image.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	Image *image.RGBA

	r *Rasterizer
}

// NewCanvas allocates a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{Image: img, r: NewRasterizer(clip)}
}

// Clear sets every pixel to col.
func (c *Canvas) Clear(col color.NRGBA) {
	pm := color.RGBAModel.Convert(col).(color.RGBA)
	pix := c.Image.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = pm.R
		pix[i+1] = pm.G
		pix[i+2] = pm.B
		pix[i+3] = pm.A
	}
}

// Draw paints all shapes of s in order.  The scene is scaled to cover the
// full image.
func (c *Canvas) Draw(s *scene.Scene) error {
	b := c.Image.Bounds()
	ctm := matrix.Identity
	if s.Width > 0 && s.Height > 0 {
		ctm = matrix.Scale(float64(b.Dx())/s.Width, float64(b.Dy())/s.Height)
	}

	for _, sh := range s.Shapes {
		c.reset(ctm)
		switch sh := sh.(type) {
		case scene.Rect:
			c.fill(scene.RectPath(sh.X, sh.Y, sh.W, sh.H), sh.Fill)
		case scene.Disc:
			c.fill(scene.CirclePath(sh.Center, sh.Radius), sh.Fill)
		case scene.Circle:
			c.r.Width = sh.Width
			c.stroke(scene.CirclePath(sh.Center, sh.Radius), sh.Stroke)
		case scene.Line:
			c.r.Width = sh.Width
			c.stroke((&path.Data{}).MoveTo(sh.A).LineTo(sh.B), sh.Stroke)
		case scene.Polyline:
			c.r.Width = sh.Width
			c.r.Cap = graphics.LineCapRound
			c.r.Join = graphics.LineJoinRound
			c.stroke(scene.PolylinePath(sh.Points), sh.Stroke)
		case scene.Text:
			if err := c.text(sh); err != nil {
				return err
			}
		default:
			return fmt.Errorf("raster: unsupported shape %T", sh)
		}
	}
	return nil
}

// Fill paints the inside of p, given in pixel coordinates, with col.
func (c *Canvas) Fill(p *path.Data, col color.NRGBA) {
	c.reset(matrix.Identity)
	c.fill(p, col)
}

// Stroke paints the outline of p, given in pixel coordinates, with col.
func (c *Canvas) Stroke(p *path.Data, width float64, lineCap graphics.LineCapStyle, join graphics.LineJoinStyle, col color.NRGBA) {
	c.reset(matrix.Identity)
	c.r.Width = width
	c.r.Cap = lineCap
	c.r.Join = join
	c.stroke(p, col)
}

func (c *Canvas) reset(ctm matrix.Matrix) {
	c.r.Reset(c.r.Clip)
	c.r.CTM = ctm
}

func (c *Canvas) fill(p *path.Data, col color.NRGBA) {
	c.r.FillNonZero(p, c.painter(col))
}

func (c *Canvas) stroke(p *path.Data, col color.NRGBA) {
	c.r.Stroke(p, c.painter(col))
}

// text fills the glyph outlines of t.  The text is laid out with the
// Go fonts, whatever family the shape asks for.
func (c *Canvas) text(t scene.Text) error {
	face, err := faceFor(t.Bold)
	if err != nil {
		return err
	}
	outline, err := face.Outline(t.Text, t.Size)
	if err != nil {
		return err
	}
	c.fill(glyph.Transform(outline, glyph.Place(t.At, t.Angle)), t.Fill)
	return nil
}

func faceFor(bold bool) (*glyph.Face, error) {
	if bold {
		return glyph.Bold()
	}
	return glyph.Regular()
}

// painter returns an emit function which composites col, weighted by
// the coverage, over the image using source-over blending.
func (c *Canvas) painter(col color.NRGBA) func(y, xMin int, coverage []float32) {
	img := c.Image
	sa := float32(col.A) / 255
	sr := float32(col.R) / 255 * sa
	sg := float32(col.G) / 255 * sa
	sb := float32(col.B) / 255 * sa

	return func(y, xMin int, coverage []float32) {
		off := img.PixOffset(xMin, y)
		for i, cv := range coverage {
			if cv <= 0 {
				continue
			}
			px := img.Pix[off+4*i : off+4*i+4 : off+4*i+4]
			a := sa * cv
			k := 1 - a
			px[0] = to8(sr*cv + float32(px[0])/255*k)
			px[1] = to8(sg*cv + float32(px[1])/255*k)
			px[2] = to8(sb*cv + float32(px[2])/255*k)
			px[3] = to8(a + float32(px[3])/255*k)
		}
	}
}

func to8(v float32) uint8 {
	v = v*255 + 0.5
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}
