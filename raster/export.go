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
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"seehuhn.de/go/sigil"
)

// Render draws the exported sigil image for name and encodes it as PNG.
// The image is st.Size pixels square.
func Render(name string, st sigil.Style) ([]byte, error) {
	return NewExporter(st, int(st.Size)).Update(name)
}

// Exporter keeps the exported image of the most recent name.
// It owns one canvas and redraws it only when the name changes.
// An Exporter is safe for concurrent use.
type Exporter struct {
	style sigil.Style

	mu     sync.Mutex
	canvas *Canvas
	valid  bool
	name   string
	data   []byte
}

// NewExporter returns an Exporter which renders st onto a size×size
// canvas.
func NewExporter(st sigil.Style, size int) *Exporter {
	return &Exporter{
		style:  st,
		canvas: NewCanvas(size, size),
	}
}

// Update returns the PNG image for name.  If name equals the name of the
// previous successful call, the cached image is returned unchanged.
// Otherwise the canvas is cleared and redrawn.
//
// The returned slice is shared between callers and must not be modified.
func (e *Exporter) Update(name string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.valid && name == e.name {
		return e.data, nil
	}

	e.canvas.Clear(color.NRGBA{})
	if err := e.canvas.Draw(sigil.ExportScene(name, e.style)); err != nil {
		e.valid = false
		return nil, err
	}
	data, err := EncodePNG(e.canvas.Image)
	if err != nil {
		e.valid = false
		return nil, err
	}

	e.valid = true
	e.name = name
	e.data = data
	return data, nil
}

// Image returns the canvas of the most recent update.
// The caller must not use the image concurrently with Update.
func (e *Exporter) Image() *image.RGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.canvas.Image
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
