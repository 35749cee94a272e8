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
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/sigil/scene"
)

func TestPreviewCounts(t *testing.T) {
	st := PreviewStyle()

	s := Preview("Solara", true, st)
	assert.Equal(t, 2, s.Count(ClassWheel))
	assert.Equal(t, 1, s.Count(ClassCenter))
	assert.Equal(t, 26, s.Count(ClassTick))
	assert.Equal(t, 26, s.Count(ClassOuterLabel))
	assert.Equal(t, 26, s.Count(ClassInnerLabel))
	assert.Equal(t, 1, s.Count(ClassPath))
	assert.Equal(t, 6, s.Count(ClassMarker))
	assert.Zero(t, s.Count(ClassArcLabel))

	s = Preview("Solara", false, st)
	assert.Zero(t, s.Count(ClassOuterLabel)+s.Count(ClassInnerLabel))
	assert.Equal(t, 26, s.Count(ClassTick))
}

func TestPreviewEmptyName(t *testing.T) {
	for _, name := range []string{"", "123!!"} {
		s := Preview(name, true, PreviewStyle())
		assert.Equal(t, 2, s.Count(ClassWheel))
		assert.Zero(t, s.Count(ClassPath))
		assert.Zero(t, s.Count(ClassMarker))
	}
}

// TestPreviewMarksEveryVisit checks that a letter used twice gets two
// markers, one per ring.
func TestPreviewMarksEveryVisit(t *testing.T) {
	st := PreviewStyle()
	s := Preview("AA", false, st)
	var markers []scene.Disc
	for _, sh := range s.Shapes {
		if d, ok := sh.(scene.Disc); ok && d.Class == ClassMarker {
			markers = append(markers, d)
		}
	}
	require.Len(t, markers, 2)
	assert.InDelta(t, st.Sigil.Outer, dist(markers[0].Center, st.Layout.Center), 1e-9)
	assert.InDelta(t, st.Sigil.Inner, dist(markers[1].Center, st.Layout.Center), 1e-9)
	assert.Equal(t, st.Accent, markers[0].Fill)
}

func TestPreviewLabels(t *testing.T) {
	st := PreviewStyle()
	s := Preview("", true, st)
	var outer, inner []scene.Text
	for _, sh := range s.Shapes {
		txt, ok := sh.(scene.Text)
		if !ok {
			continue
		}
		switch txt.Class {
		case ClassOuterLabel:
			outer = append(outer, txt)
		case ClassInnerLabel:
			inner = append(inner, txt)
		}
	}
	require.Len(t, outer, 26)
	require.Len(t, inner, 26)
	for i := range 26 {
		assert.Equal(t, Alphabet[i:i+1], outer[i].Text)
		p, _ := st.Layout.Point(Alphabet[i], Outer, st.Sigil)
		assert.Equal(t, p, outer[i].At)
		q, _ := st.Layout.Point(Alphabet[i], Inner, st.Sigil)
		assert.Equal(t, q, inner[i].At)
	}
	assert.Equal(t, 24.0, outer[0].Size)
	assert.Equal(t, 20.0, inner[0].Size)
	assert.Equal(t, st.Muted, inner[0].Fill)
}

func TestExportScene(t *testing.T) {
	st := ExportStyle()
	s := ExportScene("Sol Ara", st)

	require.NotEmpty(t, s.Shapes)
	bg, ok := s.Shapes[0].(scene.Rect)
	require.True(t, ok, "background comes first")
	assert.Equal(t, st.Paper, bg.Fill)

	var label strings.Builder
	var angles []float64
	for _, sh := range s.Shapes {
		if txt, ok := sh.(scene.Text); ok && txt.Class == ClassArcLabel {
			label.WriteString(txt.Text)
			angles = append(angles, txt.Angle)
			assert.InDelta(t, st.ArcRadius, dist(txt.At, st.Layout.Center), 1e-9)
		}
	}
	assert.Equal(t, "SOL ARA", label.String())
	require.Len(t, angles, 7)
	assert.InDelta(t, 0, angles[0], 1e-12, "first glyph upright at the top")
	for i := 1; i < len(angles); i++ {
		assert.InDelta(t, 2*math.Pi/7, angles[i]-angles[i-1], 1e-12)
	}

	assert.Equal(t, 6, s.Count(ClassMarker))
	for _, sh := range s.Shapes {
		if d, ok := sh.(scene.Disc); ok && d.Class == ClassMarker {
			r := dist(d.Center, st.Layout.Center)
			assert.True(t, math.Abs(r-st.Sigil.Outer) < 1e-9 || math.Abs(r-st.Sigil.Inner) < 1e-9, "marker radius %g", r)
		}
	}
	// the sigil is painted last, above the label
	_, last := s.Shapes[len(s.Shapes)-1].(scene.Disc)
	assert.True(t, last)
}

func TestExportSceneWithoutLetters(t *testing.T) {
	s := ExportScene("123!!", ExportStyle())
	assert.Equal(t, 1, s.Count(ClassBackground))
	assert.Equal(t, 2, s.Count(ClassWheel))
	assert.Equal(t, 1, s.Count(ClassCenter))
	assert.Zero(t, s.Count(ClassArcLabel))
	assert.Zero(t, s.Count(ClassPath))
	assert.Zero(t, s.Count(ClassMarker))
	assert.Len(t, s.Shapes, 4)
}

func TestScenesAreDeterministic(t *testing.T) {
	assert.Equal(t, Preview("Luna", true, PreviewStyle()), Preview("Luna", true, PreviewStyle()))
	assert.Equal(t, ExportScene("Luna", ExportStyle()), ExportScene("Luna", ExportStyle()))
}
