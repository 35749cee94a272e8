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

// Command export writes all sigil fixtures, with their traces and the
// point sequences of both diagrams, to testdata/sigils.json.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/sigil"
	"seehuhn.de/go/sigil/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/sigils.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name        string      `json:"name"`
	Input       string      `json:"input"`
	ShowLetters bool        `json:"show_letters,omitempty"`
	Letters     string      `json:"letters"`
	Trace       []string    `json:"trace"`
	Preview     [][]float64 `json:"preview"`
	Export      [][]float64 `json:"export"`
	FileName    string      `json:"file_name"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	tr := sigil.Trace(tc.Input)
	l := sigil.DefaultLayout()

	jtc := jsonTestCase{
		Name:        category + "_" + tc.Name,
		Input:       tc.Input,
		ShowLetters: tc.ShowLetters,
		Letters:     tr.Letters(),
		Trace:       []string{},
		Preview:     points(sigil.BuildPath(tr, l, sigil.PreviewSigilRadii)),
		Export:      points(sigil.BuildPath(tr, l, sigil.ExportSigilRadii)),
		FileName:    sigil.FileName(tc.Input, "_Sigil", ".png"),
	}
	for _, b := range tr {
		jtc.Trace = append(jtc.Trace, b.String())
	}
	return jtc
}

func points(p sigil.SigilPath) [][]float64 {
	out := make([][]float64, len(p))
	for i, pt := range p {
		out[i] = []float64{pt.X, pt.Y}
	}
	return out
}
