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

package testcases

import "strings"

// TestCase is a named sigil fixture.
type TestCase struct {
	Name        string // lowercase a-z and _ only
	Input       string // the name as typed by the user
	ShowLetters bool   // letter labels in the preview

	// Trace is the expected trace, one "LETTER/ring" binding per
	// letter, separated by spaces.  Empty for names without letters.
	Trace string
}

// Bindings splits Trace into its bindings.
func (tc TestCase) Bindings() []string {
	return strings.Fields(tc.Trace)
}
