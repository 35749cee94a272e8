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

var format = []TestCase{
	{
		Name:  "lower",
		Input: "solara",
		Trace: "S/outer O/outer L/outer A/outer R/outer A/inner",
	},
	{
		Name:  "punctuated",
		Input: "So-La-Ra!",
		Trace: "S/outer O/outer L/outer A/outer R/outer A/inner",
	},
	{
		Name:  "spaced",
		Input: "Sol Ara",
		Trace: "S/outer O/outer L/outer A/outer R/outer A/inner",
	},
	{
		Name:  "digits",
		Input: "R2D2",
		Trace: "R/outer D/outer",
	},
	{
		Name:  "accents",
		Input: "Zoë",
		Trace: "Z/outer O/outer",
	},
}
