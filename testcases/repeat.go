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

var repeat = []TestCase{
	{
		Name:  "double",
		Input: "AA",
		Trace: "A/outer A/inner",
	},
	{
		Name:  "triple",
		Input: "AAA",
		Trace: "A/outer A/inner A/outer",
	},
	{
		Name:  "interleaved",
		Input: "ABAB",
		Trace: "A/outer B/outer A/inner B/inner",
	},
	{
		Name:  "mississippi",
		Input: "Mississippi",
		Trace: "M/outer I/outer S/outer S/inner I/inner S/outer S/inner I/outer P/outer P/inner I/inner",
	},
	{
		Name:        "anna",
		Input:       "Anna",
		ShowLetters: true,
		Trace:       "A/outer N/outer N/inner A/inner",
	},
}
