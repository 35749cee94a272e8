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

import "strings"

// Binding ties one letter occurrence of a name to a ring of the wheel.
type Binding struct {
	Letter byte // upper-case, 'A'..'Z'
	Ring   Ring
}

func (b Binding) String() string {
	return string(b.Letter) + "/" + b.Ring.String()
}

// NameTrace is the ordered list of bindings for a name.
// Order defines the path; repeated letters are expected and alternate
// between the rings.
type NameTrace []Binding

// FilterLetters drops everything except the ASCII letters of name and
// converts the remainder to upper case.
func FilterLetters(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}
	return b.String()
}

// Trace computes the ring binding of every letter of name.
//
// The k-th occurrence (counting from 0) of a letter binds to [Outer] if k
// is even and to [Inner] if k is odd, independently of all other letters.
// A name without letters gives an empty trace.
func Trace(name string) NameTrace {
	letters := FilterLetters(name)
	if letters == "" {
		return nil
	}

	var seen [len(Alphabet)]int
	tr := make(NameTrace, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		idx, ok := LetterIndex(c)
		if !ok {
			continue
		}
		ring := Outer
		if seen[idx]%2 == 1 {
			ring = Inner
		}
		tr = append(tr, Binding{Letter: c, Ring: ring})
		seen[idx]++
	}
	return tr
}

// Letters returns the letters of the trace, in order.
func (tr NameTrace) Letters() string {
	buf := make([]byte, len(tr))
	for i, b := range tr {
		buf[i] = b.Letter
	}
	return string(buf)
}
