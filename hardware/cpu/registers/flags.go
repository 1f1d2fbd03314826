// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package registers

import "strings"

// Flags is the i8080 flag register (F): Carry, Parity, Auxiliary Carry,
// Zero and Sign, plus the three fixed bits (1 at bit 1, 0 at bits 3 and 5)
// that make F round-trip through PUSH PSW / POP PSW byte-identical to real
// hardware.
type Flags struct {
	Sign     bool
	Zero     bool
	AuxCarry bool
	Parity   bool
	Carry    bool
}

// NewFlags is the preferred method of initialisation for Flags.
func NewFlags() Flags {
	var f Flags
	f.Load(0x02)
	return f
}

// Label returns the canonical name for the flags register.
func (f Flags) Label() string {
	return "F"
}

func (f Flags) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	flag(f.Sign, 'S')
	flag(f.Zero, 'Z')
	flag(f.AuxCarry, 'A')
	flag(f.Parity, 'P')
	flag(f.Carry, 'C')

	return s.String()
}

// Value packs Flags into the byte form PUSH PSW writes to the stack.
func (f Flags) Value() uint8 {
	var v uint8

	if f.Sign {
		v |= 0x80
	}
	if f.Zero {
		v |= 0x40
	}
	if f.AuxCarry {
		v |= 0x10
	}
	if f.Parity {
		v |= 0x04
	}
	if f.Carry {
		v |= 0x01
	}

	// bit 1 is hardwired high; bits 3 and 5 are hardwired low.
	v |= 0x02

	return v
}

// Load sets Flags from a byte, as POP PSW does.
func (f *Flags) Load(v uint8) {
	f.Sign = v&0x80 != 0
	f.Zero = v&0x40 != 0
	f.AuxCarry = v&0x10 != 0
	f.Parity = v&0x04 != 0
	f.Carry = v&0x01 != 0
}

// SetFromResult derives Sign, Zero and Parity from an 8 bit ALU result - the
// three flags every logical and arithmetic instruction updates the same way.
func (f *Flags) SetFromResult(result uint8) {
	f.Sign = result&0x80 != 0
	f.Zero = result == 0
	f.Parity = parityEven(result)
}

// parityEven reports whether v has an even number of set bits, the i8080's
// Parity flag convention.
func parityEven(v uint8) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}
