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

import "fmt"

// Pair views two 8 bit registers (hi, lo) as one 16 bit value, the role BC,
// DE and HL play in the i8080 instruction set (LXI, DAD, LDAX/STAX, PUSH/POP,
// INX/DCX, XCHG). It holds no state of its own - Value/Load read and write
// straight through to the underlying registers.
type Pair struct {
	Hi *Register
	Lo *Register
}

// NewPair returns a Pair viewing hi and lo as one 16 bit register.
func NewPair(hi, lo *Register) Pair {
	return Pair{Hi: hi, Lo: lo}
}

// Label returns the pair's two-letter name, eg. "HL".
func (p Pair) Label() string {
	return p.Hi.Label() + p.Lo.Label()
}

func (p Pair) String() string {
	return fmt.Sprintf("%04x", p.Value())
}

// Value returns the current 16 bit value of the pair, hi register in the
// upper byte.
func (p Pair) Value() uint16 {
	return uint16(p.Hi.Value())<<8 | uint16(p.Lo.Value())
}

// Load sets both underlying registers from a 16 bit value.
func (p Pair) Load(val uint16) {
	p.Hi.Load(uint8(val >> 8))
	p.Lo.Load(uint8(val))
}

// Add adds val to the pair's value and reports whether the result carried
// out of bit 15 (DAD's only flag effect).
func (p Pair) Add(val uint16) (carry bool) {
	sum := uint32(p.Value()) + uint32(val)
	p.Load(uint16(sum))
	return sum > 0xFFFF
}
