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

// StackPointer is the i8080's 16 bit SP register. Unlike the 6502 it is not
// confined to a fixed page - PUSH/POP/CALL/RET address it directly.
type StackPointer struct {
	value uint16
}

// NewStackPointer creates a new stack pointer register.
func NewStackPointer(val uint16) StackPointer {
	return StackPointer{value: val}
}

// Label returns the stack pointer's name.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%04x", sp.value)
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint16 {
	return sp.value
}

// Address returns the stack pointer's value.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load a value into SP.
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}

// Decrement decrements SP by one, wrapping at 16 bits. PUSH decrements
// before each byte write.
func (sp *StackPointer) Decrement() {
	sp.value--
}

// Increment increments SP by one, wrapping at 16 bits. POP increments after
// each byte read.
func (sp *StackPointer) Increment() {
	sp.value++
}
