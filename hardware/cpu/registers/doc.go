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

// Package registers implements the register file of the i8080: the six
// general-purpose 8-bit registers (B, C, D, E, H, L), the accumulator (A),
// the 16-bit program counter and stack pointer, and the flags register.
//
// The 8-bit registers are a plain value type - Register - that exposes
// Load/Value/String alongside a handful of predicate methods (IsZero,
// IsNegative), the same shape as the 6502 register type this package
// started from; hardware/cpu assembles flag state with Flags.SetFromResult
// and does not call these predicates. The ALU itself
// (ADD/SUB/DAA/rotate flag semantics) belongs to hardware/cpu, not here,
// because the i8080's flag formulas don't factor cleanly into per-register
// methods the way the 6502's do.
//
//	a := registers.NewRegister(0, "A")
//	a.Load(10)
//	// flags are then derived in hardware/cpu from a.Value()
package registers
