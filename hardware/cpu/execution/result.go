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

package execution

import (
	"github.com/parallelno/vector06c-core/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU,
// including the address it was fetched from, a reference to the instruction
// definition, and the machine cycle accounting its timing model requires.
//
// Result is updated every machine cycle during execution. Final indicates
// whether the instruction has reached its last machine cycle; a Result with
// Final false is still usable but incomplete, and a Defn of nil means the
// opcode hasn't been fetched yet.
type Result struct {
	// Defn is a reference to the instruction definition.
	Defn *instructions.Definition

	// ByteCount is the number of bytes read during instruction decode so
	// far. When less than Defn.Bytes the instruction hasn't been fully
	// fetched.
	ByteCount int

	// Address is the address at which the instruction began (the PC value
	// at fetch, before any operand bytes were read).
	Address uint16

	// InstructionData is the instruction's operand: the immediate byte, the
	// 16 bit address/data operand, or the RST vector number, depending on
	// Defn.
	InstructionData uint16

	// MachineCycle is the current 0-based machine cycle within the
	// instruction.
	MachineCycle int

	// Cycles is the actual number of CPU cycles (machine cycles * 4) the
	// instruction took. For conditional CALL/RET this can be less than
	// Defn.MachineCycles*4 when the branch wasn't taken.
	Cycles int

	// BranchTaken records whether a conditional CALL/Jcc/RET's test passed.
	// Meaningful only when Defn.Category is C, J or R.
	BranchTaken bool

	// CPUBug names a known-buggy code path that was triggered, or NoBug.
	CPUBug Bug

	// Error is a memory access error's message, if one occurred.
	Error string

	// Final reports whether this instruction has reached its last machine
	// cycle - some fields are undefined until it has.
	Final bool
}

// Reset nullifies all fields of the Result, ready for the next instruction
// fetch.
func (r *Result) Reset() {
	r.Defn = nil
	r.ByteCount = 0
	r.Address = 0
	r.InstructionData = 0
	r.MachineCycle = 0
	r.Cycles = 0
	r.BranchTaken = false
	r.CPUBug = NoBug
	r.Error = ""
	r.Final = false
}
