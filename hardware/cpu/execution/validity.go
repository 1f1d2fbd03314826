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
	"fmt"

	"github.com/parallelno/vector06c-core/hardware/cpu/instructions"
)

// IsValid checks whether a finalised Result is consistent with its
// instruction definition.
func (r Result) IsValid() error {
	if r.Defn == nil {
		return fmt.Errorf("cpu: execution result has no instruction definition")
	}

	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised")
	}

	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	nominal := r.Defn.MachineCycles * 4

	switch r.Defn.Category {
	case instructions.C, instructions.J, instructions.R:
		// conditional CALL/JMP/RET may legitimately complete in fewer
		// cycles than the nominal value when the branch isn't taken.
		if r.Cycles > nominal {
			return fmt.Errorf("cpu: too many cycles for opcode %#02x [%s] (%d, nominal is %d)", r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, nominal)
		}
	default:
		if r.Cycles != nominal {
			return fmt.Errorf("cpu: wrong number of cycles for opcode %#02x [%s] (%d instead of %d)", r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, nominal)
		}
	}

	return nil
}
