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

package instructions

import "fmt"

// Definition defines one of the 256 i8080 opcodes: its length, the number
// of machine cycles it nominally takes (before any conditional-branch
// shortcut is applied at runtime), and its step-over category.
type Definition struct {
	OpCode        uint8
	Mnemonic      string
	Bytes         int
	MachineCycles int
	Category      Category
	Undocumented  bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%dmc) [%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.MachineCycles, defn.Category)
}

// regNames indexes the three-bit register field used throughout the
// opcode map: B, C, D, E, H, L, M (memory via HL), A.
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

// rpNames indexes the two-bit register-pair field used by LXI/DAD/INX/DCX.
var rpNames = [4]string{"B", "D", "H", "SP"}

// aluNames indexes the three-bit ALU operation field used by both the
// register/memory form (0x80-0xBF) and the immediate form (0xC6.. step 8).
var aluNames = [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}

// Definitions is indexed directly by opcode.
var Definitions [256]Definition

func init() {
	def := func(op uint8, mnemonic string, bytes, mc int, cat Category, undoc bool) {
		Definitions[op] = Definition{
			OpCode:        op,
			Mnemonic:      mnemonic,
			Bytes:         bytes,
			MachineCycles: mc,
			Category:      cat,
			Undocumented:  undoc,
		}
	}

	// 0x00-0x3F: the per-register-pair block of NOP/LXI/STAX/INX/INR/DCR/
	// MVI/ rotate-or-special, four rows of sixteen.
	rotateOrSpecial := [4]string{"RLC", "RAL", "DAA", "STC"}
	rotateOrSpecial2 := [4]string{"RRC", "RAR", "CMA", "CMC"}

	for row := 0; row < 4; row++ {
		base := uint8(row * 0x10)
		rp := rpNames[row]

		def(base+0x00, "NOP", 1, 1, OTHER, row != 0)
		def(base+0x01, "LXI "+rp, 3, 3, OTHER, false)

		if row < 2 {
			def(base+0x02, "STAX "+rp, 1, 2, OTHER, false)
		} else if row == 2 {
			def(base+0x02, "SHLD", 3, 5, OTHER, false)
		} else {
			def(base+0x02, "STA", 3, 4, OTHER, false)
		}

		def(base+0x03, "INX "+rp, 1, 1, OTHER, false)
		def(base+0x04, "INR "+regNames[row*2], 1, 1, OTHER, false)
		def(base+0x05, "DCR "+regNames[row*2], 1, 1, OTHER, false)
		def(base+0x06, "MVI "+regNames[row*2], 2, 2, OTHER, false)
		def(base+0x07, rotateOrSpecial[row], 1, 1, OTHER, false)

		def(base+0x08, "NOP", 1, 1, OTHER, true)
		def(base+0x09, "DAD "+rp, 1, 3, OTHER, false)

		if row < 2 {
			def(base+0x0A, "LDAX "+rp, 1, 2, OTHER, false)
		} else if row == 2 {
			def(base+0x0A, "LHLD", 3, 5, OTHER, false)
		} else {
			def(base+0x0A, "LDA", 3, 4, OTHER, false)
		}

		def(base+0x0B, "DCX "+rp, 1, 1, OTHER, false)
		def(base+0x0C, "INR "+regNames[row*2+1], 1, 1, OTHER, false)
		def(base+0x0D, "DCR "+regNames[row*2+1], 1, 1, OTHER, false)
		def(base+0x0E, "MVI "+regNames[row*2+1], 2, 2, OTHER, false)
		def(base+0x0F, rotateOrSpecial2[row], 1, 1, OTHER, false)
	}

	// M operand forms of INR/DCR/MVI take an extra machine cycle for the
	// memory access; fix up the three opcodes the loop above mis-timed
	// (row 3, M slot).
	Definitions[0x34].MachineCycles = 3 // INR M
	Definitions[0x35].MachineCycles = 3 // DCR M
	Definitions[0x36].MachineCycles = 3 // MVI M,d8

	// 0x40-0x7F: MOV dst,src. 0x76 is HLT, not MOV M,M.
	for op := 0x40; op <= 0x7F; op++ {
		dst := (op >> 3) & 7
		src := op & 7

		if op == 0x76 {
			def(uint8(op), "HLT", 1, 1, OTHER, false)
			continue
		}

		mc := 1
		if dst == 6 || src == 6 {
			mc = 2
		}
		def(uint8(op), "MOV "+regNames[dst]+","+regNames[src], 1, mc, OTHER, false)
	}

	// 0x80-0xBF: ALU op A,r / A,M.
	for op := 0x80; op <= 0xBF; op++ {
		alu := (op >> 3) & 7
		src := op & 7

		mc := 1
		if src == 6 {
			mc = 2
		}
		def(uint8(op), aluNames[alu]+" "+regNames[src], 1, mc, OTHER, false)
	}

	// 0xC0-0xFF: stack, branch, RST, I/O and the remaining miscellaneous
	// control opcodes. condNames indexes the three-bit condition field
	// shared by Jcc/Ccc/Rcc.
	condNames := [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
	pushPopNames := [4]string{"B", "D", "H", "PSW"}
	aluImmNames := [8]string{"ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI"}

	for row := 0; row < 4; row++ {
		base := uint8(0xC0 + row*0x10)
		cond0 := condNames[row*2]
		cond1 := condNames[row*2+1]
		rp := pushPopNames[row]

		def(base+0x00, "R"+cond0, 1, 3, R, false)
		def(base+0x01, "POP "+rp, 1, 3, OTHER, false)
		def(base+0x02, "J"+cond0, 3, 3, J, false)

		switch row {
		case 0:
			def(base+0x03, "JMP", 3, 3, JMP, false)
		case 1:
			def(base+0x03, "OUT", 2, 3, OTHER, false)
		case 2:
			def(base+0x03, "XTHL", 1, 5, OTHER, false)
		case 3:
			def(base+0x03, "DI", 1, 1, OTHER, false)
		}

		def(base+0x04, "C"+cond0, 3, 5, C, false)
		def(base+0x05, "PUSH "+rp, 1, 3, OTHER, false)
		def(base+0x06, aluImmNames[row*2]+" d8", 2, 2, OTHER, false)
		def(base+0x07, fmt.Sprintf("RST %d", row*2), 1, 3, RST, false)

		def(base+0x08, "R"+cond1, 1, 3, R, false)

		switch row {
		case 0:
			def(base+0x09, "RET", 1, 3, RET, false)
		case 1:
			def(base+0x09, "RET", 1, 3, RET, true)
		case 2:
			def(base+0x09, "PCHL", 1, 1, PCH, false)
		case 3:
			def(base+0x09, "SPHL", 1, 1, OTHER, false)
		}

		def(base+0x0A, "J"+cond1, 3, 3, J, false)

		switch row {
		case 0:
			def(base+0x0B, "JMP", 3, 3, JMP, true)
		case 1:
			def(base+0x0B, "IN", 2, 3, OTHER, false)
		case 2:
			def(base+0x0B, "XCHG", 1, 1, OTHER, false)
		case 3:
			def(base+0x0B, "EI", 1, 1, OTHER, false)
		}

		def(base+0x0C, "C"+cond1, 3, 5, C, false)
		def(base+0x0D, "CALL", 3, 5, CAL, row != 0)
		def(base+0x0E, aluImmNames[row*2+1]+" d8", 2, 2, OTHER, false)
		def(base+0x0F, fmt.Sprintf("RST %d", row*2+1), 1, 3, RST, false)
	}
}

// ByOpcode returns the definition for opcode.
func ByOpcode(opcode uint8) Definition {
	return Definitions[opcode]
}
