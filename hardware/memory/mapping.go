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

package memory

import "github.com/parallelno/vector06c-core/hardware/memory/bus"

// MemMapping is the decoded form of one RAM-disk's configuration byte:
// which page of that disk is windowed over the stack and RAM address
// classes, and which of those classes are currently enabled.
//
// The four mode flags occupy bits 5-7 and 4 of the byte (mode_ram_8,
// mode_ram_A, mode_ram_E, mode_stack); page_ram occupies bits 0-1 and
// page_stack bits 2-3. The field semantics are fixed by the hardware; the
// bit layout is this implementation's own packing choice.
type MemMapping struct {
	PageRAM   uint8
	PageStack uint8

	ModeStack bool
	ModeRAMA  bool
	ModeRAM8  bool
	ModeRAME  bool
}

func newMemMapping(b uint8) MemMapping {
	return MemMapping{
		PageRAM:   b & 0x03,
		PageStack: (b >> 2) & 0x03,
		ModeStack: b&0x10 != 0,
		ModeRAM8:  b&0x20 != 0,
		ModeRAMA:  b&0x40 != 0,
		ModeRAME:  b&0x80 != 0,
	}
}

// Byte re-packs the mapping into its configuration byte form, the inverse
// of newMemMapping. Used by GET_MEM_MAPPING style debugger requests.
func (m MemMapping) Byte() uint8 {
	var b uint8
	b |= m.PageRAM & 0x03
	b |= (m.PageStack & 0x03) << 2
	if m.ModeStack {
		b |= 0x10
	}
	if m.ModeRAM8 {
		b |= 0x20
	}
	if m.ModeRAMA {
		b |= 0x40
	}
	if m.ModeRAME {
		b |= 0x80
	}
	return b
}

// anyModeSet reports whether any of the four mode flags is set - the
// condition that makes this mapping count as "active" for the purposes of
// the single-active-disk invariant.
func (m MemMapping) anyModeSet() bool {
	return m.ModeStack || m.ModeRAM8 || m.ModeRAMA || m.ModeRAME
}

// translate implements the address translation algorithm for one mapping,
// given the active disk index d. ok is false when none of the
// mapping's mode flags cover addr/space, meaning the caller should fall
// through to the unmapped (main RAM) case.
func (m MemMapping) translate(addr uint16, space bus.Space, d int) (offset uint64, ok bool) {
	if !m.anyModeSet() {
		return 0, false
	}

	if space == bus.Stack && m.ModeStack {
		return (uint64(m.PageStack) + 1 + 4*uint64(d)) * 0x10000 + uint64(addr), true
	}

	switch {
	case m.ModeRAMA && addr >= 0xA000 && addr < 0xE000:
		return (uint64(m.PageRAM) + 1 + 4*uint64(d)) * 0x10000 + uint64(addr), true
	case m.ModeRAM8 && addr >= 0x8000 && addr < 0xA000:
		return (uint64(m.PageRAM) + 1 + 4*uint64(d)) * 0x10000 + uint64(addr), true
	case m.ModeRAME && addr >= 0xE000:
		return (uint64(m.PageRAM) + 1 + 4*uint64(d)) * 0x10000 + uint64(addr), true
	}

	return 0, false
}
