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

// Package memory implements the Vector-06C's flat 2112KiB backing store and
// the per-RAM-disk address translation that windows pages of it over the
// CPU's 64KiB logical address space.
package memory

import (
	"github.com/parallelno/vector06c-core/curated"
	"github.com/parallelno/vector06c-core/hardware/instance"
	"github.com/parallelno/vector06c-core/hardware/memory/bus"
	"github.com/parallelno/vector06c-core/hardware/memory/memorymap"
	"github.com/parallelno/vector06c-core/logger"
)

// MemType distinguishes the power-on boot ROM shadow from ordinary RAM.
type MemType int

const (
	RAM MemType = iota
	ROM
)

// WriteEntry is one record of the per-instruction write log consulted by
// the debugger.
type WriteEntry struct {
	Addr  uint16
	Value uint8
	Valid bool
}

// Memory is the flat backing store plus the eight MemMapping registers that
// window RAM-disk pages over it. It implements bus.CPUBus and bus.DebugBus.
type Memory struct {
	ins *instance.Instance
	log *logger.Logger

	data [memorymap.TotalSize]byte
	rom  []byte

	memType MemType

	mappings   [memorymap.RAMDiskCount]MemMapping
	activeDisk int

	faultPending bool
	faultLatched bool

	writeLog  [2]WriteEntry
	instrOp   uint8
	instrAddr uint16
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(ins *instance.Instance, log *logger.Logger) *Memory {
	mem := &Memory{
		ins:     ins,
		log:     log,
		memType: RAM,
	}
	mem.Reset()
	return mem
}

// SetROM installs the boot ROM image and switches mem_type to ROM. A nil or
// empty rom leaves the memory in plain RAM mode.
func (mem *Memory) SetROM(rom []byte) {
	mem.rom = rom
	if len(rom) > 0 {
		mem.memType = ROM
	} else {
		mem.memType = RAM
	}
}

// Reset zeros main RAM and mapping state (or randomises main RAM if the
// RandomState preference is set), and optionally zeros the RAM-disk region
// if RAMDiskClearAfterRestart is set.
func (mem *Memory) Reset() {
	randomised := mem.ins != nil && mem.ins.Prefs != nil && mem.ins.Prefs.RandomState.Get()

	for i := 0; i < memorymap.MainRAMSize; i++ {
		if randomised {
			mem.data[i] = mem.ins.Random.Rewindable(i % 256)
		} else {
			mem.data[i] = 0
		}
	}

	for i := range mem.mappings {
		mem.mappings[i] = MemMapping{}
	}
	mem.activeDisk = 0
	mem.faultPending = false
	mem.faultLatched = false
	mem.writeLog = [2]WriteEntry{}

	if mem.ins != nil && mem.ins.Prefs != nil && mem.ins.Prefs.RAMDiskClearAfterRestart.Get() {
		for i := memorymap.RAMDiskStart; i < memorymap.TotalSize; i++ {
			mem.data[i] = 0
		}
	}
}

// Restart switches mem_type from ROM to RAM (the boot ROM shadow is only
// visible until the first restart event) and re-initializes the RAM-disk
// mappings.
func (mem *Memory) Restart() {
	mem.memType = RAM
	for i := range mem.mappings {
		mem.mappings[i] = MemMapping{}
	}
	mem.activeDisk = 0
}

// translate implements the address translation algorithm against the
// currently active mapping.
func (mem *Memory) translate(addr uint16, space bus.Space) uint64 {
	m := mem.mappings[mem.activeDisk]
	if offset, ok := m.translate(addr, space, mem.activeDisk); ok {
		return offset
	}
	return uint64(addr)
}

// GlobalAddress is the pure translation exposed to the debugger.
func (mem *Memory) GlobalAddress(addr uint16, space bus.Space) uint64 {
	return mem.translate(addr, space)
}

// Read implements bus.CPUBus. It returns the ROM byte when mem_type is ROM
// and the translated offset falls inside the ROM image, otherwise the RAM
// byte at that offset.
func (mem *Memory) Read(addr uint16, space bus.Space) (uint8, error) {
	offset := mem.translate(addr, space)
	if mem.memType == ROM && offset < uint64(len(mem.rom)) {
		return mem.rom[offset], nil
	}
	return mem.data[offset], nil
}

// Write implements bus.CPUBus. Writes always go to RAM, even when mem_type
// is ROM and the address shadows the ROM image, and are additionally
// recorded in the two-entry per-instruction write log keyed by byteNum.
func (mem *Memory) Write(addr uint16, value uint8, space bus.Space, byteNum int) error {
	offset := mem.translate(addr, space)
	mem.data[offset] = value

	if byteNum == 0 || byteNum == 1 {
		mem.writeLog[byteNum] = WriteEntry{Addr: addr, Value: value, Valid: true}
	}

	return nil
}

// ReadInstr implements bus.CPUBus. It behaves like Read but additionally
// records the opcode and effective address for the debugger at byteNum 0.
func (mem *Memory) ReadInstr(addr uint16, byteNum int) (uint8, error) {
	v, err := mem.Read(addr, bus.RAM)
	if err != nil {
		return 0, err
	}
	if byteNum == 0 {
		mem.instrOp = v
		mem.instrAddr = addr
	}
	return v, nil
}

// Peek implements bus.DebugBus: a Read with no debug side effects.
func (mem *Memory) Peek(addr uint16, space bus.Space) (uint8, error) {
	offset := mem.translate(addr, space)
	if mem.memType == ROM && offset < uint64(len(mem.rom)) {
		return mem.rom[offset], nil
	}
	return mem.data[offset], nil
}

// Poke implements bus.DebugBus: a Write with no debug side effects.
func (mem *Memory) Poke(addr uint16, value uint8) error {
	offset := mem.translate(addr, bus.RAM)
	mem.data[offset] = value
	return nil
}

// GetScreenBytes reads one byte from each of the four screen planes at
// logical addresses 0x8000+offset, 0xA000+offset, 0xC000+offset and
// 0xE000+offset, packing them high-to-low into a 32-bit word with plane E
// in the low 8 bits, consumed by the rasterizer's per-pixel byte fetch.
func (mem *Memory) GetScreenBytes(offset uint16) uint32 {
	p0, _ := mem.Read(0x8000+offset, bus.RAM)
	p1, _ := mem.Read(0xA000+offset, bus.RAM)
	p2, _ := mem.Read(0xC000+offset, bus.RAM)
	p3, _ := mem.Read(0xE000+offset, bus.RAM)

	return uint32(p0)<<24 | uint32(p1)<<16 | uint32(p2)<<8 | uint32(p3)
}

// SetRAMDiskMode updates the mapping byte for diskIndex. If, after the
// write, exactly one RAM-disk mapping is enabled across all eight, it
// becomes the active disk; if two or more are enabled, a fault is latched
// for the next instruction boundary.
func (mem *Memory) SetRAMDiskMode(diskIndex int, b uint8) {
	mem.mappings[diskIndex] = newMemMapping(b)

	enabled := make([]int, 0, memorymap.RAMDiskCount)
	for i, m := range mem.mappings {
		if m.anyModeSet() {
			enabled = append(enabled, i)
		}
	}

	switch len(enabled) {
	case 1:
		mem.activeDisk = enabled[0]
	case 0:
		mem.activeDisk = 0
	default:
		mem.faultPending = true
		if mem.log != nil {
			mem.log.Log(logger.Allow, "memory", curated.Errorf(curated.RAMDiskConflict, enabled))
		}
	}
}

// InstructionBoundary is called by the execution scheduler once per
// completed instruction. If a RAM-disk conflict fault was latched since the
// last boundary, every mapping byte is reset to zero and the fault becomes
// visible via IsFault: mappings are cleared before pausing so the host can
// continue.
func (mem *Memory) InstructionBoundary() {
	if !mem.faultPending {
		return
	}
	mem.faultPending = false
	mem.faultLatched = true
	for i := range mem.mappings {
		mem.mappings[i] = MemMapping{}
	}
	mem.activeDisk = 0
}

// IsFault reports whether a RAM-disk conflict fault is currently latched.
func (mem *Memory) IsFault() bool {
	return mem.faultLatched
}

// AcknowledgeFault clears a latched fault once the debugger/host has
// observed it.
func (mem *Memory) AcknowledgeFault() {
	mem.faultLatched = false
}

// ActiveDisk returns the index of the currently active RAM-disk mapping,
// consulted by the breakpoint per-page bitmap.
func (mem *Memory) ActiveDisk() int {
	return mem.activeDisk
}

// ActiveMapping returns a copy of the currently active disk's mapping.
func (mem *Memory) ActiveMapping() MemMapping {
	return mem.mappings[mem.activeDisk]
}

// Mapping returns a copy of the given RAM-disk's mapping regardless of
// whether it is the active one, for GET_MEMORY_MAPPINGS.
func (mem *Memory) Mapping(diskIndex int) MemMapping {
	return mem.mappings[diskIndex]
}

// WriteLog returns the two most recent per-instruction write entries,
// keyed by byteNum.
func (mem *Memory) WriteLog() [2]WriteEntry {
	return mem.writeLog
}

// ClearWriteLog resets the per-instruction write log, called by the
// execution scheduler at the start of each new instruction.
func (mem *Memory) ClearWriteLog() {
	mem.writeLog = [2]WriteEntry{}
}

// LastInstrFetch returns the opcode and effective address most recently
// recorded by ReadInstr at byteNum 0.
func (mem *Memory) LastInstrFetch() (opcode uint8, addr uint16) {
	return mem.instrOp, mem.instrAddr
}

// GetRAMDisk returns a copy of the 2048KiB RAM-disk region, for the host's
// GET_RAM_DISK request.
func (mem *Memory) GetRAMDisk() []byte {
	out := make([]byte, memorymap.RAMDiskSize)
	copy(out, mem.data[memorymap.RAMDiskStart:])
	return out
}

// SetRAMDisk overwrites the 2048KiB RAM-disk region from a previously saved
// snapshot, for the host's SET_RAM_DISK request.
func (mem *Memory) SetRAMDisk(snapshot []byte) {
	copy(mem.data[memorymap.RAMDiskStart:], snapshot)
}
