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

package fdc

import (
	"github.com/parallelno/vector06c-core/curated"
	"github.com/parallelno/vector06c-core/logger"
)

// Absolute port addresses. These must agree with hardware/ports'
// PortFDCStatusCommand..PortFDCSystem block; duplicated here rather than
// imported, the same way hardware/timer owns its own port offsets, since
// nothing about the controller's command state machine needs the rest of
// the ports package.
const (
	PortStatusCommand = 0x18
	PortTrack         = 0x19
	PortSector        = 0x1a
	PortData          = 0x1b
	PortSystem        = 0x1c
)

// STATUS register bits.
const (
	statusBusy      = 0x01
	statusDRQ       = 0x02
	statusLostData  = 0x04
	statusSeekError = 0x10
	statusNotReady  = 0x80
)

// watchdogInit is the READY-poll budget before an in-progress transfer is
// abandoned with F_LOSTDATA.
const watchdogInit = 255

// FDC is the WD1793-compatible floppy disk controller: four drives and
// the shared command/transfer state machine that addresses them.
type FDC struct {
	log *logger.Logger

	drives      [driveCount]Drive
	driveIndex  int
	side        int
	track       int
	lastStepDir int

	statusBits uint8
	irqFlag    bool

	command  uint8
	watchdog int
	ptr      int
	rwLen    int

	trackReg  uint8
	sectorReg uint8
	dataReg   uint8

	readingHeader bool
	header        [6]byte
	headerIdx     int
}

// NewFDC is the preferred method of initialisation for the FDC type.
func NewFDC(log *logger.Logger) *FDC {
	f := &FDC{log: log}
	f.Reset()
	return f
}

// Reset returns the controller to its power-on state. Mounted drives stay
// mounted; only the shared register/transfer state is cleared.
func (f *FDC) Reset() {
	f.driveIndex = 0
	f.side = 0
	f.track = 0
	f.lastStepDir = -1
	f.statusBits = 0
	f.irqFlag = false
	f.command = 0
	f.watchdog = 0
	f.ptr = 0
	f.rwLen = 0
	f.trackReg = 0
	f.sectorReg = 1
	f.dataReg = 0
	f.readingHeader = false
	f.headerIdx = 0
}

// Drive returns the drive at index (0-3), for mount/dismount requests and
// host persistence.
func (f *FDC) Drive(index int) *Drive {
	return &f.drives[index]
}

func (f *FDC) activeDrive() *Drive {
	return &f.drives[f.driveIndex]
}

// RemainingLength returns the current transfer's rw_len, for the debugger
// and host state inspection.
func (f *FDC) RemainingLength() int {
	return f.rwLen
}

// Busy reports whether a transfer is in progress.
func (f *FDC) Busy() bool {
	return f.statusBits&statusBusy != 0
}

// IRQ reports whether the controller has a pending IRQ flag.
func (f *FDC) IRQ() bool {
	return f.irqFlag
}

// AcknowledgeIRQ clears the controller's pending IRQ flag, called by the
// scheduler once it has observed the condition.
func (f *FDC) AcknowledgeIRQ() {
	f.irqFlag = false
}

// DriveIndex, Side and Track report the controller's currently selected
// CHS position, for the debugger and host state inspection.
func (f *FDC) DriveIndex() int { return f.driveIndex }
func (f *FDC) Side() int       { return f.side }
func (f *FDC) Track() int      { return f.track }

// Read implements ports.FDCDevice.
func (f *FDC) Read(port uint8) uint8 {
	switch port {
	case PortStatusCommand:
		return f.statusByte()
	case PortTrack:
		return f.trackReg
	case PortSector:
		return f.sectorReg
	case PortData:
		return f.readData()
	case PortSystem:
		return f.readReady()
	default:
		return 0xff
	}
}

// Write implements ports.FDCDevice.
func (f *FDC) Write(port uint8, value uint8) {
	switch port {
	case PortStatusCommand:
		f.executeCommand(value)
	case PortTrack:
		f.trackReg = value
	case PortSector:
		f.sectorReg = value
	case PortData:
		f.writeData(value)
	case PortSystem:
		f.writeSystem(value)
	}
}

// statusByte composes the STATUS register from the controller's current
// state, forcing F_NOTREADY when the active drive has no image mounted.
func (f *FDC) statusByte() uint8 {
	v := f.statusBits
	if !f.activeDrive().Mounted {
		v |= statusNotReady
	}
	return v
}

// readReady implements the READY alias of the SYSTEM port: each read
// decrements the transfer watchdog while a transfer is in flight, aborting
// with F_LOSTDATA when it's exhausted.
func (f *FDC) readReady() uint8 {
	if f.statusBits&statusBusy != 0 {
		f.watchdog--
		if f.watchdog <= 0 {
			f.abortLostData()
		}
	}
	v := uint8(0)
	if f.irqFlag {
		v |= 0x01
	}
	if f.statusBits&statusDRQ != 0 {
		v |= 0x02
	}
	return v
}

func (f *FDC) abortLostData() {
	f.statusBits &^= statusBusy | statusDRQ
	f.statusBits |= statusLostData
	f.rwLen = 0
	f.readingHeader = false
	f.irqFlag = true
	if f.log != nil {
		f.log.Log(logger.Allow, "fdc", curated.Errorf(curated.FDCLostData, f.command))
	}
}

// writeSystem decodes a SYSTEM port write: side = ~bit2 & 1, drive =
// value & 3.
func (f *FDC) writeSystem(value uint8) {
	f.side = int((^(value >> 2)) & 1)
	f.driveIndex = int(value & 0x03)
}

// seek implements the controller's seek algorithm, storing the resulting
// CHS header for a subsequent READ-ADDRESS.
func (f *FDC) seek(side, track, sector int) (position int, ok bool) {
	if sector < 1 || sector > sectorsPerTrack || track < 0 || track >= tracksPerSide {
		if f.log != nil {
			f.log.Log(logger.Allow, "fdc", curated.Errorf(curated.FDCSeekFailure, track, side, sector))
		}
		return 0, false
	}
	position = (sectorsPerTrack*(track*sides+side) + maxInt(0, sector-1)) * sectorLen
	f.header = [6]byte{uint8(track), uint8(side), uint8(sector), 3, 0, 0}
	return position, true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// executeCommand decodes a COMMAND port write by its high nibble.
func (f *FDC) executeCommand(value uint8) {
	f.command = value
	group := value >> 4

	switch {
	case group == 0x0:
		f.cmdRestore()
	case group == 0x1:
		f.cmdSeek()
	case group >= 0x2 && group <= 0x7:
		f.cmdStep(group)
	case group == 0x8 || group == 0x9:
		f.cmdReadSector(group == 0x9)
	case group == 0xa || group == 0xb:
		f.cmdWriteSector(group == 0xb)
	case group == 0xc:
		f.cmdReadAddress()
	case group == 0xd:
		f.cmdForceIRQ(value)
	case group == 0xe:
		// READ-TRACK: not implemented.
	case group == 0xf:
		f.cmdWriteTrack()
	}
}

func (f *FDC) cmdRestore() {
	f.track = 0
	f.trackReg = 0
	f.lastStepDir = -1
}

func (f *FDC) cmdSeek() {
	f.track = int(f.dataReg)
	f.trackReg = f.dataReg
}

// cmdStep covers the STEP/STEP-IN/STEP-OUT family, grouped by the command
// nibble: 0x2/0x3 repeat the last step direction, 0x4/0x5
// step in (+1), 0x6/0x7 step out (-1); the odd nibble of each pair copies
// the new track into the TRACK register.
func (f *FDC) cmdStep(group uint8) {
	dir := f.lastStepDir
	switch group {
	case 0x4, 0x5:
		dir = 1
	case 0x6, 0x7:
		dir = -1
	}
	f.lastStepDir = dir
	f.track += dir
	if f.track < 0 {
		f.track = 0
	}
	if f.track >= tracksPerSide {
		f.track = tracksPerSide - 1
	}
	if group%2 == 1 {
		f.trackReg = uint8(f.track)
	}
}

func (f *FDC) cmdReadSector(multi bool) {
	position, ok := f.seek(f.side, f.track, int(f.sectorReg))
	if !ok {
		f.statusBits |= statusSeekError
		return
	}
	f.ptr = position
	f.rwLen = sectorLen
	if multi {
		f.rwLen = sectorLen * (sectorsPerTrack - int(f.sectorReg) + 1)
	}
	f.statusBits |= statusBusy | statusDRQ
	f.statusBits &^= statusLostData | statusSeekError
	f.watchdog = watchdogInit
	f.readingHeader = false
}

func (f *FDC) cmdWriteSector(multi bool) {
	f.cmdReadSector(multi)
	f.activeDrive().Updated = true
}

func (f *FDC) cmdReadAddress() {
	// Probe sector IDs 0..255 on the current track; our CHS images always
	// carry sectors 1..sectorsPerTrack in order, so the first valid ID is
	// the hit.
	for id := 0; id <= 255; id++ {
		if id < 1 || id > sectorsPerTrack {
			continue
		}
		if _, ok := f.seek(f.side, f.track, id); ok {
			f.readingHeader = true
			f.headerIdx = 0
			f.rwLen = len(f.header)
			f.statusBits |= statusBusy | statusDRQ
			f.watchdog = watchdogInit
			return
		}
	}
	f.statusBits |= statusSeekError
}

func (f *FDC) cmdForceIRQ(value uint8) {
	f.statusBits &^= statusBusy | statusDRQ
	f.rwLen = 0
	f.readingHeader = false
	if value&0x08 != 0 {
		f.irqFlag = true
	}
}

func (f *FDC) cmdWriteTrack() {
	drv := f.activeDrive()
	for side := 0; side < sides; side++ {
		for sector := 1; sector <= sectorsPerTrack; sector++ {
			position := (sectorsPerTrack*(f.track*sides+side) + (sector - 1)) * sectorLen
			for i := 0; i < sectorLen; i++ {
				drv.data[position+i] = 0xe5
			}
		}
	}
	drv.Updated = true
}

// readData services the DATA port during an in-progress transfer.
func (f *FDC) readData() uint8 {
	if f.readingHeader {
		v := f.header[f.headerIdx]
		f.headerIdx++
		f.advanceTransfer()
		return v
	}
	if f.rwLen == 0 {
		return 0xff
	}
	drv := f.activeDrive()
	v := drv.data[f.ptr%DriveSize]
	drv.Reads++
	f.ptr++
	f.advanceTransfer()
	return v
}

func (f *FDC) writeData(value uint8) {
	if f.rwLen == 0 {
		f.dataReg = value
		return
	}
	drv := f.activeDrive()
	drv.data[f.ptr%DriveSize] = value
	drv.Writes++
	f.ptr++
	f.advanceTransfer()
}

// advanceTransfer decrements rw_len, auto-increments the SECTOR register
// on a sector-boundary crossing, and clears BUSY|DRQ (asserting IRQ) once
// the transfer completes.
func (f *FDC) advanceTransfer() {
	f.rwLen--
	if !f.readingHeader && f.rwLen&(sectorLen-1) == 0 {
		f.sectorReg++
	}
	if f.rwLen <= 0 {
		f.rwLen = 0
		f.statusBits &^= statusBusy | statusDRQ
		f.irqFlag = true
		f.readingHeader = false
	}
}
