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

package ports

// Port addresses. Only a handful of these are pinned down literally -
// port 0 for the keyboard PPI's control word, port 0x02 for the video PPI's
// port B (border colour / display mode), and 0x0C-0x0F for the palette
// registers. Everything else (timer, PSG, FDC, joystick) is given a
// contiguous block here rather than a datasheet-accurate Vector-06C address,
// since their behaviour is well defined but their literal port numbers
// are not.
const (
	PortKeyboardCW = 0x00 // keyboard PPI control word / port C bit set-reset
	PortKeyboardPA = 0x01 // keyboard PPI port A: row-select (out)
	PortKeyboardPB = 0x03 // keyboard PPI port B: row scan readback (in)
	PortKeyboardPC = 0x04 // keyboard PPI port C: modifier latches, low nibble (in)

	PortVideoPB = 0x02 // video PPI port B: border colour + display mode (out)

	PortPaletteBase = 0x0C // 0x0C-0x0F: four palette-entry write ports
	PortPaletteEnd  = 0x0F

	PortTimerBase = 0x10 // i8253: counter 0/1/2 data + control word
	PortTimerEnd  = 0x13

	PortPSGSelect = 0x14 // AY-3-8910 register select
	PortPSGData   = 0x15 // AY-3-8910 register data

	PortFDCStatusCommand = 0x18 // shared STATUS (in) / COMMAND (out)
	PortFDCTrack         = 0x19
	PortFDCSector        = 0x1A
	PortFDCData          = 0x1B
	PortFDCSystem        = 0x1C // shared READY (in) / SYSTEM (out)

	PortJoystick0 = 0x1E
	PortJoystick1 = 0x1F

	PortRAMDiskModeBase = 0x70 // one port per RAM-disk, 0x70-0x77
)

// isPaletteWrite reports whether port addresses one of the four palette
// entries.
func isPaletteWrite(port uint8) bool {
	return port >= PortPaletteBase && port <= PortPaletteEnd
}

// isRAMDiskModeWrite reports whether port addresses one of the eight
// RAM-disk mode registers, returning the disk index it selects.
func isRAMDiskModeWrite(port uint8) (index int, ok bool) {
	if port >= PortRAMDiskModeBase && port < PortRAMDiskModeBase+8 {
		return int(port - PortRAMDiskModeBase), true
	}
	return 0, false
}
