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

package curated

// Sentinel patterns for curated.Is()/curated.Has(). Values are never printed
// directly - see the %v / %d placeholders, filled in by Errorf() callers.

const (
	// RAMDiskConflict is raised when more than one RAM-disk mapping is
	// simultaneously active.
	RAMDiskConflict = "more than one ram-disk mapping active: disks %v"

	// UnrecognizedOpcode names the decode of a byte with no instruction
	// definition. hardware/cpu never raises it: its instruction table
	// defines all 256 opcodes.
	UnrecognizedOpcode = "unrecognized opcode: %#02x"

	// FDCNotReady is surfaced through the STATUS register, never up to the
	// host, but is still curated so device code and tests can agree on it.
	FDCNotReady = "fdc: drive not ready"

	// FDCSeekFailure covers a seek to a CHS tuple with no matching sector.
	FDCSeekFailure = "fdc: seek failed: track=%d side=%d sector=%d"

	// FDCLostData is raised when the watchdog counter expires mid-transfer.
	FDCLostData = "fdc: lost data: command=%#02x"

	// UnsupportedRequest is raised by the request dispatcher for a Kind it
	// doesn't recognise.
	UnsupportedRequest = "emulation: unsupported request: %v"
)
