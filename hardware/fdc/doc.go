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

// Package fdc implements a WD1793-compatible floppy disk controller: four
// drives of raw CHS-addressed backing images, the five-register port
// interface (STATUS/COMMAND, TRACK, SECTOR, DATA, SYSTEM/READY), command
// decoding by high nibble, and the seek/transfer state machine.
package fdc
