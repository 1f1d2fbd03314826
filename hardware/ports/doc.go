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

// Package ports implements the Vector-06C's 8-bit I/O port space: the
// PPI-style latches, the joystick and keyboard-language latches, and the
// deferred commit timers that delay the visible effect of a port write by a
// fixed number of pixels.
//
// Named ports, not io, so it doesn't shadow the standard library import of
// the same name.
//
// A CPU OUT instruction never applies its effect immediately. Out captures
// the (port, value) pair and arms one to three pixel-counted timers; the
// rasterizer calls Tick and TryCommit once per pixel it emits; TryCommit
// only acts when a palette commit is outstanding. This reproduces the real
// bus's delay between an OUT instruction retiring and its effect reaching
// the screen - the mechanism behind the "torn" pixels a palette write makes
// when it lands inside the active area.
package ports
