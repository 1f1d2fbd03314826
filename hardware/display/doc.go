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

// Package display implements the Vector-06C's raster rasterizer: a
// 768x312 pixel cursor that, 16 pixels per machine cycle, decodes the
// 256/512 colour modes from the four screen bit-planes, drives the I/O
// commit-timer hooks at the right pixel, and double-buffers complete
// frames for the host to read without synchronizing with the emulation
// loop.
package display
