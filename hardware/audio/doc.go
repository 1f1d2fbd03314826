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

// Package audio implements the core's audio ring and adaptive resampler:
// the per-cycle mix of the i8253 timer, the AY-3-8910 PSG and the beeper
// into a 4000-sample ring, downsampled from the 1.5MHz mix rate toward
// 50kHz, with a producer/consumer scheme the host audio callback drains
// from a different thread.
package audio
