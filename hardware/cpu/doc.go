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

// Package cpu implements the Intel 8080 at the granularity the rest of the
// emulation needs: one machine cycle (four CPU cycles) at a time, rather
// than one whole instruction at a time.
//
// A caller drives the CPU by calling ExecuteMachineCycle once per machine
// cycle, passing the live state of the interrupt line. When the previous
// instruction has completed (IsInstructionComplete), the call performs a
// fetch - either an ordinary opcode fetch, or, if an interrupt is pending
// and enabled, the RST 7 acknowledgement sequence in its place. Otherwise it
// resumes the instruction at whichever sub-step it left off at.
//
// This shape exists so that hardware/machine can interleave the rasterizer
// and the audio mixer between machine cycles, matching the real hardware's
// bus contention rather than running the CPU to completion before anything
// else gets a look in.
//
// Instructions that take only a single machine cycle (register-to-register
// moves, ALU-on-register ops, the rotates, DI/EI and friends) are executed
// in full during the fetch, since they never touch the bus again. Everything
// else resumes across however many further ExecuteMachineCycle calls its
// definition calls for, tracked via a handful of scratch fields rather than
// captured closures, so that Snapshot remains a plain value copy.
package cpu
