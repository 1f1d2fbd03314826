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

// Package machine is the base package for the Vector-06C emulation. It and
// its sibling hardware/ sub-packages contain everything required for a
// headless emulation.
//
// The Machine type is the root of the emulation and holds references to
// every subsystem - CPU, memory, ports, display, keyboard, timer, PSG and
// FDC. From here the emulation can be stepped one machine cycle at a time
// (MachineCycle) or one instruction at a time (the execute_instruction
// loop lives one level up, in package emulation, which repeats
// MachineCycle until the CPU reports an instruction boundary).
package machine
