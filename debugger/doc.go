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

// Package debugger holds the breakpoint store consulted by the execution
// scheduler (package emulation) at every instruction boundary. It knows
// nothing about the concrete CPU or memory types - callers hand it a
// Snapshot of the handful of values a breakpoint condition can reference,
// gathered once per boundary.
//
// This is deliberately a small package: a breakpoint store and a condition
// evaluator, not an interactive front-end. Scripting, command parsing and
// terminal presentation belong to the host, not the core.
package debugger
