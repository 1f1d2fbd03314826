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

// Package emulation is the top-level scheduler: the RUN/STOP/EXIT loop and
// the single synchronous Request/Response dispatch the host drives the
// core through.
//
// Scheduler owns a machine.Machine and a debugger.Store and is the only
// place that ties the two together: it gathers a debugger.Snapshot at
// every instruction boundary, feeds it to the Store, and turns a hit into
// a STOP the same way a RAM-disk mapping fault does.
package emulation
