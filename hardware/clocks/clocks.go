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

// Package clocks defines the constant values that relate the Vector-06C's
// single 12MHz pixel clock to the CPU cycle and machine cycle rates derived
// from it.
package clocks

const (
	// PixelClockMHz is the master clock driving the rasterizer.
	PixelClockMHz = 12.0

	// PixelsPerCPUCycle is fixed at 4 - one CPU cycle is four pixels.
	PixelsPerCPUCycle = 4

	// CPUClockMHz is the derived i8080 clock: 12MHz / 4.
	CPUClockMHz = PixelClockMHz / PixelsPerCPUCycle

	// CPUCyclesPerMachineCycle is fixed at 4 - a machine cycle is the i8080's
	// basic fetch/memory/IO unit.
	CPUCyclesPerMachineCycle = 4

	// PixelsPerMachineCycle is 16: one machine cycle emits 16 pixels from the
	// rasterizer.
	PixelsPerMachineCycle = PixelsPerCPUCycle * CPUCyclesPerMachineCycle

	// AYNumerator and AYDenominator express the CPU-cycle to AY-cycle rate
	// bridge used by the PSG wrapper: 7 AY-cycle-units per CPU
	// cycle, clocking the AY once every 96 accumulated units.
	AYNumerator   = 7
	AYDenominator = 96

	// TargetFPS is the pacing target for the execution scheduler.
	TargetFPS = 50
)
