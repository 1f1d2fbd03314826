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

package machine

import (
	"github.com/parallelno/vector06c-core/hardware/audio"
	"github.com/parallelno/vector06c-core/hardware/cpu"
	"github.com/parallelno/vector06c-core/hardware/display"
	"github.com/parallelno/vector06c-core/hardware/fdc"
	"github.com/parallelno/vector06c-core/hardware/instance"
	"github.com/parallelno/vector06c-core/hardware/keyboard"
	"github.com/parallelno/vector06c-core/hardware/memory"
	"github.com/parallelno/vector06c-core/hardware/ports"
	"github.com/parallelno/vector06c-core/hardware/psg"
	"github.com/parallelno/vector06c-core/hardware/timer"
	"github.com/parallelno/vector06c-core/logger"
)

// Machine wires every subsystem together and drives them in order:
// rasterize, then execute one CPU machine cycle, then advance the audio
// mixer. It is the only package that knows the concrete types behind
// bus.CPUBus, bus.PortBus, display.PortCommitter, display.ScreenReader
// and audio.ClockSource.
type Machine struct {
	Instance *instance.Instance

	Memory   *memory.Memory
	CPU      *cpu.CPU
	Ports    *ports.Ports
	Display  *display.Display
	Keyboard *keyboard.Keyboard
	Timer    *timer.Timer
	PSG      *psg.PSG
	FDC      *fdc.FDC
	Mixer    *audio.Mixer

	rateBridge *psg.RateBridge

	// irqPending latches the display's once-per-frame IRQ pulse until the
	// CPU samples it at an instruction boundary with interrupts enabled -
	// real INTR hardware stays asserted across however many machine
	// cycles it takes the current instruction to finish.
	irqPending bool
}

// displayPosition adapts hardware/display.Display's (line, pixel) query
// and frame counter to random.Position's (frame, line, pixel) shape,
// without requiring hardware/display to know about hardware/random.
type displayPosition struct {
	d *display.Display
}

func (p displayPosition) Position() (frame, line, pixel int) {
	line, pixel = p.d.Position()
	return p.d.FrameNumber(), line, pixel
}

// New builds a fully wired Machine. The Display is constructed before the
// Instance (whose Random field seeds from the Display's raster position)
// and attached to its Ports/Memory dependencies only once those exist -
// see display.NewDisplay's doc comment for why the dependency graph
// forces this order.
func New(log *logger.Logger) (*Machine, error) {
	m := &Machine{}

	m.Display = display.NewDisplay()

	var err error
	m.Instance, err = instance.NewInstance(displayPosition{m.Display})
	if err != nil {
		return nil, err
	}

	m.Memory = memory.NewMemory(m.Instance, log)
	m.Keyboard = keyboard.NewKeyboard()
	m.Timer = timer.NewTimer()
	m.PSG = psg.NewPSG()
	m.rateBridge = psg.NewRateBridge(m.PSG)
	m.FDC = fdc.NewFDC(log)

	m.Ports = ports.NewPorts(m.Memory, m.Timer, m.PSG, m.FDC, m.Keyboard)
	m.Display.Attach(m.Ports, m.Memory)

	m.CPU = cpu.NewCPU(m.Instance, m.Memory, m.Ports)
	m.Mixer = audio.NewMixer(m.Timer, m.rateBridge)

	return m, nil
}

// Reset zeroes main RAM, mapping state and every device's power-on state
//.
func (m *Machine) Reset() {
	m.Memory.Reset()
	m.Ports.Reset()
	m.Display.Reset()
	m.Keyboard.Reset()
	m.Timer.Reset()
	m.PSG.Reset()
	m.FDC.Reset()
	m.Mixer.Reset()
	m.CPU.Reset()
	m.irqPending = false
}

// Restart keeps RAM content but switches mem_type to RAM and reinitialises
// mappings and CPU state. Unlike Reset, it never touches the RAM-disk
// region - RAMDiskClearAfterRestart governs Reset's behaviour, despite
// its name (hardware/memory.Reset already implements that).
func (m *Machine) Restart() {
	m.Memory.Restart()
	m.CPU.Reset()
	m.irqPending = false
}

// MachineCycle performs one rasterize/execute/mix step. The
// caller - the execute_instruction loop in package emulation - repeats
// this until m.CPU.IsInstructionComplete() to advance by a whole
// instruction, testing m.Memory.IsFault() and the debugger hook between
// calls.
func (m *Machine) MachineCycle() error {
	if m.Display.MachineCycle() {
		m.irqPending = true
	}

	boundary := m.CPU.IsInstructionComplete()
	interruptible := m.CPU.InterruptsEnabled()

	if err := m.CPU.ExecuteMachineCycle(m.irqPending); err != nil {
		return err
	}

	if boundary && interruptible && !m.CPU.InterruptsEnabled() {
		m.irqPending = false
	}

	beeper := 0.0
	if m.Ports.Beeper() {
		beeper = 1.0
	}
	optimize := m.Instance.Prefs.Optimize.Get()
	m.Mixer.Clock(1, beeper, optimize)

	return nil
}
