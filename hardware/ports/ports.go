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

package ports

// Commit delays, in pixels.
const (
	outCommitDelay     = 1
	paletteCommitDelay = 5
	displayModeDelay   = 8
)

// RAMDiskSetter is the slice of hardware/memory that a RAM-disk mode port
// write reaches. Held as an interface so this package never imports
// hardware/memory directly.
type RAMDiskSetter interface {
	SetRAMDiskMode(index int, b uint8)
}

// TimerDevice is the slice of hardware/timer that the i8253 ports reach.
type TimerDevice interface {
	Read(port uint8) uint8
	Write(port uint8, value uint8)
}

// PSGDevice is the slice of hardware/psg that the AY-3-8910 ports reach.
type PSGDevice interface {
	SelectRegister(value uint8)
	ReadRegister() uint8
	WriteRegister(value uint8)
}

// FDCDevice is the slice of hardware/fdc that the WD1793 ports reach.
type FDCDevice interface {
	Read(port uint8) uint8
	Write(port uint8, value uint8)
}

// KeyboardDevice is the slice of hardware/keyboard that the keyboard PPI
// ports reach.
type KeyboardDevice interface {
	Read(rowMask uint8) uint8
	Modifiers() (ss, us, rus bool)
}

// pendingOut is the captured (port, value) pair from the most recent OUT
// instruction, waiting for outCommitTimer to reach zero.
type pendingOut struct {
	port  uint8
	value uint8
	valid bool
}

// Ports is the Vector-06C's 8-bit port space: PPI-style latches for the
// keyboard and video control registers, the joystick and keyboard-language
// latches, and the three pixel-counted commit timers that delay a port
// write's visible effect.
type Ports struct {
	mem RAMDiskSetter
	tmr TimerDevice
	psg PSGDevice
	fdc FDCDevice
	kbd KeyboardDevice

	// Keyboard PPI (CW/PA/PB/PC) and video PPI (only PB is functionally
	// wired - see addresses.go).
	cw, pa, pb, pc uint8
	pb2            uint8

	// Palette state. hwColor is the shadow latched by an OUT to a palette
	// port; it is only actually stored into palette[] once
	// paletteCommitTimer reaches zero, at whatever colour index the
	// rasterizer happens to be displaying at that pixel - the source of
	// the "torn pixel" behaviour a mid-scanline palette write can cause.
	palette        [16]uint8
	hwColor        uint8
	paletteCommit  bool
	brdColorIdx    uint8
	reqDisplayMode bool
	displayMode    bool

	// Joystick latches. 0xff means "no input".
	joystick0, joystick1 uint8

	// Keyboard language latch and its 8-bit press history.
	ruslat        bool
	ruslatHistory uint8

	// Scroll commit. scrollIdx defaults to 0xff ("no scroll"); it is
	// latched from pa at the scroll commit window, not from a
	// commit timer, so the rasterizer drives it directly via LatchScroll.
	scrollIdx uint8

	pending            pendingOut
	outCommitTimer     int
	paletteCommitTimer int
	displayModeTimer   int
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(mem RAMDiskSetter, tmr TimerDevice, psg PSGDevice, fdc FDCDevice, kbd KeyboardDevice) *Ports {
	p := &Ports{
		mem: mem,
		tmr: tmr,
		psg: psg,
		fdc: fdc,
		kbd: kbd,
	}
	p.Reset()
	return p
}

// Reset zeros the PPI latches and joystick/palette state and clears every
// in-flight commit timer.
func (p *Ports) Reset() {
	p.cw, p.pa, p.pb, p.pc = 0, 0, 0, 0
	p.pb2 = 0
	p.palette = [16]uint8{}
	p.hwColor = 0
	p.paletteCommit = false
	p.brdColorIdx = 0
	p.reqDisplayMode = false
	p.displayMode = false
	p.joystick0, p.joystick1 = 0xff, 0xff
	p.ruslat = false
	p.ruslatHistory = 0
	p.scrollIdx = 0xff
	p.pending = pendingOut{}
	p.outCommitTimer = 0
	p.paletteCommitTimer = 0
	p.displayModeTimer = 0
}

// In implements bus.PortBus. Port reads are synchronous - unlike Out they
// are never deferred.
func (p *Ports) In(port uint8) uint8 {
	switch {
	case port == PortKeyboardPB:
		if p.kbd == nil {
			return 0xff
		}
		return p.kbd.Read(p.pa)
	case port == PortKeyboardPC:
		// The low nibble reflects the live keyboard modifier bits when a
		// keyboard device is wired; the high nibble always
		// passes through whatever the CW bit-set/reset command last left
		// in pc, since that command addresses pc directly regardless of
		// PPI direction configuration.
		v := p.pc & 0xf0
		if p.kbd == nil {
			return v | p.pc&0x0f
		}
		ss, us, rus := p.kbd.Modifiers()
		if ss {
			v |= 0x01
		}
		if us {
			v |= 0x02
		}
		if rus {
			v |= 0x04
		}
		return v
	case port >= PortTimerBase && port <= PortTimerEnd:
		if p.tmr == nil {
			return 0xff
		}
		return p.tmr.Read(port)
	case port == PortPSGData:
		if p.psg == nil {
			return 0xff
		}
		return p.psg.ReadRegister()
	case port == PortFDCStatusCommand, port == PortFDCTrack, port == PortFDCSector, port == PortFDCData, port == PortFDCSystem:
		if p.fdc == nil {
			return 0xff
		}
		return p.fdc.Read(port)
	case port == PortJoystick0:
		return p.joystick0
	case port == PortJoystick1:
		return p.joystick1
	default:
		return 0xff
	}
}

// Out implements bus.PortBus. The write is never applied immediately: it is
// captured and outCommitTimer is armed for outCommitDelay pixels; palette
// and display-mode ports additionally arm their own longer timers.
func (p *Ports) Out(port uint8, value uint8) {
	p.pending = pendingOut{port: port, value: value, valid: true}
	p.outCommitTimer = outCommitDelay

	if isPaletteWrite(port) {
		p.paletteCommitTimer = paletteCommitDelay
		p.paletteCommit = true
	}
	if port == PortVideoPB {
		p.displayModeTimer = displayModeDelay
	}
}

// Tick is called once per pixel the rasterizer emits. It decrements every
// live commit timer and applies the out-commit and display-mode effects at
// the pixel where their timer reaches zero.
func (p *Ports) Tick() {
	if p.outCommitTimer > 0 {
		p.outCommitTimer--
		if p.outCommitTimer == 0 {
			p.commitOut()
		}
	}
	if p.displayModeTimer > 0 {
		p.displayModeTimer--
		if p.displayModeTimer == 0 {
			p.displayMode = p.reqDisplayMode
		}
	}
	if p.paletteCommitTimer > 0 {
		p.paletteCommitTimer--
	}
}

// TryCommit is the try_to_commit hook the rasterizer calls once per emitted
// pixel; it only acts when a palette commit is pending and its timer has
// reached zero. colorIndex is
// whichever colour the rasterizer would otherwise display at this pixel; if
// the palette commit timer has just reached zero, that index - not the
// port the OUT instruction originally addressed - is what gets overwritten.
func (p *Ports) TryCommit(colorIndex uint8) {
	if p.paletteCommit && p.paletteCommitTimer == 0 {
		p.palette[colorIndex&0x0f] = p.hwColor
		p.paletteCommit = false
	}
}

// commitOut applies the captured OUT instruction's effect: the synchronous
// port-write handler the out-commit timer defers to.
func (p *Ports) commitOut() {
	if !p.pending.valid {
		return
	}
	port, value := p.pending.port, p.pending.value
	p.pending.valid = false

	switch {
	case port == PortKeyboardCW:
		p.writeKeyboardCW(value)
	case port == PortKeyboardPA:
		p.pa = value
	case port == PortVideoPB:
		p.pb2 = value
		p.brdColorIdx = value & 0x0f
		p.reqDisplayMode = value&0x10 != 0
	case isPaletteWrite(port):
		p.hwColor = value
	case port >= PortTimerBase && port <= PortTimerEnd:
		if p.tmr != nil {
			p.tmr.Write(port, value)
		}
	case port == PortPSGSelect:
		if p.psg != nil {
			p.psg.SelectRegister(value)
		}
	case port == PortPSGData:
		if p.psg != nil {
			p.psg.WriteRegister(value)
		}
	case port == PortFDCStatusCommand, port == PortFDCTrack, port == PortFDCSector, port == PortFDCData, port == PortFDCSystem:
		if p.fdc != nil {
			p.fdc.Write(port, value)
		}
	case port == PortJoystick0:
		p.joystick0 = value
	case port == PortJoystick1:
		p.joystick1 = value
	default:
		if index, ok := isRAMDiskModeWrite(port); ok && p.mem != nil {
			p.mem.SetRAMDiskMode(index, value)
		}
	}
}

// writeKeyboardCW implements the 8255-style control-word port: a write with
// bit 7 clear is a bit-set/reset command against port C, otherwise it's a
// mode-set that also clears PA/PB/PC.
func (p *Ports) writeKeyboardCW(value uint8) {
	if value&0x80 == 0 {
		bit := (value >> 1) & 0x07
		if value&0x01 != 0 {
			p.pc |= 1 << bit
		} else {
			p.pc &^= 1 << bit
		}
		return
	}
	p.cw = value
	p.pa, p.pb, p.pc = 0, 0, 0
}

// LatchScroll is called by the rasterizer at the scroll commit window (the
// first 16 pixels of the first active line, pixel border_left+3) to sample
// port A into the active scroll index.
func (p *Ports) LatchScroll() {
	p.scrollIdx = p.pa
}

// ScrollIndex returns the currently latched scroll index (0xff means no
// scroll).
func (p *Ports) ScrollIndex() uint8 {
	return p.scrollIdx
}

// DisplayMode reports the active (committed) display mode: false for 256
// colour mode, true for 512 mode.
func (p *Ports) DisplayMode() bool {
	return p.displayMode
}

// BorderColorIndex returns the committed border colour index.
func (p *Ports) BorderColorIndex() uint8 {
	return p.brdColorIdx
}

// Palette returns a copy of the 16-entry runtime palette, each entry a
// Vector BBGGGRRR colour byte.
func (p *Ports) Palette() [16]uint8 {
	return p.palette
}

// SetJoystick updates one of the two joystick latches from the host. index
// selects joystick 0 or 1; 0xff means "no input".
func (p *Ports) SetJoystick(index int, value uint8) {
	if index == 0 {
		p.joystick0 = value
	} else {
		p.joystick1 = value
	}
}

// Ruslat reports the current keyboard-language latch state (false =
// Latin, true = Cyrillic) and its 8-bit press history.
func (p *Ports) Ruslat() (latched bool, history uint8) {
	return p.ruslat, p.ruslatHistory
}

// ToggleRuslat flips the language latch and records the toggle in the
// history byte, driven by the keyboard's RUS/LAT key.
func (p *Ports) ToggleRuslat() {
	p.ruslat = !p.ruslat
	p.ruslatHistory <<= 1
	if p.ruslat {
		p.ruslatHistory |= 1
	}
}

// Beeper reports the keyboard PPI's port C bit 7: the line real
// Vector-06C software toggles directly via the CW bit-set/reset command
// for simple tone generation independent of the AY-3-8910, and the
// signal the audio mixer sums as its "beeper" term.
func (p *Ports) Beeper() bool {
	return p.pc&0x80 != 0
}
