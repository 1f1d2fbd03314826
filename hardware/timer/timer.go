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

package timer

// Port offsets within the four-port block hardware/ports reserves for the
// timer; absolute addresses are ports.PortTimerBase+offset.
const (
	PortCounter0 = 0
	PortCounter1 = 1
	PortCounter2 = 2
	PortControl  = 3
)

// Timer is the i8253: three independent counters sharing one control-word
// port.
type Timer struct {
	counters [3]Counter
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	tmr := &Timer{}
	tmr.Reset()
	return tmr
}

// Reset returns all three counters to their power-on state.
func (tmr *Timer) Reset() {
	for i := range tmr.counters {
		tmr.counters[i].reset()
	}
}

// Write implements ports.TimerDevice. port is an absolute port address;
// only the low two bits (the offset within the timer's four-port block)
// are consulted.
func (tmr *Timer) Write(port uint8, value uint8) {
	switch port & 0x03 {
	case PortControl:
		tmr.controlWord(value)
	default:
		tmr.counters[port&0x03].write(value)
	}
}

// Read implements ports.TimerDevice. The control-word port is write-only
// on a real i8253; reading it returns 0xff.
func (tmr *Timer) Read(port uint8) uint8 {
	if port&0x03 == PortControl {
		return 0xff
	}
	return tmr.counters[port&0x03].read()
}

// controlWord decodes SC/RW/mode/BCD and either arms a read latch or
// reconfigures the selected counter's write/mode state machine. The SC=3
// "read-back" encoding isn't used by any mode this counter implements, so
// it's a no-op.
func (tmr *Timer) controlWord(cw uint8) {
	sc := cw >> 6
	if sc == 3 {
		return
	}

	rw := int((cw >> 4) & 0x03)
	if rw == 0 {
		tmr.counters[sc].latchForReading()
		return
	}

	modeRaw := (cw >> 1) & 0x07
	mode := int(modeRaw)
	if mode == 6 {
		mode = 2
	} else if mode == 7 {
		mode = 3
	}
	bcd := cw&0x01 != 0

	tmr.counters[sc].controlWord(rw, mode, bcd)
}

// Clock advances every counter by cycles ticks and returns the average of
// the three channels' output bits as a float in [0,1], the signal the audio
// mixer sums into its sample.
func (tmr *Timer) Clock(cycles int) float64 {
	var last float64
	for i := 0; i < cycles; i++ {
		var sum float64
		for c := range tmr.counters {
			tmr.counters[c].tick()
			if tmr.counters[c].output {
				sum++
			}
		}
		last = sum / float64(len(tmr.counters))
	}
	return last
}

// Output reports the current output bit of the given channel (0-2), for
// inspection requests and tests.
func (tmr *Timer) Output(channel int) bool {
	return tmr.counters[channel].output
}
