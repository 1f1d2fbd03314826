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

package timer_test

import (
	"testing"

	"github.com/parallelno/vector06c-core/hardware/timer"
	"github.com/parallelno/vector06c-core/test"
)

// configure writes a control word for channel 0, RW=3 (LSB then MSB), the
// given mode, binary counting, then loads count via two data-port writes.
func configure(tmr *timer.Timer, mode int, count uint16) {
	cw := uint8(0x00<<6 | 0x03<<4 | uint8(mode)<<1)
	tmr.Write(timer.PortControl, cw)
	tmr.Write(timer.PortCounter0, uint8(count))
	tmr.Write(timer.PortCounter0, uint8(count>>8))
}

func TestCounterLoadsBeforeEnabling(t *testing.T) {
	tmr := timer.NewTimer()
	configure(tmr, 0, 4)

	// load-to-enable delay (3 ticks) means the first few clocks don't
	// decrement the counter at all.
	tmr.Clock(3)
	test.ExpectEquality(t, tmr.Output(0), false)
}

func TestMode0ReachesTerminalCount(t *testing.T) {
	tmr := timer.NewTimer()
	configure(tmr, 0, 2)

	tmr.Clock(3) // consume the setup delay
	test.ExpectEquality(t, tmr.Output(0), false)
	tmr.Clock(1) // value 2 -> 1
	test.ExpectEquality(t, tmr.Output(0), false)
	tmr.Clock(1) // value 1 -> 0: output goes high
	test.ExpectEquality(t, tmr.Output(0), true)
}

func TestMode1FreeRuns(t *testing.T) {
	tmr := timer.NewTimer()
	configure(tmr, 1, 2)
	tmr.Clock(3 + 2) // setup delay then two decrements to 0
	tmr.Clock(1)     // wraps back to reload
	// no assertion beyond "doesn't panic and keeps ticking" - mode 1's
	// output isn't otherwise specified beyond wrapping on zero.
	_ = tmr.Output(0)
}

func TestMode3TogglesOutputOnReload(t *testing.T) {
	tmr := timer.NewTimer()
	configure(tmr, 3, 4)
	tmr.Clock(3) // setup delay
	before := tmr.Output(0)
	tmr.Clock(1) // 4 -> 2, no toggle yet
	test.ExpectEquality(t, tmr.Output(0), before)
	tmr.Clock(1) // 2 <= dec(2): toggles and reloads
	test.ExpectInequality(t, tmr.Output(0), before)
}

func TestLatchForReadingFreezesValueAcrossReads(t *testing.T) {
	tmr := timer.NewTimer()
	configure(tmr, 0, 0x1234)
	tmr.Clock(3)

	// latch-select 0: RW field zero, SC=0.
	tmr.Write(timer.PortControl, 0x00)
	tmr.Clock(1) // LATCH_DELAY

	lo := tmr.Read(timer.PortCounter0)
	tmr.Clock(5) // counter keeps moving, but the latch must not
	hi := tmr.Read(timer.PortCounter0)

	got := uint16(hi)<<8 | uint16(lo)
	test.ExpectEquality(t, got, uint16(0x1234))
}

func TestBCDTranslatesLoadValue(t *testing.T) {
	tmr := timer.NewTimer()
	// 0x0010 packed BCD means decimal 10, not binary 16.
	configure(tmr, 0, 0x0010) // note: RW=3 writes binary 0x0010 as the raw bytes
	cw := uint8(0x00<<6 | 0x03<<4 | 0<<1 | 0x01) // same as configure but BCD bit set
	tmr.Write(timer.PortControl, cw)
	tmr.Write(timer.PortCounter0, 0x10)
	tmr.Write(timer.PortCounter0, 0x00)

	tmr.Clock(3) // setup delay
	tmr.Clock(9) // 10 -> 1 over nine ticks
	test.ExpectEquality(t, tmr.Output(0), false)
	tmr.Clock(1) // 1 -> 0: terminal count
	test.ExpectEquality(t, tmr.Output(0), true)
}

func TestReadBackCommandIsNoOp(t *testing.T) {
	tmr := timer.NewTimer()
	configure(tmr, 0, 4)
	tmr.Write(timer.PortControl, 0xc0) // SC=3
	// channel 0's configuration must be untouched.
	tmr.Clock(3)
	tmr.Clock(4)
	test.ExpectEquality(t, tmr.Output(0), true)
}
