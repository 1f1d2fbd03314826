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

package display_test

import (
	"testing"

	"github.com/parallelno/vector06c-core/hardware/display"
	"github.com/parallelno/vector06c-core/test"
)

// fakeIO is a minimal display.PortCommitter: no commit timers of its own,
// just enough state for the rasterizer to read back what it last wrote.
type fakeIO struct {
	scrollIdx   uint8
	displayMode bool
	borderIdx   uint8
	palette     [16]uint8
}

func (f *fakeIO) Tick()                      {}
func (f *fakeIO) TryCommit(colorIndex uint8) {}
func (f *fakeIO) LatchScroll()               {}
func (f *fakeIO) ScrollIndex() uint8         { return f.scrollIdx }
func (f *fakeIO) DisplayMode() bool          { return f.displayMode }
func (f *fakeIO) BorderColorIndex() uint8    { return f.borderIdx }
func (f *fakeIO) Palette() [16]uint8         { return f.palette }

// fakeMem is a minimal display.ScreenReader returning the same packed
// plane word regardless of offset, so a test can isolate the bit-assembly
// arithmetic from the row/column addressing arithmetic.
type fakeMem struct {
	word uint32
}

func (f *fakeMem) GetScreenBytes(offset uint16) uint32 { return f.word }

func TestBorderPixelColorMatchesVectorEncoding(t *testing.T) {
	io := &fakeIO{scrollIdx: 0xff, palette: [16]uint8{0: 0x07}}
	d := display.NewDisplay()
	d.Attach(io, &fakeMem{})

	d.MachineCycle() // first 16 pixels of line 0: all border

	// Vector colour 0x07 = 0b00000111 (BBGGGRRR) -> R=224, G=0, B=0,
	// A=255, packed as memory-order [R,G,B,A] on a little-endian host.
	test.ExpectEquality(t, d.Snapshot(false).Pixels[0], uint32(0xff0000e0))
}

func TestActiveAreaAssemblesColorIndexFromAllFourPlanes(t *testing.T) {
	io := &fakeIO{scrollIdx: 0xff, palette: [16]uint8{15: 0x3f}}
	// plane0 bit7, plane1 bit6, plane2 bit5, plane3 bit4: every plane
	// contributes its bit, so the assembled 4-bit colour index is 0xf.
	mem := &fakeMem{word: 0x80402010}
	d := display.NewDisplay()
	d.Attach(io, mem)

	// 1920 machine cycles (768*40/16) reach line 40 pixel 0; 9 more (144
	// pixels) land the cycle that writes pixel (40, 128) - the first
	// active-area pixel, index 40*768+128 = 30848.
	for i := 0; i < 1920+9; i++ {
		d.MachineCycle()
	}

	// palette[0xf] = 0x3f = 0b00111111 -> R=224, G=224, B=0, A=255.
	test.ExpectEquality(t, d.Snapshot(false).Pixels[30848], uint32(0xff00e0e0))
}

func TestIRQAssertedExactlyOnceAcrossTopBorder(t *testing.T) {
	io := &fakeIO{scrollIdx: 0xff}
	d := display.NewDisplay()
	d.Attach(io, &fakeMem{})

	count := 0
	for i := 0; i < 1920; i++ { // 768*40/16: one full top-border region
		if d.MachineCycle() {
			count++
		}
	}

	test.ExpectEquality(t, count, 1)
	test.ExpectEquality(t, d.FrameNumber(), 0)
}

func TestFrameWrapCopiesFrontBufferToBackAndIncrementsFrameNumber(t *testing.T) {
	io := &fakeIO{scrollIdx: 0xff}
	d := display.NewDisplay()
	d.Attach(io, &fakeMem{})

	const cyclesPerFrame = display.FrameWidth * display.FrameHeight / 16
	for i := 0; i < cyclesPerFrame; i++ {
		d.MachineCycle()
	}

	test.ExpectEquality(t, d.FrameNumber(), 1)
	test.ExpectEquality(t, d.Snapshot(true), d.Snapshot(false))
}

func TestPositionTracksRasterCursor(t *testing.T) {
	io := &fakeIO{scrollIdx: 0xff}
	d := display.NewDisplay()
	d.Attach(io, &fakeMem{})

	d.MachineCycle()

	line, pixel := d.Position()
	test.ExpectEquality(t, line, 0)
	test.ExpectEquality(t, pixel, 16)
}

func TestResetBlanksFrameBuffersAndCursor(t *testing.T) {
	io := &fakeIO{scrollIdx: 0xff, palette: [16]uint8{0: 0x07}}
	d := display.NewDisplay()
	d.Attach(io, &fakeMem{})
	d.MachineCycle()

	d.Reset()

	test.ExpectEquality(t, d.FrameNumber(), 0)
	line, pixel := d.Position()
	test.ExpectEquality(t, line, 0)
	test.ExpectEquality(t, pixel, 0)
	test.ExpectEquality(t, d.Snapshot(false).Pixels[0], uint32(0))
}
