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

package keyboard_test

import (
	"testing"

	"github.com/parallelno/vector06c-core/hardware/keyboard"
	"github.com/parallelno/vector06c-core/test"
)

func TestReadAllRowsDeselectedIsAllOnes(t *testing.T) {
	k := keyboard.NewKeyboard()
	test.ExpectEquality(t, k.Read(0xff), uint8(0xff))
}

func TestKeyDownClearsCorrespondingBit(t *testing.T) {
	k := keyboard.NewKeyboard()
	k.KeyEvent(0, true) // row 0, bit 0
	test.ExpectEquality(t, k.Read(0xfe), uint8(0xfe))
	test.ExpectEquality(t, k.Read(0xff), uint8(0xff))
}

func TestKeyUpRestoresBit(t *testing.T) {
	k := keyboard.NewKeyboard()
	k.KeyEvent(0, true)
	k.KeyEvent(0, false)
	test.ExpectEquality(t, k.Read(0xfe), uint8(0xff))
}

func TestMultipleSelectedRowsAreCombined(t *testing.T) {
	k := keyboard.NewKeyboard()
	k.KeyEvent(0, true) // row 0 bit 0
	k.KeyEvent(9, true) // row 1 bit 1
	test.ExpectEquality(t, k.Read(0xfc), uint8(^uint8(0x03)))
}

func TestF11KeyUpProducesReset(t *testing.T) {
	k := keyboard.NewKeyboard()
	test.ExpectEquality(t, k.KeyEvent(keyboard.ScancodeF11, true), keyboard.None)
	test.ExpectEquality(t, k.KeyEvent(keyboard.ScancodeF11, false), keyboard.Reset)
}

func TestF12KeyUpProducesRestart(t *testing.T) {
	k := keyboard.NewKeyboard()
	test.ExpectEquality(t, k.KeyEvent(keyboard.ScancodeF12, false), keyboard.Restart)
}

func TestModifiersReportLiveState(t *testing.T) {
	k := keyboard.NewKeyboard()
	k.SS(true)
	k.RUS(true)
	ss, us, rus := k.Modifiers()
	test.ExpectEquality(t, ss, true)
	test.ExpectEquality(t, us, false)
	test.ExpectEquality(t, rus, true)
}

func TestResetClearsMatrixAndModifiers(t *testing.T) {
	k := keyboard.NewKeyboard()
	k.KeyEvent(0, true)
	k.US(true)
	k.Reset()
	test.ExpectEquality(t, k.Read(0xfe), uint8(0xff))
	_, us, _ := k.Modifiers()
	test.ExpectEquality(t, us, false)
}
