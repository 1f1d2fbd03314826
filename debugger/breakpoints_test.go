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

package debugger_test

import (
	"testing"

	"github.com/parallelno/vector06c-core/debugger"
	"github.com/parallelno/vector06c-core/test"
)

func TestNewStoreHasNoBreakpoints(t *testing.T) {
	s := debugger.NewStore()
	test.ExpectEquality(t, s.Len(), 0)
	test.ExpectEquality(t, len(s.All()), 0)
}

func TestCheckHitsOnAddressAndPageMatch(t *testing.T) {
	s := debugger.NewStore()
	s.Add(debugger.Breakpoint{
		Address:   0x1234,
		PageMask:  debugger.AllPages(),
		Status:    debugger.Active,
		Condition: debugger.ConditionAny,
	})

	snap := debugger.Snapshot{PC: 0x1234, Page: 0}
	hits := s.Check(snap)
	test.ExpectEquality(t, len(hits), 1)
	test.ExpectEquality(t, hits[0], 0)

	// a different PC never matches
	hits = s.Check(debugger.Snapshot{PC: 0x1235, Page: 0})
	test.ExpectEquality(t, len(hits), 0)
}

// TestDisabledBreakpointNeverHits checks that only Active breakpoints
// participate in Check.
func TestDisabledBreakpointNeverHits(t *testing.T) {
	s := debugger.NewStore()
	s.Add(debugger.Breakpoint{
		Address:   0x1234,
		PageMask:  debugger.AllPages(),
		Status:    debugger.Disabled,
		Condition: debugger.ConditionAny,
	})

	hits := s.Check(debugger.Snapshot{PC: 0x1234, Page: 0})
	test.ExpectEquality(t, len(hits), 0)
}

// TestPageMaskRestrictsContext: a breakpoint whose mask only covers page 0
// (main RAM) must not fire while a RAM-disk page is active, even at the
// same PC.
func TestPageMaskRestrictsContext(t *testing.T) {
	s := debugger.NewStore()
	var mainRAMOnly debugger.PageMask
	mainRAMOnly[0] = true

	s.Add(debugger.Breakpoint{
		Address:   0x1234,
		PageMask:  mainRAMOnly,
		Status:    debugger.Active,
		Condition: debugger.ConditionAny,
	})

	test.ExpectEquality(t, len(s.Check(debugger.Snapshot{PC: 0x1234, Page: 0})), 1)
	// page 5 = 1 + page_ram(0) + 4*disk(1): a RAM-disk context the mask
	// doesn't cover.
	test.ExpectEquality(t, len(s.Check(debugger.Snapshot{PC: 0x1234, Page: 5})), 0)
}

// TestAutoDeleteFiresExactlyOnce checks that a single step landing on the
// breakpoint's address reports a hit exactly once; with autoDel=true the
// second step at the same address must not.
func TestAutoDeleteFiresExactlyOnce(t *testing.T) {
	s := debugger.NewStore()
	s.Add(debugger.Breakpoint{
		Address:   0x4000,
		PageMask:  debugger.AllPages(),
		Status:    debugger.Active,
		Condition: debugger.ConditionAny,
		AutoDel:   true,
	})

	snap := debugger.Snapshot{PC: 0x4000, Page: 0}
	test.ExpectEquality(t, len(s.Check(snap)), 1)
	test.ExpectEquality(t, s.Len(), 0)
	test.ExpectEquality(t, len(s.Check(snap)), 0)
}

// TestConditionEvaluatesOperandValue exercises a non-ConditionAny
// breakpoint: break when register A exceeds 0x10.
func TestConditionEvaluatesOperandValue(t *testing.T) {
	s := debugger.NewStore()
	s.Add(debugger.Breakpoint{
		Address:   0x2000,
		PageMask:  debugger.AllPages(),
		Status:    debugger.Active,
		Operand:   debugger.OperandA,
		Condition: debugger.ConditionGreater,
		Value:     0x10,
	})

	test.ExpectEquality(t, len(s.Check(debugger.Snapshot{PC: 0x2000, Page: 0, A: 0x05})), 0)
	test.ExpectEquality(t, len(s.Check(debugger.Snapshot{PC: 0x2000, Page: 0, A: 0x11})), 1)
}

// TestPSWOperandCombinesAAndF exercises the one composite operand: PSW
// packs A in the high byte and F in the low byte, the order PUSH PSW
// writes them to the stack.
func TestPSWOperandCombinesAAndF(t *testing.T) {
	s := debugger.NewStore()
	s.Add(debugger.Breakpoint{
		Address:   0x3000,
		PageMask:  debugger.AllPages(),
		Status:    debugger.Active,
		Operand:   debugger.OperandPSW,
		Condition: debugger.ConditionEqual,
		Value:     0xAB02,
	})

	test.ExpectEquality(t, len(s.Check(debugger.Snapshot{PC: 0x3000, Page: 0, A: 0xAB, F: 0x02})), 1)
	test.ExpectEquality(t, len(s.Check(debugger.Snapshot{PC: 0x3000, Page: 0, A: 0xAB, F: 0x03})), 0)
}

func TestDeleteAndDeleteAll(t *testing.T) {
	s := debugger.NewStore()
	s.Add(debugger.Breakpoint{Address: 1})
	s.Add(debugger.Breakpoint{Address: 2})
	test.ExpectEquality(t, s.Len(), 2)

	test.ExpectSuccess(t, s.Delete(0))
	test.ExpectEquality(t, s.Len(), 1)

	bp, err := s.Get(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, bp.Address, uint16(2))

	test.ExpectFailure(t, s.Delete(5))

	s.DeleteAll()
	test.ExpectEquality(t, s.Len(), 0)
}
