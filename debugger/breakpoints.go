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

package debugger

import (
	"fmt"

	"github.com/parallelno/vector06c-core/curated"
)

// Status is a breakpoint's lifecycle state.
type Status int

// The three breakpoint statuses. A Deleted breakpoint is indistinguishable
// from one that was never added - Store.Delete and an auto-delete hit both
// remove the entry outright rather than leaving a Deleted tombstone behind.
const (
	Disabled Status = iota
	Active
	Deleted
)

func (s Status) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Active:
		return "active"
	case Deleted:
		return "deleted"
	}
	return "?"
}

// PageMask selects which (main RAM, RAM-disk, page) execution contexts a
// breakpoint triggers in. Index 0 is main RAM; index 1+page_ram+4*disk is
// RAM-disk disk's page page_ram. A flat bitmap sized to the fixed 33
// contexts, rather than a composable list of banking targets, since the
// set of contexts is closed and small.
type PageMask [33]bool

// AllPages returns a mask with every context set, the default for a
// breakpoint that should fire regardless of the active RAM-disk mapping.
func AllPages() PageMask {
	var m PageMask
	for i := range m {
		m[i] = true
	}
	return m
}

// Breakpoint is one entry in a Store.
type Breakpoint struct {
	Address  uint16
	PageMask PageMask
	Status   Status
	AutoDel  bool

	Operand   Operand
	Condition Condition
	Value     int64

	Comment string
}

func (bp Breakpoint) String() string {
	if bp.Condition == ConditionAny {
		return fmt.Sprintf("PC=%#04x", bp.Address)
	}
	return fmt.Sprintf("PC=%#04x %s%s%#x", bp.Address, bp.Operand, bp.Condition, bp.Value)
}

// Store keeps every currently defined breakpoint and checks them against
// the execution state at each instruction boundary: a flat collection
// checked in order, with auto-delete removing an entry once it has fired.
type Store struct {
	breaks []Breakpoint
}

// NewStore is the preferred method of initialisation for Store.
func NewStore() *Store {
	return &Store{breaks: make([]Breakpoint, 0, 10)}
}

// Add appends a new breakpoint and returns its index.
func (s *Store) Add(bp Breakpoint) int {
	s.breaks = append(s.breaks, bp)
	return len(s.breaks) - 1
}

// Delete removes the breakpoint at index i.
func (s *Store) Delete(i int) error {
	if i < 0 || i >= len(s.breaks) {
		return curated.Errorf("breakpoint #%d is not defined", i)
	}
	s.breaks = append(s.breaks[:i], s.breaks[i+1:]...)
	return nil
}

// DeleteAll removes every breakpoint.
func (s *Store) DeleteAll() {
	s.breaks = s.breaks[:0]
}

// SetStatus changes the status of the breakpoint at index i.
func (s *Store) SetStatus(i int, status Status) error {
	if i < 0 || i >= len(s.breaks) {
		return curated.Errorf("breakpoint #%d is not defined", i)
	}
	s.breaks[i].Status = status
	return nil
}

// Get returns a copy of the breakpoint at index i.
func (s *Store) Get(i int) (Breakpoint, error) {
	if i < 0 || i >= len(s.breaks) {
		return Breakpoint{}, curated.Errorf("breakpoint #%d is not defined", i)
	}
	return s.breaks[i], nil
}

// All returns a copy of every currently defined breakpoint, for
// DEBUG_BREAKPOINT_GET_ALL.
func (s *Store) All() []Breakpoint {
	out := make([]Breakpoint, len(s.breaks))
	copy(out, s.breaks)
	return out
}

// Len returns the number of currently defined breakpoints.
func (s *Store) Len() int {
	return len(s.breaks)
}

// Check evaluates every active breakpoint against snap and returns the
// indices of those that hit, in store order. A hit auto-delete breakpoint
// is removed from the store before Check returns, so a second identical
// Check call never reports the same hit twice.
func (s *Store) Check(snap Snapshot) []int {
	var hits []int

	for i := range s.breaks {
		bp := &s.breaks[i]

		if bp.Status != Active {
			continue
		}
		if bp.Address != snap.PC {
			continue
		}
		if snap.Page < 0 || snap.Page >= len(bp.PageMask) || !bp.PageMask[snap.Page] {
			continue
		}
		if !evaluate(bp.Operand, bp.Condition, bp.Value, snap) {
			continue
		}

		hits = append(hits, i)
	}

	// remove auto-delete hits from highest index to lowest so earlier
	// indices in hits stay valid for the caller.
	for j := len(hits) - 1; j >= 0; j-- {
		if s.breaks[hits[j]].AutoDel {
			_ = s.Delete(hits[j])
		}
	}

	return hits
}
