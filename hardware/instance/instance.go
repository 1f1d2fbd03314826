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

// Package instance defines those parts of the emulation that might change
// from instance to instance of the Machine type, but are not the Machine
// itself. Particularly useful when running more than one instance of the
// emulation in the same process (eg. a headless verification harness
// alongside a debugger session).
package instance

import (
	"github.com/parallelno/vector06c-core/hardware/preferences"
	"github.com/parallelno/vector06c-core/random"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Machine type, but is not the Machine
// itself.
type Instance struct {
	Prefs  *preferences.Preferences
	Random *random.Random
}

// NewInstance is the preferred method of initialisation for the Instance
// type. position is consulted by Random for seeding - typically the
// Machine's hardware/display.Display once it has been constructed.
func NewInstance(position random.Position) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(position),
	}

	var err error

	ins.Prefs, err = preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	return ins, nil
}

// Normalise ensures the Instance is in a known default state. Useful for
// regression testing where the initial state must be identical for every run
// of the test.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}
