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

// Package preferences collects the handful of persistent toggles the core
// exposes: whether CPU/memory power-on state is randomised, whether the
// RAM-disk region is cleared on reset, and the headless fast-execution
// toggles (the OPTIMIZE and BORDER_FILL requests).
package preferences

import (
	"os"
	"path/filepath"

	"github.com/parallelno/vector06c-core/prefs"
)

// Preferences bundles every persistent toggle the core consults.
type Preferences struct {
	dsk *prefs.Disk

	// RandomState controls whether CPU registers and main RAM power on to
	// pseudo-random content (true, matching real SRAM) or to all-zero
	// (false, useful for reproducible regression tests).
	RandomState prefs.Bool

	// RAMDiskClearAfterRestart controls whether the 2048KiB RAM-disk region
	// is zeroed by Memory.Reset (the RESET path); RESTART leaves it as is.
	RAMDiskClearAfterRestart prefs.Bool

	// Optimize and BorderFill mirror the OPTIMIZE/BORDER_FILL request tags:
	// when Optimize is set the audio mixer skips downsampling/ring writes,
	// in the interest of headless execution speed. BorderFill is stored and
	// persisted, but the rasterizer does not read it: the border is painted
	// whatever its value.
	Optimize   prefs.Bool
	BorderFill prefs.Bool
}

// DefaultPrefsFile returns the path NewPreferences uses when no explicit
// path is requested - a "vector06c_prefs" file in the user's config
// directory.
func DefaultPrefsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "vector06c", "prefs")
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The backing file is created (with defaults) if it
// doesn't exist yet.
func NewPreferences() (*Preferences, error) {
	return newPreferences(DefaultPrefsFile())
}

func newPreferences(filename string) (*Preferences, error) {
	p := &Preferences{}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, err
	}

	dsk, err := prefs.NewDisk(filename)
	if err != nil {
		return nil, err
	}
	p.dsk = dsk

	p.SetDefaults()

	if err := dsk.Add("random.state", &p.RandomState); err != nil {
		return nil, err
	}
	if err := dsk.Add("ramdisk.clearafterrestart", &p.RAMDiskClearAfterRestart); err != nil {
		return nil, err
	}
	if err := dsk.Add("emulation.optimize", &p.Optimize); err != nil {
		return nil, err
	}
	if err := dsk.Add("emulation.borderfill", &p.BorderFill); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults resets every preference to its out-of-the-box value.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.RAMDiskClearAfterRestart.Set(false)
	p.Optimize.Set(false)
	p.BorderFill.Set(true)
}

// Load re-reads the preferences file.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save writes the preferences file.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
