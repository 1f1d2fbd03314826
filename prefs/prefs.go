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

// Package prefs implements a small typed key/value preferences file, used by
// the core for its handful of persistent toggles: RAM-disk
// clear-after-restart, the headless optimize/border-fill flags, and CPU
// power-on register randomization.
//
// Entries are stored one per line as "label :: value", sorted by label, with
// a warning boilerplate comment at the top of the file.
package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is written as the first line of every saved preferences
// file.
const WarningBoilerPlate = "# this file is automatically generated - editing it is possible but not advised"

// Value is the dynamic type stored and retrieved from a Preference.
type Value interface{}

// Preference is implemented by every typed preference value (Bool, Int,
// Float, String) and by the Generic adaptor.
type Preference interface {
	Set(Value) error
	String() string
}

// Disk is a collection of named Preference values backed by a file on disk.
type Disk struct {
	filename string

	// bound holds preferences that have been Add()ed to this Disk instance.
	bound map[string]Preference

	// raw holds the textual value of every label last read from disk,
	// whether or not it has been bound in this instance. This is what lets
	// two different Disk instances opened on the same file, each binding a
	// different subset of labels, merge their output on Save() instead of
	// clobbering one another.
	raw map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type. It is
// not an error for the file not to exist yet - it is created on first Save().
func NewDisk(filename string) (*Disk, error) {
	dsk := &Disk{
		filename: filename,
		bound:    make(map[string]Preference),
		raw:      make(map[string]string),
	}

	if err := dsk.readRaw(); err != nil {
		return nil, err
	}

	return dsk, nil
}

func (dsk *Disk) readRaw() error {
	f, err := os.Open(dsk.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, " :: ", 2)
		if len(parts) != 2 {
			continue
		}
		dsk.raw[parts[0]] = parts[1]
	}

	return scanner.Err()
}

// Add registers a Preference under label. If the file already had a value
// for label, it is applied immediately.
func (dsk *Disk) Add(label string, p Preference) error {
	if _, ok := dsk.bound[label]; ok {
		return fmt.Errorf("prefs: %s already added", label)
	}

	dsk.bound[label] = p

	if v, ok := dsk.raw[label]; ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", label, err)
		}
	}

	return nil
}

// Load re-reads the file and applies every currently bound Preference.
func (dsk *Disk) Load() error {
	dsk.raw = make(map[string]string)
	if err := dsk.readRaw(); err != nil {
		return err
	}

	for label, p := range dsk.bound {
		if v, ok := dsk.raw[label]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", label, err)
			}
		}
	}

	return nil
}

// Save writes every known label (bound in this instance, or merely read from
// disk by a prior Load/NewDisk) to the file, sorted alphabetically.
func (dsk *Disk) Save() error {
	merged := make(map[string]string, len(dsk.raw)+len(dsk.bound))
	for label, v := range dsk.raw {
		merged[label] = v
	}
	for label, p := range dsk.bound {
		merged[label] = p.String()
	}

	labels := make([]string, 0, len(merged))
	for label := range merged {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, label := range labels {
		s.WriteString(fmt.Sprintf("%s :: %s\n", label, merged[label]))
	}

	if err := os.WriteFile(dsk.filename, []byte(s.String()), 0o644); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	dsk.raw = merged

	return nil
}
