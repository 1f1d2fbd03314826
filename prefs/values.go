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

package prefs

import (
	"fmt"
	"strconv"
)

// Bool is a boolean Preference. The zero value is false.
type Bool struct {
	value bool
}

// Set implements Preference. Accepts bool or a string parseable by
// strconv.ParseBool.
func (b *Bool) Set(v Value) error {
	switch w := v.(type) {
	case bool:
		b.value = w
	case string:
		p, err := strconv.ParseBool(w)
		if err != nil {
			return fmt.Errorf("prefs: not a bool: %v", v)
		}
		b.value = p
	default:
		return fmt.Errorf("prefs: not a bool: %v", v)
	}
	return nil
}

// Get returns the current value.
func (b *Bool) Get() bool { return b.value }

// String implements Preference.
func (b *Bool) String() string {
	return strconv.FormatBool(b.value)
}

// Int is an integer Preference.
type Int struct {
	value int
}

// Set implements Preference. Accepts int or a string parseable by
// strconv.Atoi. A float64 argument (as produced by, eg, JSON) is rejected -
// prefs are typed and do not silently truncate.
func (i *Int) Set(v Value) error {
	switch w := v.(type) {
	case int:
		i.value = w
	case string:
		p, err := strconv.Atoi(w)
		if err != nil {
			return fmt.Errorf("prefs: not an int: %v", v)
		}
		i.value = p
	default:
		return fmt.Errorf("prefs: not an int: %v", v)
	}
	return nil
}

// Get returns the current value.
func (i *Int) Get() int { return i.value }

// String implements Preference.
func (i *Int) String() string {
	return strconv.Itoa(i.value)
}

// Float is a floating point Preference.
type Float struct {
	value float64
}

// Set implements Preference. Accepts float64 or a string parseable by
// strconv.ParseFloat.
func (f *Float) Set(v Value) error {
	switch w := v.(type) {
	case float64:
		f.value = w
	case string:
		p, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return fmt.Errorf("prefs: not a float: %v", v)
		}
		f.value = p
	default:
		return fmt.Errorf("prefs: not a float: %v", v)
	}
	return nil
}

// Get returns the current value.
func (f *Float) Get() float64 { return f.value }

// String implements Preference.
func (f *Float) String() string {
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

// String is a string Preference.
type String struct {
	value  string
	maxLen int
}

// SetMaxLen imposes a maximum length on the value, cropping it immediately
// if it is currently longer. A value of zero removes the limit, but does not
// restore a string previously cropped.
func (s *String) SetMaxLen(n int) {
	s.maxLen = n
	s.crop()
}

func (s *String) crop() {
	if s.maxLen > 0 && len(s.value) > s.maxLen {
		s.value = s.value[:s.maxLen]
	}
}

// Set implements Preference.
func (s *String) Set(v Value) error {
	switch w := v.(type) {
	case string:
		s.value = w
	default:
		return fmt.Errorf("prefs: not a string: %v", v)
	}
	s.crop()
	return nil
}

// Get returns the current value.
func (s *String) Get() string { return s.value }

// String implements Preference.
func (s *String) String() string {
	return s.value
}
