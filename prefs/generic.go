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

// Generic adapts an arbitrary pair of getter/setter closures to the
// Preference interface. Useful for composite preferences (eg. a breakpoint
// page-mask) that don't fit the Bool/Int/Float/String shapes.
type Generic struct {
	set func(Value) error
	get func() Value
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{set: set, get: get}
}

// Set implements Preference.
func (g *Generic) Set(v Value) error {
	return g.set(v)
}

// String implements Preference.
func (g *Generic) String() string {
	v := g.get()
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
