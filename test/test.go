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

// Package test collects small assertion helpers shared by every package's
// _test.go files, so that test failures across the module read the same way.
package test

import (
	"math"
	"reflect"
	"testing"
)

// ExpectSuccess fails the test unless v is nil, a nil error, or true.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()

	switch w := v.(type) {
	case nil:
		return
	case error:
		if w != nil {
			t.Errorf("expected success, got error: %v", w)
		}
	case bool:
		if !w {
			t.Errorf("expected success, got false")
		}
	default:
		t.Errorf("expected success, got unexpected type %T", v)
	}
}

// ExpectFailure fails the test unless v is a non-nil error or false.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()

	switch w := v.(type) {
	case error:
		if w == nil {
			t.Errorf("expected failure, got nil error")
		}
	case bool:
		if w {
			t.Errorf("expected failure, got true")
		}
	default:
		t.Errorf("expected failure, got unexpected type %T", v)
	}
}

// ExpectEquality fails the test unless a and b are deeply equal.
func ExpectEquality(t *testing.T, a, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected equality: %v != %v", a, b)
	}
}

// ExpectInequality fails the test if a and b are deeply equal.
func ExpectInequality(t *testing.T, a, b interface{}) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Errorf("expected inequality: %v == %v", a, b)
	}
}

// ExpectApproximate fails the test unless a and b are within tolerance of
// one another.
func ExpectApproximate(t *testing.T, a, b, tolerance float64) {
	t.Helper()
	if math.Abs(a-b) > tolerance {
		t.Errorf("expected approximate equality: %v !~ %v (tolerance %v)", a, b, tolerance)
	}
}
