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

package psg

// Envelope shape bits.
const (
	shapeHold = 0x01
	shapeAlt  = 0x02
	shapeAtt  = 0x04
	shapeCont = 0x08
)

// envelope is the AY's single envelope generator, shared by any channel
// whose volume register selects it.
type envelope struct {
	Period   uint16
	Count    uint16
	Position int
	Shape    uint8
	Holding  bool
}

// setShape applies a register-13 write: normalize the shape
// (0x00..0x03 -> 0x09 and 0x04..0x07 -> 0x0F) and reset position.
func (e *envelope) setShape(shape uint8) {
	switch {
	case shape <= 0x03:
		shape = 0x09
	case shape <= 0x07:
		shape = 0x0f
	}
	e.Shape = shape
	e.Position = 0
	e.Holding = false
}

func (e *envelope) attack() bool { return e.Shape&shapeAtt != 0 }
func (e *envelope) alt() bool    { return e.Shape&shapeAlt != 0 }
func (e *envelope) hold() bool   { return e.Shape&shapeHold != 0 }
func (e *envelope) cont() bool   { return e.Shape&shapeCont != 0 }

// tick advances the envelope's internal period counter and, once it wraps,
// steps Position: increment; on a position wrap, HOLD freezes
// at 0 or 15 by the parity of ATT^ALT, otherwise ALT is XORed into the
// ramp direction (modelled here as flipping the ATT bit, which is what
// value() reads direction from).
func (e *envelope) tick() {
	if e.Holding || e.Period == 0 {
		return
	}
	e.Count++
	if e.Count < e.Period {
		return
	}
	e.Count = 0
	e.Position++
	if e.Position <= 15 {
		return
	}
	e.Position = 0

	if e.hold() {
		e.Holding = true
		if e.attack() != e.alt() {
			e.Position = 15
		}
		return
	}
	if !e.cont() {
		e.Holding = true
		return
	}
	if e.alt() {
		e.Shape ^= shapeAtt
	}
}

// value returns the envelope's current 0-15 output level.
func (e *envelope) value() uint8 {
	if e.attack() {
		return uint8(e.Position)
	}
	return uint8(15 - e.Position)
}
