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

package psg_test

import (
	"testing"

	"github.com/parallelno/vector06c-core/hardware/psg"
	"github.com/parallelno/vector06c-core/test"
)

func TestRegisterSelectAndWriteRoundTrips(t *testing.T) {
	p := psg.NewPSG()
	p.SelectRegister(psg.RegVolumeA)
	p.WriteRegister(0x0f)
	p.SelectRegister(psg.RegVolumeA)
	test.ExpectEquality(t, p.ReadRegister(), uint8(0x0f))
}

func TestSelectRegisterMasksToFourBits(t *testing.T) {
	p := psg.NewPSG()
	p.SelectRegister(0xff) // only the low nibble (register 15) is addressable
	p.WriteRegister(0x55)
	p.SelectRegister(psg.RegPortB)
	test.ExpectEquality(t, p.ReadRegister(), uint8(0x55))
}

// newGatedTonePSG wires tone channel A to the given period, enables only
// its tone source in the mixer (noise and channels B/C disabled), and sets
// its volume to maximum.
func newGatedTonePSG(period uint16) *psg.PSG {
	p := psg.NewPSG()
	p.SelectRegister(psg.RegToneAFine)
	p.WriteRegister(uint8(period))
	p.SelectRegister(psg.RegToneACoarse)
	p.WriteRegister(uint8(period >> 8))
	p.SelectRegister(psg.RegMixer)
	p.WriteRegister(0x3e) // tone A enabled, everything else disabled
	p.SelectRegister(psg.RegVolumeA)
	p.WriteRegister(0x0f)
	return p
}

func TestToneChannelGatesMixerOutput(t *testing.T) {
	p := newGatedTonePSG(2)

	// period 2: the first tick doesn't reach the period, so the channel is
	// still silent (Output starts false and the mixer gates on it).
	test.ExpectEquality(t, p.Clock(), float64(0))
	// the second tick reaches the period and toggles Output high.
	test.ExpectEquality(t, p.Clock(), float64(1))
}

func TestMixerBothSourcesDisabledIsAlwaysAudible(t *testing.T) {
	p := psg.NewPSG()
	p.SelectRegister(psg.RegMixer)
	p.WriteRegister(0x3f) // tone and noise disabled for every channel
	p.SelectRegister(psg.RegVolumeA)
	p.WriteRegister(0x08)

	// with both gating sources disabled the channel is never silenced, so
	// the sample is just its fixed volume level looked up in the DAC table.
	test.ExpectEquality(t, p.Clock(), 0.1812)
}

func TestEnvelopeVolumeUsesEnvelopeGenerator(t *testing.T) {
	p := psg.NewPSG()
	p.SelectRegister(psg.RegMixer)
	p.WriteRegister(0x3f) // always audible, isolates the envelope's value
	p.SelectRegister(psg.RegEnvelopeFine)
	p.WriteRegister(1)
	p.SelectRegister(psg.RegVolumeA)
	p.WriteRegister(0x10) // bit 4 selects the envelope rather than a fixed level
	p.SelectRegister(psg.RegEnvelopeShape)
	p.WriteRegister(0x0d) // CONT|ATT|HOLD, ALT clear: attacking ramp that holds at the top

	first := p.Clock()
	second := p.Clock()
	test.ExpectInequality(t, first, second)
}

// newShapedEnvelopePSG builds a PSG whose only audible source is the
// envelope generator driving channel A, with the given raw shape register
// value, so two instances can be compared tick-for-tick.
func newShapedEnvelopePSG(shape uint8) *psg.PSG {
	p := psg.NewPSG()
	p.SelectRegister(psg.RegMixer)
	p.WriteRegister(0x3f)
	p.SelectRegister(psg.RegEnvelopeFine)
	p.WriteRegister(2)
	p.SelectRegister(psg.RegVolumeA)
	p.WriteRegister(0x10)
	p.SelectRegister(psg.RegEnvelopeShape)
	p.WriteRegister(shape)
	return p
}

func TestEnvelopeShapeNormalizesLowCodes(t *testing.T) {
	raw := newShapedEnvelopePSG(0x02)
	normalized := newShapedEnvelopePSG(0x09)

	for i := 0; i < 40; i++ {
		test.ExpectEquality(t, raw.Clock(), normalized.Clock())
	}
}

func TestEnvelopeShapeNormalizesHighCodes(t *testing.T) {
	raw := newShapedEnvelopePSG(0x05)
	normalized := newShapedEnvelopePSG(0x0f)

	for i := 0; i < 40; i++ {
		test.ExpectEquality(t, raw.Clock(), normalized.Clock())
	}
}

// newGatedNoisePSG wires the noise generator to channel A only, with tone
// and channels B/C disabled entirely.
func newGatedNoisePSG() *psg.PSG {
	p := psg.NewPSG()
	p.SelectRegister(psg.RegMixer)
	p.WriteRegister(0x37) // tone disabled everywhere, noise enabled on A only
	p.SelectRegister(psg.RegVolumeA)
	p.WriteRegister(0x0f)
	return p
}

func TestNoiseGeneratorIsDeterministic(t *testing.T) {
	a := newGatedNoisePSG()
	b := newGatedNoisePSG()

	for i := 0; i < 20; i++ {
		test.ExpectEquality(t, a.Clock(), b.Clock())
	}
}

func TestResetSilencesEveryChannel(t *testing.T) {
	p := newGatedTonePSG(1)
	p.Clock() // advance state so tone/mixer registers are non-trivial
	p.Reset()

	p.SelectRegister(psg.RegVolumeA)
	test.ExpectEquality(t, p.ReadRegister(), uint8(0))
	test.ExpectEquality(t, p.Clock(), float64(0))
}

func TestRateBridgeAveragesAcrossTheAccumulationWindow(t *testing.T) {
	p := newGatedTonePSG(1)
	rb := psg.NewRateBridge(p)

	// 7*14 = 98 >= 96: exactly one AY tick this call. Tone period 1 toggles
	// Output high on that single tick.
	s1 := rb.Clock(14)
	test.ExpectEquality(t, s1, float64(1))

	// 7*1 = 7, accumulator carries 2 from before: 9 < 96, no AY tick at
	// all, so the bridge must return the previous sample unchanged.
	s2 := rb.Clock(1)
	test.ExpectEquality(t, s2, s1)

	// 7*13 = 91, accumulator carries 9: 100 >= 96, one more AY tick, which
	// toggles Output back low.
	s3 := rb.Clock(13)
	test.ExpectEquality(t, s3, float64(0))
}
