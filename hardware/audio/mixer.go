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

package audio

// RingSize is the fixed capacity of the sample ring.
const RingSize = 4000

// Watermarks gate the adaptive resampler. LowWatermark and
// HighWatermark are the literal thresholds named in 's prose
// ("buffering < 1000" / "buffering > 3000"); TargetWatermark is the
// reference fill level from 's type description and isn't consulted by
// any threshold check, only exposed for host diagnostics.
const (
	LowWatermark    = 1000
	TargetWatermark = 2000
	HighWatermark   = 3000
)

// initialDownsampleRate converts the 1.5MHz mix rate to roughly 50kHz
//.
const initialDownsampleRate = 30

// ClockSource is the slice of hardware/timer.Timer and
// hardware/psg.RateBridge that the mixer drives each cycle.
type ClockSource interface {
	Clock(cycles int) float64
}

// Mixer is the audio ring and adaptive resampler.
type Mixer struct {
	timer ClockSource
	ay    ClockSource

	muted bool

	accum          float64
	sampleCount    int
	downsampleRate int
	lastSample     float32

	ring     [RingSize]float32
	producer int
	consumer int
}

// NewMixer is the preferred method of initialisation for the Mixer type.
func NewMixer(timer, ay ClockSource) *Mixer {
	m := &Mixer{timer: timer, ay: ay}
	m.Reset()
	return m
}

// Reset returns the mixer to its power-on state, discarding any buffered
// samples.
func (m *Mixer) Reset() {
	m.accum = 0
	m.sampleCount = 0
	m.downsampleRate = initialDownsampleRate
	m.lastSample = 0
	m.ring = [RingSize]float32{}
	m.producer = 0
	m.consumer = 0
}

// SetMuted applies the "mute scalar": while muted, mixed
// samples are silenced before they reach the accumulator, but the timer
// and PSG are still clocked so register write timing stays correct.
func (m *Mixer) SetMuted(muted bool) {
	m.muted = muted
}

// Clock iterates cycles ticks, mixing timer.Clock(1) + ay.Clock(2) +
// beeper each tick and feeding the result into the downsample accumulator.
// When optimize is true, the timer and PSG are still clocked so their
// register timing stays correct, but downsampling and ring writes are
// suppressed entirely.
func (m *Mixer) Clock(cycles int, beeper float64, optimize bool) {
	for i := 0; i < cycles; i++ {
		sample := m.timer.Clock(1) + m.ay.Clock(2) + beeper
		if m.muted {
			sample = 0
		}
		if optimize {
			continue
		}

		m.accum += sample
		m.sampleCount++
		if m.sampleCount < m.downsampleRate {
			continue
		}

		avg := float32(m.accum / float64(m.sampleCount))
		m.accum = 0
		m.sampleCount = 0
		m.lastSample = avg
		m.ring[m.producer%RingSize] = avg
		m.producer++
	}
}

// Buffering reports the number of samples currently waiting between the
// producer and consumer indices.
func (m *Mixer) Buffering() int {
	return m.producer - m.consumer
}

// LastSample returns the most recently emitted (or repeated) sample.
func (m *Mixer) LastSample() float32 {
	return m.lastSample
}

// DownsampleRate returns the mixer's current adaptive downsample divisor,
// for host diagnostics and the debugger's hardware stats request.
func (m *Mixer) DownsampleRate() int {
	return m.downsampleRate
}

// ReadSamples returns n samples from the consumer index and adapts the
// downsample rate's three buffering regimes.
func (m *Mixer) ReadSamples(n int) []float32 {
	out := make([]float32, n)

	if m.Buffering() < LowWatermark {
		for i := range out {
			out[i] = m.lastSample
		}
		m.consumer += n
		if m.downsampleRate > 1 {
			m.downsampleRate--
		}
		return out
	}

	for i := 0; i < n; i++ {
		out[i] = m.ring[(m.consumer+i)%RingSize]
	}
	m.consumer += n

	if m.Buffering() > HighWatermark {
		m.consumer += n
		m.downsampleRate++
	}

	return out
}
