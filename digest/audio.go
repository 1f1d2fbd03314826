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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"
)

// audioBufferLength is the chunk size samples are batched into before being
// folded into the running digest - arbitrary, but large enough to amortise
// the fixed sha1.Size header cost.
const audioBufferLength = 1024

// Audio chains a SHA-1 hash across successive batches of float32 PCM
// samples read from hardware/audio.Mixer, the same seeded-chaining scheme
// Video uses for frame buffers.
type Audio struct {
	digest [sha1.Size]byte
	buffer []byte
	fill   int
}

// NewAudio returns an Audio digest ready to accumulate samples.
func NewAudio() *Audio {
	a := &Audio{}
	a.buffer = make([]byte, len(a.digest)+audioBufferLength*4)
	a.fill = len(a.digest)
	return a
}

// Hash returns the current running digest as a hex string, with any
// partially filled batch folded in.
func (a *Audio) Hash() string {
	if a.fill == len(a.digest) {
		return fmt.Sprintf("%x", a.digest)
	}
	copy(a.buffer, a.digest[:])
	return fmt.Sprintf("%x", sha1.Sum(a.buffer[:a.fill]))
}

// Reset zeroes the running digest and any partially filled batch.
func (a *Audio) Reset() {
	a.digest = [sha1.Size]byte{}
	a.fill = len(a.digest)
}

// Add folds samples into the running digest, flushing a batch each time
// the buffer fills.
func (a *Audio) Add(samples []float32) {
	for _, s := range samples {
		if a.fill+4 > len(a.buffer) {
			a.flush()
		}
		binary.LittleEndian.PutUint32(a.buffer[a.fill:], math.Float32bits(s))
		a.fill += 4
	}
}

func (a *Audio) flush() {
	copy(a.buffer, a.digest[:])
	a.digest = sha1.Sum(a.buffer[:a.fill])
	a.fill = len(a.digest)
}
