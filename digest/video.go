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
	"fmt"

	"github.com/parallelno/vector06c-core/hardware/display"
)

// Video chains a SHA-1 hash across successive display.FrameBuffer values.
// Each new frame's digest is seeded with the previous digest's bytes, so
// the final hash after N frames depends on the full sequence, not just the
// last frame.
type Video struct {
	digest  [sha1.Size]byte
	scratch []byte
}

// NewVideo returns a Video digest ready to accumulate frames.
func NewVideo() *Video {
	v := &Video{}
	v.scratch = make([]byte, len(v.digest)+display.FrameWidth*display.FrameHeight*4)
	return v
}

// Hash returns the current running digest as a hex string.
func (v *Video) Hash() string {
	return fmt.Sprintf("%x", v.digest)
}

// Reset zeroes the running digest, starting a fresh chain.
func (v *Video) Reset() {
	v.digest = [sha1.Size]byte{}
}

// Add folds one frame into the running digest.
func (v *Video) Add(frame display.FrameBuffer) {
	copy(v.scratch, v.digest[:])
	off := len(v.digest)
	for _, px := range frame.Pixels {
		v.scratch[off] = byte(px)
		v.scratch[off+1] = byte(px >> 8)
		v.scratch[off+2] = byte(px >> 16)
		v.scratch[off+3] = byte(px >> 24)
		off += 4
	}
	v.digest = sha1.Sum(v.scratch)
}
