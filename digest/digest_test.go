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

package digest_test

import (
	"testing"

	"github.com/parallelno/vector06c-core/digest"
	"github.com/parallelno/vector06c-core/hardware/display"
	"github.com/parallelno/vector06c-core/test"
)

func TestVideoDigestIsDeterministic(t *testing.T) {
	var frame display.FrameBuffer
	frame.Pixels[0] = 0xAABBCCDD

	a := digest.NewVideo()
	a.Add(frame)

	b := digest.NewVideo()
	b.Add(frame)

	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), "")
}

func TestVideoDigestDiffersOnDifferentFrames(t *testing.T) {
	var frame1, frame2 display.FrameBuffer
	frame2.Pixels[0] = 1

	a := digest.NewVideo()
	a.Add(frame1)

	b := digest.NewVideo()
	b.Add(frame2)

	test.ExpectInequality(t, a.Hash(), b.Hash())
}

func TestVideoDigestChainsAcrossFrames(t *testing.T) {
	var frame display.FrameBuffer

	a := digest.NewVideo()
	a.Add(frame)
	afterOne := a.Hash()
	a.Add(frame)
	afterTwo := a.Hash()

	// the same frame added twice still changes the hash, since the second
	// Add folds the first digest's bytes into the input.
	test.ExpectInequality(t, afterOne, afterTwo)
}

func TestVideoDigestResetClearsChain(t *testing.T) {
	var frame display.FrameBuffer
	frame.Pixels[0] = 1

	a := digest.NewVideo()
	a.Add(frame)
	a.Reset()

	b := digest.NewVideo()
	test.ExpectEquality(t, a.Hash(), b.Hash())
}

func TestAudioDigestIsDeterministic(t *testing.T) {
	samples := []float32{0.1, -0.2, 0.3, 0.0}

	a := digest.NewAudio()
	a.Add(samples)

	b := digest.NewAudio()
	b.Add(samples)

	test.ExpectEquality(t, a.Hash(), b.Hash())
}

func TestAudioDigestDiffersOnDifferentSamples(t *testing.T) {
	a := digest.NewAudio()
	a.Add([]float32{0.1, 0.2})

	b := digest.NewAudio()
	b.Add([]float32{0.1, 0.3})

	test.ExpectInequality(t, a.Hash(), b.Hash())
}

func TestAudioDigestResetClearsChain(t *testing.T) {
	a := digest.NewAudio()
	a.Add([]float32{0.5})
	a.Reset()

	b := digest.NewAudio()
	test.ExpectEquality(t, a.Hash(), b.Hash())
}
