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

// Package digest chains SHA-1 hashes of successive frame buffers or audio
// sample batches into a single running value, so that two emulation runs
// can be compared for bit-exact equality by comparing one hash rather than
// every frame/sample. Used as the basis for regression tests and for
// playback verification.
package digest

// Digest implementations fold new data into a running hash and report it
// on request.
type Digest interface {
	Hash() string
	Reset()
}
