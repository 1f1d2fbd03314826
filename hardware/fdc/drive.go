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

package fdc

const (
	sides           = 2
	tracksPerSide   = 82
	sectorsPerTrack = 5
	sectorLen       = 1024

	// DriveSize is the FDD_SIZE byte count of one drive's backing image:
	// 2 sides x 82 tracks x 5 sectors x 1024 = 820 KiB.
	DriveSize = sides * tracksPerSide * sectorsPerTrack * sectorLen

	driveCount = 4

	// DriveCount is the number of independent drives the controller
	// addresses, for hosts that need to iterate every drive (eg.
	// DISMOUNT_FDD_ALL).
	DriveCount = driveCount
)

// Drive is one floppy drive's mutable state: the backing image plus the
// host-visible bookkeeping fields (path, mounted, updated, reads, writes).
type Drive struct {
	Path    string
	Mounted bool
	Updated bool
	Reads   int
	Writes  int

	data [DriveSize]byte
}

// Mount installs image as this drive's backing store. image is truncated
// to DriveSize if larger and zero-padded
// if smaller.
func (d *Drive) Mount(path string, image []byte) {
	d.Path = path
	d.Mounted = true
	d.Updated = false
	d.Reads = 0
	d.Writes = 0
	d.data = [DriveSize]byte{}
	copy(d.data[:], image)
}

// Dismount detaches the backing image, leaving the drive's bookkeeping
// fields at their zero values.
func (d *Drive) Dismount() {
	*d = Drive{}
}

// Image returns a copy of the drive's backing store, for the host to
// persist on shutdown: the host owns writing the file, the FDC owns the
// bytes.
func (d *Drive) Image() []byte {
	out := make([]byte, DriveSize)
	copy(out, d.data[:])
	return out
}
