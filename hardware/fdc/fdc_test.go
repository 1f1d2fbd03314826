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

package fdc_test

import (
	"testing"

	"github.com/parallelno/vector06c-core/hardware/fdc"
	"github.com/parallelno/vector06c-core/test"
)

// selectDrive0Side0 writes the SYSTEM port so drive 0 / side 0 becomes
// active (side = ~bit2 & 1 needs bit2 set to select side 0).
func selectDrive0Side0(f *fdc.FDC) {
	f.Write(fdc.PortSystem, 0x04)
}

func TestReadSectorReturnsFirstByteAndDecrementsLength(t *testing.T) {
	f := fdc.NewFDC(nil)
	image := make([]byte, fdc.DriveSize)
	image[0] = 0xaa
	f.Drive(0).Mount("disk0.img", image)

	f.Write(fdc.PortTrack, 0)
	f.Write(fdc.PortSector, 1)
	selectDrive0Side0(f)
	f.Write(fdc.PortStatusCommand, 0x88) // READ-SECTOR, single

	got := f.Read(fdc.PortData)
	test.ExpectEquality(t, got, uint8(0xaa))
	test.ExpectEquality(t, f.RemainingLength(), 1023)
}

func TestRestoreSeeksToTrackZero(t *testing.T) {
	f := fdc.NewFDC(nil)
	f.Write(fdc.PortData, 10)
	f.Write(fdc.PortStatusCommand, 0x10) // SEEK: track = DATA = 10
	test.ExpectEquality(t, f.Track(), 10)

	f.Write(fdc.PortStatusCommand, 0x00) // RESTORE
	test.ExpectEquality(t, f.Track(), 0)
	test.ExpectEquality(t, f.Read(fdc.PortTrack), uint8(0))
}

func TestStepInAndOutAdjustTrack(t *testing.T) {
	f := fdc.NewFDC(nil)

	f.Write(fdc.PortStatusCommand, 0x50) // STEP-IN, update track register
	test.ExpectEquality(t, f.Track(), 1)
	test.ExpectEquality(t, f.Read(fdc.PortTrack), uint8(1))

	f.Write(fdc.PortStatusCommand, 0x50) // STEP-IN again
	test.ExpectEquality(t, f.Track(), 2)

	f.Write(fdc.PortStatusCommand, 0x70) // STEP-OUT, update track register
	test.ExpectEquality(t, f.Track(), 1)
	test.ExpectEquality(t, f.Read(fdc.PortTrack), uint8(1))

	f.Write(fdc.PortStatusCommand, 0x20) // STEP repeats last direction (out), no update
	test.ExpectEquality(t, f.Track(), 0)
	// no update this time: TRACK register must still read the previous value.
	test.ExpectEquality(t, f.Read(fdc.PortTrack), uint8(1))
}

func TestMultiSectorReadAutoIncrementsSectorRegister(t *testing.T) {
	f := fdc.NewFDC(nil)
	f.Drive(0).Mount("disk0.img", make([]byte, fdc.DriveSize))

	f.Write(fdc.PortTrack, 0)
	f.Write(fdc.PortSector, 1)
	selectDrive0Side0(f)
	f.Write(fdc.PortStatusCommand, 0x98) // READ-SECTORS, multi

	for i := 0; i < 1024; i++ {
		f.Read(fdc.PortData)
	}
	test.ExpectEquality(t, f.Read(fdc.PortSector), uint8(2))
}

func TestForceIRQCancelsTransferAndSetsIRQ(t *testing.T) {
	f := fdc.NewFDC(nil)
	f.Drive(0).Mount("disk0.img", make([]byte, fdc.DriveSize))
	f.Write(fdc.PortTrack, 0)
	f.Write(fdc.PortSector, 1)
	selectDrive0Side0(f)
	f.Write(fdc.PortStatusCommand, 0x88)
	test.ExpectEquality(t, f.Busy(), true)

	f.Write(fdc.PortStatusCommand, 0xd8) // FORCE-IRQ, C_IRQ set
	test.ExpectEquality(t, f.Busy(), false)
	test.ExpectEquality(t, f.IRQ(), true)
}

func TestWriteTrackFillsBothSidesWithFormatByte(t *testing.T) {
	f := fdc.NewFDC(nil)
	f.Drive(0).Mount("disk0.img", make([]byte, fdc.DriveSize))
	selectDrive0Side0(f)

	f.Write(fdc.PortStatusCommand, 0xf0) // WRITE-TRACK (format)

	f.Write(fdc.PortTrack, 0)
	f.Write(fdc.PortSector, 1)
	f.Write(fdc.PortStatusCommand, 0x88) // read back sector 1 track 0 side 0
	test.ExpectEquality(t, f.Read(fdc.PortData), uint8(0xe5))
}

func TestStatusForcesNotReadyWhenDriveUnmounted(t *testing.T) {
	f := fdc.NewFDC(nil)
	status := f.Read(fdc.PortStatusCommand)
	test.ExpectInequality(t, status&0x80, uint8(0))
}

func TestWatchdogExpiryAbortsWithLostData(t *testing.T) {
	f := fdc.NewFDC(nil)
	f.Drive(0).Mount("disk0.img", make([]byte, fdc.DriveSize))
	f.Write(fdc.PortTrack, 0)
	f.Write(fdc.PortSector, 1)
	selectDrive0Side0(f)
	f.Write(fdc.PortStatusCommand, 0x88)

	for i := 0; i < 255; i++ {
		f.Read(fdc.PortSystem) // each READY read decrements the watchdog
	}
	test.ExpectEquality(t, f.Busy(), false)
	status := f.Read(fdc.PortStatusCommand)
	test.ExpectInequality(t, status&0x04, uint8(0))
}

func TestMountTruncatesOversizedImage(t *testing.T) {
	oversized := make([]byte, fdc.DriveSize+4096)
	oversized[fdc.DriveSize-1] = 0x42
	d := &fdc.Drive{}
	d.Mount("big.img", oversized)

	image := d.Image()
	test.ExpectEquality(t, len(image), fdc.DriveSize)
	test.ExpectEquality(t, image[fdc.DriveSize-1], uint8(0x42))
}
