// This file is part of Gopherpsx.
//
// Gopherpsx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpsx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpsx.  If not, see <https://www.gnu.org/licenses/>.

package loader_test

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/cdrom"
	"github.com/jetsetilly/gopherpsx/loader"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "SCPH1001.BIN")
	data := []uint8{1, 2, 3, 4}
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))

	ld := loader.NewLoader(fn)
	test.ExpectEquality(t, ld.ShortName(), "SCPH1001")
	test.ExpectEquality(t, ld.HasLoaded(), false)

	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, len(ld.Data), 4)
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	ld = loader.NewLoader(fn)
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, loader.LoaderError))
	test.ExpectEquality(t, ld.HasLoaded(), false)

	ld = loader.NewLoader(filepath.Join(t.TempDir(), "missing"))
	test.ExpectFailure(t, ld.Load())

	ld = loader.NewLoader("ftp://example.com/bios.bin")
	test.ExpectFailure(t, ld.Load())
}

// image writes a raw disc image with the sector number in the first byte of
// every sector.
func image(t *testing.T, fn string, sectors int) {
	t.Helper()
	data := make([]uint8, sectors*cdrom.SectorSize)
	for i := 0; i < sectors; i++ {
		data[i*cdrom.SectorSize] = uint8(i)
	}
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
}

func TestDisc(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.bin")
	image(t, fn, 3)

	dsc, err := loader.OpenDisc(fn)
	test.DemandSuccess(t, err)
	defer dsc.Close()
	test.ExpectEquality(t, dsc.Sectors(), 3)

	p := make([]uint8, cdrom.SectorSize)
	test.ExpectSuccess(t, dsc.ReadSector(2, p))
	test.ExpectEquality(t, p[0], uint8(2))
	test.ExpectFailure(t, dsc.ReadSector(3, p))
	test.ExpectFailure(t, dsc.ReadSector(-1, p))
}

func TestNotADisc(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.bin")
	test.DemandSuccess(t, os.WriteFile(fn, make([]uint8, 100), 0o600))

	_, err := loader.OpenDisc(fn)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, loader.LoaderError))
}

func TestCueSheet(t *testing.T) {
	dir := t.TempDir()
	image(t, filepath.Join(dir, "my game.bin"), 2)

	cue := "REM a comment\nFILE \"my game.bin\" BINARY\n  TRACK 01 MODE2/2352\n    INDEX 01 00:00:00\n"
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "my game.cue"), []byte(cue), 0o600))

	dsc, err := loader.OpenDisc(filepath.Join(dir, "my game.cue"))
	test.DemandSuccess(t, err)
	defer dsc.Close()
	test.ExpectEquality(t, dsc.Sectors(), 2)
	test.ExpectEquality(t, filepath.Base(dsc.Filename), "my game.bin")

	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "empty.cue"), []byte("REM nothing\n"), 0o600))
	_, err = loader.OpenDisc(filepath.Join(dir, "empty.cue"))
	test.ExpectFailure(t, err)
}
