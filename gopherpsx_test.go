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

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherpsx/hardware/preferences"
	"github.com/jetsetilly/gopherpsx/modalflag"
	"github.com/jetsetilly/gopherpsx/test"
)

func setupArgs(t *testing.T, args ...string) (*modalflag.Modes, setup) {
	t.Helper()

	md := &modalflag.Modes{Output: io.Discard}
	md.NewArgs(args)
	opts := addSetupFlags(md)

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)

	return md, opts
}

func blankBIOS(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "bios.bin")
	err := os.WriteFile(fn, make([]byte, memorymap.BIOSLength), 0o600)
	test.DemandSuccess(t, err)
	return fn
}

func TestPreparePSX(t *testing.T) {
	pf := filepath.Join(t.TempDir(), "prefs")
	bios := blankBIOS(t)

	// creates the preferences file
	_, err := preferences.NewPreferencesFromFile(pf)
	test.DemandSuccess(t, err)

	md, opts := setupArgs(t, "-prefsfile", pf, "-prefs", "gpu.dither::false", "-bios", bios)
	psx, closeDisc, err := preparePSX(md, opts, nil)
	test.DemandSuccess(t, err)
	defer psx.End()
	defer closeDisc()

	test.ExpectEquality(t, psx.Prefs.Dither.Get().(bool), false)
	test.ExpectEquality(t, psx.Rasterizer.AllowDither, false)
	test.ExpectEquality(t, psx.CPU.PC, uint32(0xbfc00000))
}

func TestPreparePSXErrors(t *testing.T) {
	pf := filepath.Join(t.TempDir(), "prefs")

	// no BIOS
	md, opts := setupArgs(t, "-prefsfile", pf)
	psx, _, err := preparePSX(md, opts, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, psx == nil)

	// too many arguments
	md, opts = setupArgs(t, "-prefsfile", pf, "-bios", blankBIOS(t), "a")
	_, _, err = preparePSX(md, opts, nil)
	test.ExpectFailure(t, err)

	// BIOS of the wrong size
	short := filepath.Join(t.TempDir(), "short.bin")
	test.DemandSuccess(t, os.WriteFile(short, make([]byte, 100), 0o600))
	md, opts = setupArgs(t, "-prefsfile", pf, "-bios", short)
	psx, _, err = preparePSX(md, opts, nil)
	test.ExpectFailure(t, err)
	if psx != nil {
		psx.End()
	}

	// missing disc
	md, opts = setupArgs(t, "-prefsfile", pf, "-cd", filepath.Join(t.TempDir(), "missing.bin"), "-bios", blankBIOS(t))
	psx, _, err = preparePSX(md, opts, nil)
	test.ExpectFailure(t, err)
	if psx != nil {
		psx.End()
	}
}
