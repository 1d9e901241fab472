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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/prefs"
	"github.com/jetsetilly/gopherpsx/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1.5))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestIntAndString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("gpu.queue", &n))
	test.ExpectSuccess(t, dsk.Add("bios", &s))
	test.ExpectSuccess(t, n.Set("64"))
	test.ExpectFailure(t, n.Set("sixty four"))
	test.ExpectSuccess(t, s.Set("SCPH1002.BIN"))

	s.SetMaxLen(4)
	test.ExpectEquality(t, s.String(), "SCPH")

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "bios :: SCPH\ngpu.queue :: 64\n")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("cpu.icache", &v))

	// missing file
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())
	test.ExpectSuccess(t, v.Set(false))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(bool), true)
}

func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.Int
	var b prefs.Int
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, dskB.Add("b", &b))
	test.ExpectSuccess(t, a.Set(1))
	test.ExpectSuccess(t, b.Set(2))

	// saving one disk must not remove the other disk's entries
	test.DemandSuccess(t, dskA.Save())
	test.DemandSuccess(t, dskB.Save())
	cmpFile(t, fn, "a :: 1\nb :: 2\n")
}

func TestNoDefunctEntries(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.Int
	var b prefs.Bool
	test.ExpectSuccess(t, dskA.Add("gpu.queue", &a))
	test.ExpectSuccess(t, dskB.Add("gpu.bilinear", &b))
	test.ExpectSuccess(t, a.Set(64))
	test.ExpectSuccess(t, b.Set(true))

	// entries this disk does not know about are written back unchanged
	test.DemandSuccess(t, dskB.Save())
	test.DemandSuccess(t, dskA.Save())
	cmpFile(t, fn, "gpu.bilinear :: true\ngpu.queue :: 64\n")
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("gpu.dither", &v))
	test.ExpectSuccess(t, dsk.Add("gpu.queue", &n))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("gpu.dither::true; gpu.queue::128; unused::foo")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, n.Get().(int), 128)

	// only the unused entry remains
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::foo")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPost(func(value prefs.Value) error {
		seen = value.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(16))
	test.ExpectEquality(t, seen, 16)
}
