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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherpsx/hardware/preferences"
	"github.com/jetsetilly/gopherpsx/prefs"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ICache.Get().(bool), true)
	test.ExpectEquality(t, p.Dither.Get().(bool), true)
	test.ExpectEquality(t, p.QueueLength.Get().(int), preferences.DefaultQueueLength)
	test.ExpectEquality(t, p.Interlace.Get().(bool), false)
	test.ExpectEquality(t, p.SyncCycles.Get().(int), preferences.DefaultSyncCycles)
	test.ExpectEquality(t, p.TTYEcho.Get().(bool), false)

	// a missing file is created on first load
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Dither.Set(false))
	test.ExpectSuccess(t, p.SyncCycles.Set(64))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Dither.Get().(bool), false)
	test.ExpectEquality(t, q.SyncCycles.Get().(int), 64)
}

func TestPositive(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.QueueLength.Set(0))
	test.ExpectFailure(t, p.SyncCycles.Set(-1))
	test.ExpectEquality(t, p.QueueLength.Get().(int), preferences.DefaultQueueLength)
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	// create the file
	_, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	prefs.PushCommandLineStack("cpu.icache::false")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ICache.Get().(bool), false)
}
