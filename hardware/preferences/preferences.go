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

package preferences

import (
	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/paths"
	"github.com/jetsetilly/gopherpsx/prefs"
)

// PrefsError is the pattern used for errors returned by NewPreferences.
const PrefsError = "preferences: %v"

// Default values.
const (
	DefaultQueueLength = 64
	DefaultSyncCycles  = 128
)

// Preferences defines and collates all the preference values used by the
// hardware. Values are read when the console is created and when it is reset.
type Preferences struct {
	dsk *prefs.Disk

	// emulate the instruction cache. if false every fetch goes to the
	// interconnect
	ICache prefs.Bool

	// honour the dither flag of the draw mode
	Dither prefs.Bool

	// number of entries in the rasterizer work queue
	QueueLength prefs.Int

	// alternate the odd line status bit every frame in 480 line modes
	Interlace prefs.Bool

	// number of CPU cycles executed before the other components are
	// synchronised
	SyncCycles prefs.Int

	// echo the guest TTY to the terminal
	TTYEcho prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Preferences are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences but with an explicit
// filename.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	positive := func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf("preferences: value must be positive (%d)", v)
		}
		return nil
	}
	p.QueueLength.SetHookPre(positive)
	p.SyncCycles.SetHookPre(positive)

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	err = p.dsk.Add("cpu.icache", &p.ICache)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	err = p.dsk.Add("gpu.dither", &p.Dither)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	err = p.dsk.Add("gpu.queue", &p.QueueLength)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	err = p.dsk.Add("gpu.interlace", &p.Interlace)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	err = p.dsk.Add("psx.sync", &p.SyncCycles)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	err = p.dsk.Add("psx.ttyecho", &p.TTYEcho)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf(PrefsError, err)
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.ICache.Set(true)
	p.Dither.Set(true)
	p.QueueLength.Set(DefaultQueueLength)
	p.Interlace.Set(false)
	p.SyncCycles.Set(DefaultSyncCycles)
	p.TTYEcho.Set(false)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
