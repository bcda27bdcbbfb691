// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences holds the preferences for the memory and persistence
// core. The preferences are stored in the global preferences file (see the
// prefs package) under keys beginning with "memory.".
package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/prefs"
)

// Preferences for the memory and persistence core.
type Preferences struct {
	dsk *prefs.Disk

	// name of the directory, relative to the resource path, in which
	// cartridge records are stored
	StoreDir prefs.String

	// name of the file, relative to the resource path, used as the volatile
	// fallback store for crash recovery
	RecoveryFile prefs.String

	// whether a recovery snapshot is captured on teardown and replayed on
	// the next initialisation
	RecoveryEnabled prefs.Bool

	// whether cartridge RAM is included in the recovery snapshot captured on
	// teardown. the RAM reaches the record store when the snapshot is
	// replayed. has no effect if RecoveryEnabled is false
	SaveRAMOnShutdown prefs.Bool

	// whether the emulation is permitted to create log entries
	Logging prefs.Bool

	// index of the save state to load when a cartridge is run. -1 selects
	// the default save state. any other negative value means that no save
	// state is loaded
	StartupState prefs.Int
}

// maximum length of the StoreDir and RecoveryFile values
const maxNameLen = 64

// validName is used as the pre hook for preferences that name a file or
// directory in the resource directory
func validName(v prefs.Value) error {
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	if s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("preferences: %q is not a valid name", s)
	}
	return nil
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path indicates that the default preferences
// file should be used. Overrides, if any, take precedence over values on
// disk.
func NewPreferences(pth string, overrides prefs.Overrides) (*Preferences, error) {
	p := &Preferences{}
	p.StoreDir.SetMaxLen(maxNameLen)
	p.StoreDir.SetHookPre(validName)
	p.RecoveryFile.SetMaxLen(maxNameLen)
	p.RecoveryFile.SetHookPre(validName)
	p.SetDefaults()

	var err error

	if pth == "" {
		pth, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.storeDir", &p.StoreDir)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.recoveryFile", &p.RecoveryFile)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.recoveryEnabled", &p.RecoveryEnabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.saveRAMOnShutdown", &p.SaveRAMOnShutdown)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.logging", &p.Logging)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.startupState", &p.StartupState)
	if err != nil {
		return nil, err
	}

	p.dsk.SetOverrides(overrides)

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.StoreDir.Set("records")
	p.RecoveryFile.Set("recovery")
	p.RecoveryEnabled.Set(true)
	p.SaveRAMOnShutdown.Set(true)
	p.Logging.Set(true)
	p.StartupState.Set(-2)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
