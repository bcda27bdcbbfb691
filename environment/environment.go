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

package environment

import (
	"time"

	"github.com/jetsetilly/gopherboy/hardware/preferences"
	"github.com/jetsetilly/gopherboy/notifications"
	"github.com/jetsetilly/gopherboy/prefs"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. There is no
// process wide environment and every emulator instance should have its own.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences

	// notifications are sent to this implementation. never nil after
	// NewEnvironment()
	Notify notifications.Notify

	// the source of timestamps for save states. replace with a fixed clock
	// for deterministic results
	Now func() time.Time
}

type ignoreNotices struct{}

func (ignoreNotices) Notify(_ notifications.Notice) error {
	return nil
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The notify argument can be nil, in which case notices are dropped. The
// prefs argument can also be nil, in which case the preferences are loaded
// from the default preferences file.
func NewEnvironment(label Label, notify notifications.Notify, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Notify: notify,
		Now:    time.Now,
	}

	if env.Notify == nil {
		env.Notify = ignoreNotices{}
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences("", nil)
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// NewEnvironmentWithOverrides is like NewEnvironment() but loads the default
// preferences file with the supplied overrides.
func NewEnvironmentWithOverrides(label Label, notify notifications.Notify, overrides prefs.Overrides) (*Environment, error) {
	p, err := preferences.NewPreferences("", overrides)
	if err != nil {
		return nil, err
	}
	return NewEnvironment(label, notify, p)
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.Prefs.Logging.Get().(bool)
}

// IsMainEmulation returns true if the environment is for the main emulation.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}
