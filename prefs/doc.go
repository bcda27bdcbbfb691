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

// Package prefs facilitates the storage of preferential values in the
// Gopherboy system.
//
// Preference values are typed (Bool, Int and String) and are registered
// with a Disk instance under a unique key. The Disk type saves and loads
// every registered value to and from a plain text file:
//
//	var v prefs.Bool
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("memory.recoveryEnabled", &v)
//	dsk.Load()
//
// A prefs file can be shared by many Disk instances. Entries in the file that
// are not registered with the Disk being saved are preserved.
//
// Values can be overridden for a single Load() with an Overrides instance.
// Overrides are parsed from a string of the form "key::value; key::value"
// and are useful for command line flags.
package prefs
