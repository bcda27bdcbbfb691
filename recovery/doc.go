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

// Package recovery protects the state of an emulation against the process
// ending before the state could be written to the record store.
//
// When an emulation is torn down the memory core captures a Snapshot of the
// cartridge RAM and an automatic save state. Capture() is synchronous and
// only writes to the Volatile store, which is expected to be local and fast.
// It never calls into the record store.
//
// On the next initialisation Replay() writes the snapshot into the record
// store and then deletes it from the Volatile store. If any part of the
// replay fails the snapshot is kept and the replay will be tried again on the
// next initialisation. A snapshot may therefore be replayed more than once,
// but it is never lost because of a failure to write to the record store.
//
// At most one snapshot exists at any one time. Capturing a new snapshot
// replaces any snapshot that has not yet been replayed.
package recovery
