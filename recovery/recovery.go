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

package recovery

import (
	"context"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/savestate"
)

// Sentinel error patterns.
const (
	// the snapshot in the volatile store could not be decoded
	Corrupted = "recovery: corrupted snapshot: %v"

	// the snapshot, or the save state inside it, was written by a later
	// version of the program
	UnsupportedVersion = "recovery: unsupported version: %v"
)

// the keys used in the Volatile store. a snapshot that cannot be decoded is
// moved from snapshotKey to corruptKey, replacing any earlier one
const (
	snapshotKey = "unload"
	corruptKey  = "unload.corrupt"
)

// State of the recovery process.
type State int

// List of valid State values.
const (
	// there is no snapshot waiting to be replayed
	Clean State = iota

	// there is a snapshot waiting to be replayed
	PendingRecovery
)

func (s State) String() string {
	switch s {
	case Clean:
		return "clean"
	case PendingRecovery:
		return "pending recovery"
	}
	return "unknown recovery state"
}

// Store is the interface to the record store required by Replay(). It is
// satisfied by the records.Store type.
type Store interface {
	SaveCartridgeRAM(ctx context.Context, h cartridge.Header, ram []byte) error
	SaveState(ctx context.Context, h cartridge.Header, st *savestate.State) error
}

// Recovery captures and replays snapshots.
type Recovery struct {
	perm logger.Permission
	vol  Volatile
}

// NewRecovery is the preferred method of initialisation for the Recovery
// type.
func NewRecovery(perm logger.Permission, vol Volatile) *Recovery {
	return &Recovery{
		perm: perm,
		vol:  vol,
	}
}

// State returns the current state of the recovery process. If the Volatile
// store cannot be queried the state is reported as PendingRecovery.
func (rc *Recovery) State() State {
	_, ok, err := rc.vol.Get(snapshotKey)
	if err != nil {
		logger.Log(rc.perm, "recovery", err)
		return PendingRecovery
	}
	if ok {
		return PendingRecovery
	}
	return Clean
}

// Capture a snapshot into the Volatile store. Any existing snapshot is
// replaced. The ram argument should be nil if the cartridge has no battery
// backed RAM.
func (rc *Recovery) Capture(h cartridge.Header, ram []byte, st *savestate.State) error {
	snap := &Snapshot{
		Header:       h,
		CartridgeRAM: ram,
		State:        st,
	}

	data, err := snap.MarshalBinary()
	if err != nil {
		return err
	}

	if err := rc.vol.Set(snapshotKey, data); err != nil {
		return curated.Errorf("recovery: capture: %v", err)
	}

	logger.Logf(rc.perm, "recovery", "captured snapshot for %s", h.Title())

	return nil
}

// Replay any pending snapshot into the record store. Returns the snapshot
// that was replayed or nil if there was no snapshot.
//
// On failure the snapshot is retained in the Volatile store so the replay
// can be tried again. This includes a snapshot from a later version of the
// program. The exception is a snapshot that is corrupted. It is moved aside
// in the Volatile store so that it no longer blocks recovery and an error
// is returned.
func (rc *Recovery) Replay(ctx context.Context, store Store) (*Snapshot, error) {
	data, ok, err := rc.vol.Get(snapshotKey)
	if err != nil {
		logger.Log(rc.perm, "recovery", err)
		return nil, curated.Errorf("recovery: replay: %v", err)
	}
	if !ok {
		return nil, nil
	}

	snap := &Snapshot{}
	if err := snap.UnmarshalBinary(data); err != nil {
		if curated.Is(err, UnsupportedVersion) {
			logger.Logf(rc.perm, "recovery", "retaining snapshot: %v", err)
			return nil, err
		}
		return nil, rc.setAside(data, err)
	}

	if snap.CartridgeRAM != nil {
		if err := store.SaveCartridgeRAM(ctx, snap.Header, snap.CartridgeRAM); err != nil {
			logger.Logf(rc.perm, "recovery", "replay for %s failed: %v", snap.Header.Title(), err)
			return nil, curated.Errorf("recovery: replay: %v", err)
		}
	}

	if err := store.SaveState(ctx, snap.Header, snap.State); err != nil {
		logger.Logf(rc.perm, "recovery", "replay for %s failed: %v", snap.Header.Title(), err)
		return nil, curated.Errorf("recovery: replay: %v", err)
	}

	if err := rc.vol.Delete(snapshotKey); err != nil {
		// the snapshot will be replayed again on the next initialisation
		logger.Log(rc.perm, "recovery", err)
		return nil, curated.Errorf("recovery: replay: %v", err)
	}

	logger.Logf(rc.perm, "recovery", "replayed snapshot for %s", snap.Header.Title())

	return snap, nil
}

// setAside moves corrupted snapshot data to corruptKey. the snapshot stays
// where it is if it cannot be moved. the decode error is always returned
func (rc *Recovery) setAside(data []byte, decodeErr error) error {
	if err := rc.vol.Set(corruptKey, data); err != nil {
		logger.Logf(rc.perm, "recovery", "cannot set aside snapshot: %v", err)
		return decodeErr
	}
	if err := rc.vol.Delete(snapshotKey); err != nil {
		logger.Log(rc.perm, "recovery", err)
		return decodeErr
	}
	logger.Logf(rc.perm, "recovery", "set aside snapshot: %v", decodeErr)
	return decodeErr
}
