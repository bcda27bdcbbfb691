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

package records

import (
	"context"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/database"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/savestate"
)

// Sentinel error patterns.
const (
	// the key-value store failed to complete a request
	StoreUnavailable = "records: store unavailable: %v"

	// no record, or no save state at the requested index, exists for the
	// cartridge
	NoRecord = "records: no record: %v"

	// the stored form of the record could not be decoded
	Corrupted = "records: corrupted: %v"
)

// Store of cartridge records.
type Store struct {
	kv    database.KeyValue
	locks keyedMutex
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore(kv database.KeyValue) *Store {
	return &Store{kv: kv}
}

// fetch the record for the header. a new record is returned if none exists.
// the key must be locked by the caller
func (s *Store) fetch(ctx context.Context, h cartridge.Header) (*Record, bool, error) {
	data, ok, err := s.kv.Get(ctx, h.Key())
	if err != nil {
		return nil, false, curated.Errorf(StoreUnavailable, err)
	}
	if !ok {
		return &Record{}, false, nil
	}

	rec := &Record{}
	if err := rec.UnmarshalBinary(data); err != nil {
		return nil, false, err
	}

	return rec, true, nil
}

// persist the record. the key must be locked by the caller
func (s *Store) persist(ctx context.Context, h cartridge.Header, rec *Record) error {
	data, err := rec.MarshalBinary()
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, h.Key(), data); err != nil {
		return curated.Errorf(StoreUnavailable, err)
	}
	return nil
}

// update performs a fetch-modify-write of the record for the header while
// holding the lock for the header.
func (s *Store) update(ctx context.Context, h cartridge.Header, modify func(rec *Record)) error {
	unlock := s.locks.lock(string(h.Key()))
	defer unlock()

	rec, _, err := s.fetch(ctx, h)
	if err != nil {
		return err
	}
	modify(rec)
	return s.persist(ctx, h, rec)
}

// GetRecord returns a copy of the record for the header. Returns false if
// no record exists.
func (s *Store) GetRecord(ctx context.Context, h cartridge.Header) (*Record, bool, error) {
	unlock := s.locks.lock(string(h.Key()))
	defer unlock()

	rec, ok, err := s.fetch(ctx, h)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return rec.copy(), true, nil
}

// SaveCartridgeRAM replaces the cartridge RAM in the record for the header. A
// record is created if one does not already exist. Save states in the record
// are unaffected.
func (s *Store) SaveCartridgeRAM(ctx context.Context, h cartridge.Header, ram []byte) error {
	c := append([]byte{}, ram...)
	return s.update(ctx, h, func(rec *Record) {
		rec.CartridgeRAM = c
	})
}

// LoadCartridgeRAM returns the cartridge RAM in the record for the header.
// Returns false if there is no record or if the record has no cartridge RAM.
func (s *Store) LoadCartridgeRAM(ctx context.Context, h cartridge.Header) ([]byte, bool, error) {
	rec, ok, err := s.GetRecord(ctx, h)
	if err != nil {
		return nil, false, err
	}
	if !ok || rec.CartridgeRAM == nil {
		return nil, false, nil
	}
	return rec.CartridgeRAM, true, nil
}

// SaveState appends the state to the record for the header. A record is
// created if one does not already exist.
func (s *Store) SaveState(ctx context.Context, h cartridge.Header, st *savestate.State) error {
	if st == nil {
		return curated.Errorf("records: nil save state")
	}
	return s.update(ctx, h, func(rec *Record) {
		rec.SaveStates = append(rec.SaveStates, st)
	})
}

// LoadState returns the save state at the index in the record for the
// header. The Latest index selects the default state (see
// Record.DefaultIndex()).
//
// Fails with NoRecord if there is no record, if the record has no save
// states or if the index is out of range.
func (s *Store) LoadState(ctx context.Context, h cartridge.Header, index int) (*savestate.State, error) {
	rec, ok, err := s.GetRecord(ctx, h)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, curated.Errorf(NoRecord, h.Title())
	}
	if len(rec.SaveStates) == 0 {
		return nil, curated.Errorf(NoRecord, curated.Errorf("%s: no save states", h.Title()))
	}

	st, ok := rec.Select(index)
	if !ok {
		return nil, curated.Errorf(NoRecord, curated.Errorf("%s: no save state at index %d", h.Title(), index))
	}

	return st, nil
}
