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

package savestate

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

// Sentinel error patterns.
const (
	// a stored region has a different length to the live region
	SizeMismatch = "savestate: %s: size mismatch (stored %d bytes, live %d bytes)"

	// the binary form of a state could not be decoded
	Corrupted = "savestate: corrupted: %v"

	// the binary form of a state was written by a later version of the
	// program. the data is intact and should not be discarded
	UnsupportedVersion = "savestate: unsupported version (%d)"
)

// Meta is the information about a State that is not taken from linear
// memory.
type Meta struct {
	// the time the state was created. stored with millisecond precision
	CreatedAt time.Time

	// optional user supplied label. an empty string means no label
	Label string

	// states created by the crash recovery process are automatic. states
	// requested by the user are not
	Automatic bool
}

// State is a snapshot of the linear memory regions needed to resume
// emulation. A State should not be modified once it has been created.
type State struct {
	Meta

	InternalState  []byte
	EmulatedMemory []byte
	CartridgeRAM   []byte
}

func (st *State) String() string {
	kind := "manual"
	if st.Automatic {
		kind = "automatic"
	}
	s := fmt.Sprintf("%s %s", st.CreatedAt.Format("2006-01-02 15:04:05"), kind)
	if st.Label != "" {
		s = fmt.Sprintf("%s [%s]", s, st.Label)
	}
	return s
}

// Encode takes a snapshot of the linear memory. If meta.CreatedAt is the zero
// time then the current time is used.
//
// Any CPU resident state must have been flushed to the InternalState region
// before calling this function.
func Encode(mem *memorymap.Linear, meta Meta) (*State, error) {
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now()
	}
	meta.CreatedAt = meta.CreatedAt.Truncate(time.Millisecond)

	st := &State{Meta: meta}

	var err error

	st.InternalState, err = mem.ReadRegion(memorymap.InternalState)
	if err != nil {
		return nil, curated.Errorf("savestate: %v", err)
	}

	st.EmulatedMemory, err = mem.ReadRegion(memorymap.EmulatedMemory)
	if err != nil {
		return nil, curated.Errorf("savestate: %v", err)
	}

	ram, ok, err := cartridge.ReadCartridgeRAM(mem)
	if err != nil {
		return nil, curated.Errorf("savestate: %v", err)
	}
	if ok {
		st.CartridgeRAM = ram
	} else {
		st.CartridgeRAM = []byte{}
	}

	return st, nil
}

// Decode writes the state into linear memory, overwriting the existing
// contents of the InternalState, EmulatedMemory and CartridgeRAM regions.
// The sizes of all three stored regions are checked before anything is
// written.
func Decode(mem *memorymap.Linear, st *State) error {
	ramSize, _, err := cartridge.CartridgeRAMSize(mem)
	if err != nil {
		return curated.Errorf("savestate: %v", err)
	}

	if len(st.InternalState) != memorymap.SizeInternalState {
		return curated.Errorf(SizeMismatch, memorymap.InternalState, len(st.InternalState), memorymap.SizeInternalState)
	}
	if len(st.EmulatedMemory) != memorymap.SizeEmulatedMemory {
		return curated.Errorf(SizeMismatch, memorymap.EmulatedMemory, len(st.EmulatedMemory), memorymap.SizeEmulatedMemory)
	}
	if len(st.CartridgeRAM) != ramSize {
		return curated.Errorf(SizeMismatch, memorymap.CartridgeRAM, len(st.CartridgeRAM), ramSize)
	}

	// the buffer must be large enough for all three regions before we start
	// writing. the ROM region follows the RAM region so this is a check that
	// the buffer extends at least to the end of the live cartridge RAM
	if mem.Len() < memorymap.OriginCartridgeRAM+ramSize {
		return curated.Errorf("savestate: %v", curated.Errorf(memorymap.OutOfBounds,
			memorymap.CartridgeRAM, ramSize, memorymap.OriginCartridgeRAM))
	}

	if err := mem.WriteRegion(memorymap.InternalState, st.InternalState); err != nil {
		return curated.Errorf("savestate: %v", err)
	}
	if err := mem.WriteRegion(memorymap.EmulatedMemory, st.EmulatedMemory); err != nil {
		return curated.Errorf("savestate: %v", err)
	}
	if err := mem.WriteRegion(memorymap.CartridgeRAM, st.CartridgeRAM); err != nil {
		return curated.Errorf("savestate: %v", err)
	}

	return nil
}
