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
	"fmt"
	"io"

	"github.com/jetsetilly/gopherboy/savestate"
)

// Latest can be used as the index argument to LoadState() to select the
// default save state for a record.
const Latest = -1

// Record is the persisted information for a single cartridge.
type Record struct {
	// nil if no cartridge RAM has been saved
	CartridgeRAM []byte

	// save states in the order they were saved
	SaveStates []*savestate.State
}

func (rec *Record) String() string {
	ram := "no cartridge RAM"
	if rec.CartridgeRAM != nil {
		ram = fmt.Sprintf("%d bytes of cartridge RAM", len(rec.CartridgeRAM))
	}
	return fmt.Sprintf("%s, %d save states", ram, len(rec.SaveStates))
}

// DefaultIndex returns the index of the default save state. This is the most
// recent manual save state or, if there are no manual states, the most recent
// automatic state.
//
// Returns false if there are no save states.
func (rec *Record) DefaultIndex() (int, bool) {
	for i := len(rec.SaveStates) - 1; i >= 0; i-- {
		if !rec.SaveStates[i].Automatic {
			return i, true
		}
	}
	if len(rec.SaveStates) == 0 {
		return 0, false
	}
	return len(rec.SaveStates) - 1, true
}

// Select returns the save state at the index. The Latest index selects the
// default save state (see DefaultIndex()).
//
// Returns false if the index does not select a save state.
func (rec *Record) Select(index int) (*savestate.State, bool) {
	if index == Latest {
		var ok bool
		index, ok = rec.DefaultIndex()
		if !ok {
			return nil, false
		}
	}
	if index < 0 || index >= len(rec.SaveStates) {
		return nil, false
	}
	return rec.SaveStates[index], true
}

// Summary writes a human readable listing of the record to the io.Writer. The
// default save state is marked with an asterisk.
func (rec *Record) Summary(w io.Writer) {
	if rec.CartridgeRAM == nil {
		fmt.Fprintln(w, "cartridge RAM: none")
	} else {
		fmt.Fprintf(w, "cartridge RAM: %d bytes\n", len(rec.CartridgeRAM))
	}

	if len(rec.SaveStates) == 0 {
		fmt.Fprintln(w, "save states: none")
		return
	}

	def, _ := rec.DefaultIndex()
	fmt.Fprintf(w, "save states: %d\n", len(rec.SaveStates))
	for i, st := range rec.SaveStates {
		m := ' '
		if i == def {
			m = '*'
		}
		fmt.Fprintf(w, "%c%3d %s\n", m, i, st)
	}
}

// copy of record that shares no slices with the original. save states are
// immutable so the state pointers are shared
func (rec *Record) copy() *Record {
	c := &Record{}
	if rec.CartridgeRAM != nil {
		c.CartridgeRAM = append([]byte{}, rec.CartridgeRAM...)
	}
	c.SaveStates = append([]*savestate.State{}, rec.SaveStates...)
	return c
}
