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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
)

type visualRecord struct {
	Title        string
	Type         string
	CartridgeRAM int
	SaveStates   []*visualState
}

type visualState struct {
	Index     int
	CreatedAt string
	Label     string
	Automatic bool
	Default   bool
}

// Visualise writes a graphviz representation of the record to the io.Writer.
// Memory regions are represented only by their length.
func Visualise(w io.Writer, h cartridge.Header, rec *Record) {
	v := &visualRecord{
		Title:        h.Title(),
		Type:         h.Type().String(),
		CartridgeRAM: len(rec.CartridgeRAM),
	}

	def, _ := rec.DefaultIndex()
	for i, st := range rec.SaveStates {
		v.SaveStates = append(v.SaveStates, &visualState{
			Index:     i,
			CreatedAt: st.CreatedAt.Format("2006-01-02 15:04:05.000"),
			Label:     st.Label,
			Automatic: st.Automatic,
			Default:   i == def,
		})
	}

	memviz.Map(w, v)
}
