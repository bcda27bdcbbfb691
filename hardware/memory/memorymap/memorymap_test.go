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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/test"
)

const validMemMap = `000000 -> 0003ff	InternalState
000400 -> 0083ff	EmulatedMemory
008400 -> 0737ff	CartridgeRAM
073800 -> ......	CartridgeROM
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestDisjoint(t *testing.T) {
	// every region begins exactly where the previous one ends
	end := 0
	for _, r := range memorymap.Regions {
		origin, size := memorymap.Bounds(r)
		test.ExpectEquality(t, origin, end, r)
		end = origin + size
	}
}

func TestMapAddress(t *testing.T) {
	offset, r := memorymap.MapAddress(0x0003ff)
	test.ExpectEquality(t, r, memorymap.InternalState)
	test.ExpectEquality(t, offset, 0x3ff)

	offset, r = memorymap.MapAddress(0x000400)
	test.ExpectEquality(t, r, memorymap.EmulatedMemory)
	test.ExpectEquality(t, offset, 0)

	offset, r = memorymap.MapAddress(0x008401)
	test.ExpectEquality(t, r, memorymap.CartridgeRAM)
	test.ExpectEquality(t, offset, 1)

	offset, r = memorymap.MapAddress(0x073800 + 0x0147)
	test.ExpectEquality(t, r, memorymap.CartridgeROM)
	test.ExpectEquality(t, offset, 0x0147)
}
