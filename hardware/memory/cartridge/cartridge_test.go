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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/test"
)

const linearSize = memorymap.OriginCartridgeROM + 0x8000

// newLinear returns a linear memory with a ROM containing a header with the
// title and cartridge type.
func newLinear(t *testing.T, title string, typ cartridge.Type) *memorymap.Linear {
	t.Helper()

	rom := make([]byte, 0x8000)
	copy(rom[0x0134:0x0144], title)
	rom[0x0147] = uint8(typ)

	// header checksum
	var checksum uint8
	for _, c := range rom[0x0134:0x014d] {
		checksum = checksum - c - 1
	}
	rom[0x014d] = checksum

	mem := memorymap.NewLinear(make([]byte, linearSize))
	test.DemandSuccess(t, mem.WriteRegion(memorymap.CartridgeROM, rom))
	return mem
}

func TestExtractHeader(t *testing.T) {
	mem := newLinear(t, "TETRIS", cartridge.MBC1RAMBattery)

	h, err := cartridge.ExtractHeader(mem)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Title(), "TETRIS")
	test.ExpectEquality(t, h.Type(), cartridge.MBC1RAMBattery)
	test.ExpectEquality(t, h.Type().String(), "MBC1+RAM+BATTERY")
	test.ExpectSuccess(t, h.ChecksumValid())
	test.ExpectFailure(t, h.IsZero())
	test.ExpectEquality(t, len(h.Key()), cartridge.HeaderLen)
	test.ExpectEquality(t, len(h.String()), cartridge.HeaderLen*2)

	// same header bytes produce the same identity
	g, err := cartridge.ExtractHeader(newLinear(t, "TETRIS", cartridge.MBC1RAMBattery))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g, h)

	// a different title produces a different identity
	g, err = cartridge.ExtractHeader(newLinear(t, "TETRIS DX", cartridge.MBC1RAMBattery))
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, g, h)
}

func TestHeaderChecksumNotEnforced(t *testing.T) {
	mem := newLinear(t, "BROKEN", cartridge.ROMOnly)
	test.DemandSuccess(t, mem.Poke(memorymap.OriginCartridgeROM+0x014d, 0x00))

	h, err := cartridge.ExtractHeader(mem)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, h.ChecksumValid())
}

func TestExtractHeaderUnavailable(t *testing.T) {
	_, err := cartridge.ExtractHeader(nil)
	test.ExpectSuccess(t, curated.Has(err, memorymap.MemoryUnavailable))

	// buffer too short to contain the header
	short := memorymap.NewLinear(make([]byte, memorymap.OriginCartridgeROM+0x100))
	_, err = cartridge.ExtractHeader(short)
	test.ExpectSuccess(t, curated.Has(err, memorymap.OutOfBounds))
}

func TestRAMSize(t *testing.T) {
	expected := func(t uint8) (int, bool) {
		switch {
		case t == 0x00:
			return 0, false
		case t >= 0x01 && t <= 0x03:
			return 32768, true
		case t >= 0x05 && t <= 0x06:
			return 2048, true
		case t >= 0x0f && t <= 0x13:
			return 32768, true
		case t >= 0x19 && t <= 0x1e:
			return 131072, true
		}
		return 0, false
	}

	for i := 0; i <= 0xff; i++ {
		sz, ok := cartridge.RAMSize(cartridge.Type(i))
		esz, eok := expected(uint8(i))
		test.ExpectEquality(t, sz, esz, i)
		test.ExpectEquality(t, ok, eok, i)

		// same result every time
		sz2, ok2 := cartridge.RAMSize(cartridge.Type(i))
		test.ExpectEquality(t, sz2, sz, i)
		test.ExpectEquality(t, ok2, ok, i)
	}
}

func TestReadCartridgeRAM(t *testing.T) {
	// no battery RAM is not an error
	mem := newLinear(t, "NORAM", cartridge.ROMOnly)
	ram, ok, err := cartridge.ReadCartridgeRAM(mem)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, len(ram), 0)

	mem = newLinear(t, "MBC2", cartridge.MBC2Battery)
	data := make([]byte, 2048)
	for i := range data {
		data[i] = uint8(i)
	}
	test.DemandSuccess(t, cartridge.WriteCartridgeRAM(mem, data))

	ram, ok, err = cartridge.ReadCartridgeRAM(mem)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectBytes(t, ram, data)

	// larger than the declared RAM
	err = cartridge.WriteCartridgeRAM(mem, make([]byte, 2049))
	test.ExpectSuccess(t, curated.Has(err, memorymap.OutOfBounds))
}
