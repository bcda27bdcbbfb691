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

package savestate_test

import (
	"encoding/binary"
	"hash/crc32"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/savestate"
	"github.com/jetsetilly/gopherboy/test"
)

const romSize = 0x8000

// newPopulatedLinear returns linear memory filled with random bytes. the
// cartridge type byte in the ROM header is set to typ.
func newPopulatedLinear(t *testing.T, rnd *rand.Rand, typ cartridge.Type) *memorymap.Linear {
	t.Helper()
	data := make([]byte, memorymap.OriginCartridgeROM+romSize)
	for i := range data {
		data[i] = uint8(rnd.IntN(256))
	}
	data[memorymap.OriginCartridgeROM+0x0147] = uint8(typ)
	return memorymap.NewLinear(data)
}

func regions(t *testing.T, mem *memorymap.Linear) [][]byte {
	t.Helper()
	is, err := mem.ReadRegion(memorymap.InternalState)
	test.DemandSuccess(t, err)
	em, err := mem.ReadRegion(memorymap.EmulatedMemory)
	test.DemandSuccess(t, err)
	ram, err := mem.ReadRegion(memorymap.CartridgeRAM)
	test.DemandSuccess(t, err)
	return [][]byte{is, em, ram}
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	for _, typ := range []cartridge.Type{cartridge.ROMOnly, cartridge.MBC1RAMBattery,
		cartridge.MBC2Battery, cartridge.MBC3RAMBattery, cartridge.MBC5RumbleRAMBatt} {
		mem := newPopulatedLinear(t, rnd, typ)
		before := regions(t, mem)

		st, err := savestate.Encode(mem, savestate.Meta{Label: "test"})
		test.DemandSuccess(t, err, typ)

		sz, _ := cartridge.RAMSize(typ)
		test.ExpectEquality(t, len(st.InternalState), memorymap.SizeInternalState, typ)
		test.ExpectEquality(t, len(st.EmulatedMemory), memorymap.SizeEmulatedMemory, typ)
		test.ExpectEquality(t, len(st.CartridgeRAM), sz, typ)
		test.ExpectFailure(t, st.CreatedAt.IsZero(), typ)
		test.ExpectFailure(t, st.Automatic, typ)

		test.ExpectSuccess(t, savestate.Decode(mem, st), typ)

		after := regions(t, mem)
		for i := range before {
			test.ExpectBytes(t, after[i], before[i], typ)
		}
	}
}

func TestDecodeOverwrites(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	mem := newPopulatedLinear(t, rnd, cartridge.MBC1RAMBattery)

	st, err := savestate.Encode(mem, savestate.Meta{})
	test.DemandSuccess(t, err)
	before := regions(t, mem)

	// scribble over the regions
	for a := 0; a < memorymap.OriginCartridgeRAM+0x8000; a += 0x100 {
		test.DemandSuccess(t, mem.Poke(a, ^before[0][0]))
	}

	test.DemandSuccess(t, savestate.Decode(mem, st))
	after := regions(t, mem)
	for i := range before {
		test.ExpectBytes(t, after[i], before[i], i)
	}
}

func TestSizeMismatch(t *testing.T) {
	rnd := rand.New(rand.NewPCG(5, 6))
	mem := newPopulatedLinear(t, rnd, cartridge.MBC1RAMBattery)

	st, err := savestate.Encode(mem, savestate.Meta{})
	test.DemandSuccess(t, err)
	before := regions(t, mem)

	short := *st
	short.EmulatedMemory = st.EmulatedMemory[:100]
	err = savestate.Decode(mem, &short)
	test.ExpectSuccess(t, curated.Is(err, savestate.SizeMismatch))

	// cartridge RAM from a cartridge type with a different RAM size
	wrongRAM := *st
	wrongRAM.CartridgeRAM = make([]byte, 2048)
	err = savestate.Decode(mem, &wrongRAM)
	test.ExpectSuccess(t, curated.Is(err, savestate.SizeMismatch))

	// nothing was written
	after := regions(t, mem)
	for i := range before {
		test.ExpectBytes(t, after[i], before[i], i)
	}
}

func TestUnboundMemory(t *testing.T) {
	_, err := savestate.Encode(nil, savestate.Meta{})
	test.ExpectSuccess(t, curated.Has(err, memorymap.MemoryUnavailable))

	err = savestate.Decode(nil, &savestate.State{})
	test.ExpectSuccess(t, curated.Has(err, memorymap.MemoryUnavailable))
}

func TestBinary(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 8))
	mem := newPopulatedLinear(t, rnd, cartridge.MBC2Battery)

	created := time.Date(2024, 3, 1, 12, 30, 0, 123456789, time.UTC)
	st, err := savestate.Encode(mem, savestate.Meta{CreatedAt: created, Label: "boss fight", Automatic: true})
	test.DemandSuccess(t, err)

	data, err := st.MarshalBinary()
	test.DemandSuccess(t, err)

	var rst savestate.State
	test.DemandSuccess(t, rst.UnmarshalBinary(data))
	test.ExpectSuccess(t, rst.CreatedAt.Equal(created.Truncate(time.Millisecond)))
	test.ExpectEquality(t, rst.Label, "boss fight")
	test.ExpectEquality(t, rst.Automatic, true)
	test.ExpectBytes(t, rst.InternalState, st.InternalState)
	test.ExpectBytes(t, rst.EmulatedMemory, st.EmulatedMemory)
	test.ExpectBytes(t, rst.CartridgeRAM, st.CartridgeRAM)

	// the unmarshalled state can be decoded into memory
	test.ExpectSuccess(t, savestate.Decode(mem, &rst))
}

func TestCorrupted(t *testing.T) {
	st := &savestate.State{
		InternalState:  make([]byte, memorymap.SizeInternalState),
		EmulatedMemory: make([]byte, memorymap.SizeEmulatedMemory),
		CartridgeRAM:   []byte{},
	}
	data, err := st.MarshalBinary()
	test.DemandSuccess(t, err)

	var rst savestate.State

	// flipped bit in the body
	bad := append([]byte{}, data...)
	bad[100] ^= 0x01
	test.ExpectSuccess(t, curated.Is(rst.UnmarshalBinary(bad), savestate.Corrupted))

	// truncated
	test.ExpectSuccess(t, curated.Is(rst.UnmarshalBinary(data[:len(data)-10]), savestate.Corrupted))

	// wrong magic
	bad = append([]byte{}, data...)
	bad[0] = 'X'
	test.ExpectSuccess(t, curated.Is(rst.UnmarshalBinary(bad), savestate.Corrupted))

	test.ExpectSuccess(t, curated.Is(rst.UnmarshalBinary(nil), savestate.Corrupted))
}

// rewrite the version field of a marshalled state and refresh the checksum
func withVersion(data []byte, version uint16) []byte {
	d := append([]byte{}, data...)
	binary.LittleEndian.PutUint16(d[8:], version)
	binary.LittleEndian.PutUint32(d[len(d)-4:], crc32.ChecksumIEEE(d[:len(d)-4]))
	return d
}

func TestVersion(t *testing.T) {
	st := &savestate.State{
		InternalState:  make([]byte, memorymap.SizeInternalState),
		EmulatedMemory: make([]byte, memorymap.SizeEmulatedMemory),
		CartridgeRAM:   []byte{},
	}
	data, err := st.MarshalBinary()
	test.DemandSuccess(t, err)

	var rst savestate.State
	test.ExpectSuccess(t, rst.UnmarshalBinary(withVersion(data, 1)))

	// a later version is not corruption
	err = rst.UnmarshalBinary(withVersion(data, 2))
	test.ExpectSuccess(t, curated.Is(err, savestate.UnsupportedVersion))
	test.ExpectFailure(t, curated.Is(err, savestate.Corrupted))

	test.ExpectSuccess(t, curated.Is(rst.UnmarshalBinary(withVersion(data, 0)), savestate.Corrupted))
}
