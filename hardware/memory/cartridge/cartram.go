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

package cartridge

import (
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

// CartridgeRAMSize returns the RAM size of the cartridge in linear memory.
// The second return value is false if the cartridge declares no RAM.
func CartridgeRAMSize(mem *memorymap.Linear) (int, bool, error) {
	h, err := ExtractHeader(mem)
	if err != nil {
		return 0, false, err
	}
	sz, ok := RAMSize(h.Type())
	return sz, ok, nil
}

// ReadCartridgeRAM returns a copy of the cartridge RAM. The second return
// value is false, and the error nil, if the cartridge declares no RAM.
func ReadCartridgeRAM(mem *memorymap.Linear) ([]byte, bool, error) {
	sz, ok, err := CartridgeRAMSize(mem)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	ram, err := mem.ReadSpan(memorymap.CartridgeRAM, sz)
	if err != nil {
		return nil, false, curated.Errorf("cartridge: %v", err)
	}

	return ram, true, nil
}

// WriteCartridgeRAM writes data to the cartridge RAM region. The data must
// not be larger than the RAM size declared by the cartridge. Writing to a
// cartridge that declares no RAM is an OutOfBounds error unless the data is
// empty.
func WriteCartridgeRAM(mem *memorymap.Linear, data []byte) error {
	sz, _, err := CartridgeRAMSize(mem)
	if err != nil {
		return err
	}

	if len(data) > sz {
		return curated.Errorf("cartridge: %v", curated.Errorf(memorymap.OutOfBounds,
			memorymap.CartridgeRAM, len(data), memorymap.OriginCartridgeRAM))
	}

	if err := mem.WriteRegion(memorymap.CartridgeRAM, data); err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	return nil
}
