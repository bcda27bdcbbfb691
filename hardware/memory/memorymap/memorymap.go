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

package memorymap

import "fmt"

// Region of the linear memory.
type Region int

func (r Region) String() string {
	switch r {
	case InternalState:
		return "InternalState"
	case EmulatedMemory:
		return "EmulatedMemory"
	case CartridgeRAM:
		return "CartridgeRAM"
	case CartridgeROM:
		return "CartridgeROM"
	}

	return "undefined"
}

// List of valid Region values. The regions are disjoint and in address order.
const (
	InternalState Region = iota
	EmulatedMemory
	CartridgeRAM
	CartridgeROM
	numRegions
)

// Valid returns false if the value is not one of the listed regions.
func (r Region) Valid() bool {
	return r >= InternalState && r < numRegions
}

// Regions lists every region in address order.
var Regions = [numRegions]Region{InternalState, EmulatedMemory, CartridgeRAM, CartridgeROM}

// Origin of each region and the sizes of the regions with a fixed size.
const (
	OriginInternalState  = 0x000000
	SizeInternalState    = 0x000400
	OriginEmulatedMemory = 0x000400
	SizeEmulatedMemory   = 0x008000
	OriginCartridgeRAM   = 0x008400
	OriginCartridgeROM   = 0x073800
)

// MaxCartridgeRAM is the space reserved for the cartridge RAM.
const MaxCartridgeRAM = OriginCartridgeROM - OriginCartridgeRAM

// Bounds returns the origin and declared size of the region. The
// CartridgeROM region is open ended and is reported with a size of zero.
// Bounds panics if the region is not Valid(). The Linear accessors check the
// region first and return an OutOfBounds error instead.
func Bounds(r Region) (origin int, size int) {
	switch r {
	case InternalState:
		return OriginInternalState, SizeInternalState
	case EmulatedMemory:
		return OriginEmulatedMemory, SizeEmulatedMemory
	case CartridgeRAM:
		return OriginCartridgeRAM, MaxCartridgeRAM
	case CartridgeROM:
		return OriginCartridgeROM, 0
	}
	panic(fmt.Sprintf("memorymap: unknown region (%d)", r))
}

// IsFixed returns true if the region always has the same size, regardless of
// the cartridge that has been loaded.
func IsFixed(r Region) bool {
	return r == InternalState || r == EmulatedMemory
}

// MapAddress returns the region of the address and the offset of the
// address within that region. Negative addresses are reported in the
// InternalState region at offset zero.
func MapAddress(address int) (int, Region) {
	// note that the order of these filters is important
	if address >= OriginCartridgeROM {
		return address - OriginCartridgeROM, CartridgeROM
	}
	if address >= OriginCartridgeRAM {
		return address - OriginCartridgeRAM, CartridgeRAM
	}
	if address >= OriginEmulatedMemory {
		return address - OriginEmulatedMemory, EmulatedMemory
	}
	if address < 0 {
		return 0, InternalState
	}
	return address, InternalState
}
