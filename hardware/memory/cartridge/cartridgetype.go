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

import "fmt"

// Type is the cartridge type byte from the cartridge header.
type Type uint8

// List of cartridge types that have battery backed RAM, or which are
// commonly encountered.
const (
	ROMOnly           Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBattery    Type = 0x03
	MBC2              Type = 0x05
	MBC2Battery       Type = 0x06
	MBC3TimerBattery  Type = 0x0f
	MBC3TimerRAMBatt  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBattery    Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1a
	MBC5RAMBattery    Type = 0x1b
	MBC5Rumble        Type = 0x1c
	MBC5RumbleRAM     Type = 0x1d
	MBC5RumbleRAMBatt Type = 0x1e
)

var typeNames = map[Type]string{
	ROMOnly:           "ROM",
	MBC1:              "MBC1",
	MBC1RAM:           "MBC1+RAM",
	MBC1RAMBattery:    "MBC1+RAM+BATTERY",
	MBC2:              "MBC2",
	MBC2Battery:       "MBC2+BATTERY",
	MBC3TimerBattery:  "MBC3+TIMER+BATTERY",
	MBC3TimerRAMBatt:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:              "MBC3",
	MBC3RAM:           "MBC3+RAM",
	MBC3RAMBattery:    "MBC3+RAM+BATTERY",
	MBC5:              "MBC5",
	MBC5RAM:           "MBC5+RAM",
	MBC5RAMBattery:    "MBC5+RAM+BATTERY",
	MBC5Rumble:        "MBC5+RUMBLE",
	MBC5RumbleRAM:     "MBC5+RUMBLE+RAM",
	MBC5RumbleRAMBatt: "MBC5+RUMBLE+RAM+BATTERY",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("unknown (%#02x)", uint8(t))
}

// RAM sizes for the memory bank controller families.
const (
	ramSizeMBC1 = 32768
	ramSizeMBC2 = 2048
	ramSizeMBC3 = 32768
	ramSizeMBC5 = 131072
)

// RAMSize returns the size of the RAM that is persisted for a cartridge
// type. The second return value is false if the cartridge type has no RAM.
//
// The function is defined for every value of the cartridge type byte.
// Unlisted values and the ROM-only type report no RAM. Note that the size is
// the maximum size supported by the controller family and not the value of
// the RAM size byte in the header.
func RAMSize(t Type) (int, bool) {
	switch {
	case t >= 0x01 && t <= 0x03:
		return ramSizeMBC1, true
	case t >= 0x05 && t <= 0x06:
		return ramSizeMBC2, true
	case t >= 0x0f && t <= 0x13:
		return ramSizeMBC3, true
	case t >= 0x19 && t <= 0x1e:
		return ramSizeMBC5, true
	}
	return 0, false
}
