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

// Package cartridge identifies the cartridge loaded into linear memory and
// resolves the size of its battery backed RAM.
//
// The identity of a cartridge is the 28 byte window of the cartridge header
// from ROM address 0x0134 to 0x014f inclusive. This window contains the title,
// the manufacturer and licensee codes, the cartridge type, the ROM and RAM
// size bytes, the destination and version bytes, and the header and global
// checksums. Two cartridges with the same header bytes are considered to be
// the same cartridge even if the rest of the ROM differs. The header checksum
// is not validated when extracting the header. A ROM revision that changes
// neither the header fields nor the checksums will share persisted records
// with the original.
//
// The cartridge type byte (ROM address 0x0147) identifies the memory bank
// controller and whether the cartridge has battery backed RAM. The RAMSize()
// function maps the type byte to the size of RAM that is persisted.
package cartridge
