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

// Package savestate converts the relevant regions of linear memory to and
// from a State value.
//
// A State holds copies of the InternalState, EmulatedMemory and CartridgeRAM
// regions, taken at a single point in time. Decoding a State writes the three
// regions back into linear memory in the same order. The length of each
// stored region must match the size of the live region exactly. A mismatch
// is reported as a SizeMismatch error and nothing is written.
//
// The State type implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler. The binary form is versioned and protected by a
// CRC32 checksum:
//
//	magic        8 bytes   "GBSTATE\x00"
//	version      uint16
//	createdAt    int64     milliseconds since the unix epoch
//	flags        uint8     bit 0: automatic, bit 1: has label
//	label        uint16 length + bytes
//	internal     uint32 length + bytes
//	emulated     uint32 length + bytes
//	cartram      uint32 length + bytes
//	crc          uint32    CRC32 (IEEE) of all preceding bytes
//
// All multi-byte values are little-endian.
package savestate
