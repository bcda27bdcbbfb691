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

// Package memorymap describes the regions of the linear memory shared by the
// memory core and the CPU core. The linear memory is a flat byte buffer owned
// by the runtime. The regions within it are fixed:
//
//	000000 -> 0003ff	InternalState
//	000400 -> 0083ff	EmulatedMemory
//	008400 -> 0737ff	CartridgeRAM
//	073800 -> ......	CartridgeROM
//
// InternalState and EmulatedMemory have a fixed size. The size of the
// cartridge RAM depends on the cartridge. The space reserved for it ends
// where the cartridge ROM begins. The cartridge ROM occupies the remainder of
// the linear memory.
//
// The Linear type is a non-owning view of the buffer. All accesses through
// the view are bounds-checked against the current length of the buffer.
package memorymap
