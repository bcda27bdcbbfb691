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

// Package memory is the memory and persistence core of the emulation. The
// Memory type binds a view over the linear memory shared with the CPU core
// and coordinates the cartridge identity, save state codec, record store and
// crash recovery packages.
//
// The linear memory is divided into regions, defined in the memorymap
// package:
//
//	0x000000	InternalState		CPU registers and other core state
//	0x000400	EmulatedMemory		the Game Boy address space
//	0x008400	CartridgeRAM		battery backed cartridge RAM
//	0x073800	CartridgeROM		the cartridge ROM image
//
// The CPU core keeps some of its state outside of linear memory. Before the
// InternalState region is read the CPU is asked to serialise that state into
// the region and after the region is written the CPU is asked to deserialise
// it. See the CPU interface.
//
// A typical session:
//
//	mem, _ := memory.NewMemory(env, cpu, store, rc)
//	_ = mem.Initialize(ctx, linear)
//	_ = mem.LoadCartridgeROM(rom)
//	_, _ = mem.LoadCartridgeRAM(ctx)
//
//	// ... emulation ...
//
//	_ = mem.SaveState(ctx, "before boss")
//	_ = mem.LoadState(ctx, records.Latest)
//
//	// ... emulation ends ...
//
//	_ = mem.Teardown()
//
// Teardown() does not write to the record store. It captures a snapshot into
// the recovery package's volatile store, which is replayed into the record
// store on the next call to Initialize(). This means that the emulation state
// survives the process being ended at any point after Teardown() returns.
//
// Memory is not safe for concurrent use. All methods should be called from
// the goroutine that runs the emulation.
package memory
