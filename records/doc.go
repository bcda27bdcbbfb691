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

// Package records is the persistent store of cartridge records. A record
// holds the battery backed RAM and the list of save states for a single
// cartridge, and is keyed by the bytes of the cartridge header (see the
// cartridge package).
//
// Records are created lazily on the first save for a cartridge. Save states
// are only ever appended to a record, never removed or reordered.
//
// Every operation that reads, modifies and then writes a record holds a lock
// for the header for the duration of the operation. Concurrent operations on
// different headers proceed independently.
//
// The Store does no caching. Every operation fetches the record from the
// database.KeyValue implementation it was created with.
//
// Cartridges with identical header bytes share a record. The header checksum
// is not used to disambiguate.
package records
