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

// Package database implements the key-value collaborator used by the records
// package to persist cartridge records. The KeyValue interface is all the
// records package needs and it makes no assumptions about durability beyond
// what the implementation provides.
//
// Two implementations are provided. Disk stores each value in its own file
// beneath a directory. Writes are made to a temporary file which is then
// renamed over the previous value, meaning a reader will only ever see a
// complete value. Memory stores values in a map and is intended for testing.
// It can be instructed to fail, which is useful for exercising the error
// paths of the records package.
//
// Keys are arbitrary byte sequences. The Disk implementation uses the hex
// encoding of the key as the filename.
package database
