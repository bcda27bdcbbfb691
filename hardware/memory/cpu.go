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

package memory

// CPU defines the operations required of the CPU core.
type CPU interface {
	// flush any CPU state not held in linear memory into the InternalState
	// region
	SerialiseState() error

	// refresh CPU state from the InternalState region
	DeserialiseState() error

	// reset the CPU. called after a new cartridge ROM has been loaded
	Reset()
}
