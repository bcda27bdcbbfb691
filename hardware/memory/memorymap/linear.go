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

import "github.com/jetsetilly/gopherboy/curated"

// Sentinel error patterns returned by the Linear type.
const (
	// a region or buffer bound has been violated. this is a programming or
	// ROM integrity error and is never retried
	OutOfBounds = "memorymap: %s: out of bounds (%d bytes at %#06x)"

	// no linear memory has been bound
	MemoryUnavailable = "memorymap: linear memory unavailable"
)

// Linear is a non-owning view of the linear memory. The zero value and the
// nil pointer are both valid and represent unbound memory. Every access to
// unbound memory fails with MemoryUnavailable.
type Linear struct {
	data []byte
}

// NewLinear is the preferred method of initialisation for the Linear type.
// The data is not copied.
func NewLinear(data []byte) *Linear {
	return &Linear{data: data}
}

// Bind the view to a new buffer. Useful if the runtime has grown the buffer.
func (l *Linear) Bind(data []byte) {
	l.data = data
}

// Bound returns true if the view is bound to a buffer.
func (l *Linear) Bound() bool {
	return l != nil && l.data != nil
}

// Len returns the current length of the buffer.
func (l *Linear) Len() int {
	if !l.Bound() {
		return 0
	}
	return len(l.data)
}

// span returns the origin and the size of the region for the current
// buffer. the size of a variable region is trimmed to the length of the
// buffer.
func (l *Linear) span(r Region) (int, int) {
	origin, size := Bounds(r)
	if IsFixed(r) {
		return origin, size
	}
	avail := len(l.data) - origin
	if avail < 0 {
		avail = 0
	}
	if size == 0 || size > avail {
		size = avail
	}
	return origin, size
}

// ReadRegion returns a copy of the region. For the variable sized regions,
// the copy is of the entire span available in the buffer.
func (l *Linear) ReadRegion(r Region) ([]byte, error) {
	if !l.Bound() {
		return nil, curated.Errorf(MemoryUnavailable)
	}
	if !r.Valid() {
		return nil, curated.Errorf(OutOfBounds, r, 0, 0)
	}
	_, size := l.span(r)
	return l.ReadSpan(r, size)
}

// ReadSpan returns a copy of the first n bytes of the region.
func (l *Linear) ReadSpan(r Region, n int) ([]byte, error) {
	if !l.Bound() {
		return nil, curated.Errorf(MemoryUnavailable)
	}
	if !r.Valid() {
		return nil, curated.Errorf(OutOfBounds, r, n, 0)
	}

	origin, size := Bounds(r)
	if n < 0 || (size > 0 && n > size) || origin+n > len(l.data) {
		return nil, curated.Errorf(OutOfBounds, r, n, origin)
	}

	b := make([]byte, n)
	copy(b, l.data[origin:origin+n])
	return b, nil
}

// WriteRegion copies data into the beginning of the region. The write fails
// with OutOfBounds if the data is larger than the declared size of the region
// or if it would extend past the end of the buffer. A failed write leaves the
// buffer untouched.
func (l *Linear) WriteRegion(r Region, data []byte) error {
	if !l.Bound() {
		return curated.Errorf(MemoryUnavailable)
	}
	if !r.Valid() {
		return curated.Errorf(OutOfBounds, r, len(data), 0)
	}

	origin, size := Bounds(r)
	if (size > 0 && len(data) > size) || origin+len(data) > len(l.data) {
		return curated.Errorf(OutOfBounds, r, len(data), origin)
	}

	copy(l.data[origin:], data)
	return nil
}

// Peek returns the byte at the address in the linear memory.
func (l *Linear) Peek(address int) (uint8, error) {
	if !l.Bound() {
		return 0, curated.Errorf(MemoryUnavailable)
	}
	if address < 0 || address >= len(l.data) {
		offset, r := MapAddress(address)
		return 0, curated.Errorf(OutOfBounds, r, 1, offset)
	}
	return l.data[address], nil
}

// Poke sets the byte at the address in the linear memory.
func (l *Linear) Poke(address int, value uint8) error {
	if !l.Bound() {
		return curated.Errorf(MemoryUnavailable)
	}
	if address < 0 || address >= len(l.data) {
		offset, r := MapAddress(address)
		return curated.Errorf(OutOfBounds, r, 1, offset)
	}
	l.data[address] = value
	return nil
}
