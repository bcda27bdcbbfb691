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

import (
	"encoding/hex"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

// Location of the header window in the cartridge ROM.
const (
	OriginHeader = 0x0134
	MemtopHeader = 0x014f
	HeaderLen    = MemtopHeader - OriginHeader + 1
)

// Offsets of the header fields, relative to the ROM.
const (
	addrTitle          = 0x0134
	addrTitleEnd       = 0x0143
	addrCartridgeType  = 0x0147
	addrHeaderChecksum = 0x014d
)

// Header is the identity of a cartridge. The zero value does not identify any
// cartridge.
type Header [HeaderLen]byte

// ExtractHeader reads the header window from the CartridgeROM region of the
// linear memory. Fails with memorymap.MemoryUnavailable if no linear memory is
// bound.
func ExtractHeader(mem *memorymap.Linear) (Header, error) {
	var h Header

	b, err := mem.ReadSpan(memorymap.CartridgeROM, MemtopHeader+1)
	if err != nil {
		return h, curated.Errorf("cartridge: %v", err)
	}

	copy(h[:], b[OriginHeader:])
	return h, nil
}

// Key returns the header as a byte slice suitable for use as a key in the
// record store.
func (h Header) Key() []byte {
	k := make([]byte, HeaderLen)
	copy(k, h[:])
	return k
}

// String returns the header as a hexadecimal string.
func (h Header) String() string {
	return hex.EncodeToString(h[:])
}

// Title returns the cartridge title. Non-printable bytes and trailing padding
// are removed.
func (h Header) Title() string {
	t := h[addrTitle-OriginHeader : addrTitleEnd-OriginHeader+1]
	s := strings.Builder{}
	for _, c := range t {
		if c == 0x00 {
			break
		}
		if c >= 0x20 && c < 0x7f {
			s.WriteByte(c)
		}
	}
	return strings.TrimSpace(s.String())
}

// Type returns the cartridge type byte.
func (h Header) Type() Type {
	return Type(h[addrCartridgeType-OriginHeader])
}

// ChecksumValid returns true if the header checksum byte matches the
// checksum of the preceding header bytes. The result is informational only
// and has no effect on the identity of the cartridge.
func (h Header) ChecksumValid() bool {
	var checksum uint8
	for _, c := range h[:addrHeaderChecksum-OriginHeader] {
		checksum = checksum - c - 1
	}
	return checksum == h[addrHeaderChecksum-OriginHeader]
}

// IsZero returns true if every byte of the header is zero. This will be the
// case if no cartridge has been loaded into zeroed memory.
func (h Header) IsZero() bool {
	return h == Header{}
}
