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

package savestate

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"
	"time"

	"github.com/jetsetilly/gopherboy/curated"
)

const (
	stateMagic   = "GBSTATE\x00"
	stateVersion = uint16(1)
	crcLen       = 4
)

const (
	flagAutomatic = 0x01
	flagLabel     = 0x02
)

// maximum length of a single region in the binary form. protects against
// allocating huge amounts of memory for a corrupted length field
const maxRegionLen = 0x800000

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (st *State) MarshalBinary() ([]byte, error) {
	if len(st.Label) > 0xffff {
		return nil, curated.Errorf("savestate: label too long (%d bytes)", len(st.Label))
	}

	b := &bytes.Buffer{}
	b.WriteString(stateMagic)
	binary.Write(b, binary.LittleEndian, stateVersion)
	binary.Write(b, binary.LittleEndian, st.CreatedAt.UnixMilli())

	var flags uint8
	if st.Automatic {
		flags |= flagAutomatic
	}
	if st.Label != "" {
		flags |= flagLabel
	}
	b.WriteByte(flags)

	binary.Write(b, binary.LittleEndian, uint16(len(st.Label)))
	b.WriteString(st.Label)

	for _, r := range [][]byte{st.InternalState, st.EmulatedMemory, st.CartridgeRAM} {
		binary.Write(b, binary.LittleEndian, uint32(len(r)))
		b.Write(r)
	}

	binary.Write(b, binary.LittleEndian, crc32.ChecksumIEEE(b.Bytes()))

	return b.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// checksum is verified before any field is decoded.
func (st *State) UnmarshalBinary(data []byte) error {
	if len(data) < len(stateMagic)+2+crcLen {
		return curated.Errorf(Corrupted, "too short")
	}

	if string(data[:len(stateMagic)]) != stateMagic {
		return curated.Errorf(Corrupted, "invalid magic")
	}

	body := data[:len(data)-crcLen]
	crc := binary.LittleEndian.Uint32(data[len(data)-crcLen:])
	if crc32.ChecksumIEEE(body) != crc {
		return curated.Errorf(Corrupted, "checksum mismatch")
	}

	r := bytes.NewReader(body[len(stateMagic):])

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return curated.Errorf(Corrupted, err)
	}
	if version == 0 {
		return curated.Errorf(Corrupted, "zero version")
	}
	if version > stateVersion {
		return curated.Errorf(UnsupportedVersion, version)
	}

	var createdAt int64
	if err := binary.Read(r, binary.LittleEndian, &createdAt); err != nil {
		return curated.Errorf(Corrupted, err)
	}

	flags, err := r.ReadByte()
	if err != nil {
		return curated.Errorf(Corrupted, err)
	}

	var labelLen uint16
	if err := binary.Read(r, binary.LittleEndian, &labelLen); err != nil {
		return curated.Errorf(Corrupted, err)
	}
	label := make([]byte, labelLen)
	if _, err := io.ReadFull(r, label); err != nil {
		return curated.Errorf(Corrupted, err)
	}

	var regions [3][]byte
	for i := range regions {
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return curated.Errorf(Corrupted, err)
		}
		if n > maxRegionLen || int(n) > r.Len() {
			return curated.Errorf(Corrupted, curated.Errorf("region length (%d)", n))
		}
		regions[i] = make([]byte, n)
		if _, err := io.ReadFull(r, regions[i]); err != nil {
			return curated.Errorf(Corrupted, err)
		}
	}

	if r.Len() != 0 {
		return curated.Errorf(Corrupted, curated.Errorf("%d trailing bytes", r.Len()))
	}

	st.CreatedAt = time.UnixMilli(createdAt)
	st.Automatic = flags&flagAutomatic == flagAutomatic
	st.Label = ""
	if flags&flagLabel == flagLabel {
		st.Label = string(label)
	}
	st.InternalState = regions[0]
	st.EmulatedMemory = regions[1]
	st.CartridgeRAM = regions[2]

	return nil
}
