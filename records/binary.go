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

package records

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/savestate"
)

const (
	recordMagic   = "GBRECORD"
	recordVersion = uint16(1)
	crcLen        = 4
)

const flagCartridgeRAM = 0x01

// maximum length of a single field in the binary form
const maxFieldLen = 0x1000000

// MarshalBinary implements the encoding.BinaryMarshaler interface. Save
// states are embedded using their own binary form.
func (rec *Record) MarshalBinary() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteString(recordMagic)
	binary.Write(b, binary.LittleEndian, recordVersion)

	var flags uint8
	if rec.CartridgeRAM != nil {
		flags |= flagCartridgeRAM
	}
	b.WriteByte(flags)

	binary.Write(b, binary.LittleEndian, uint32(len(rec.CartridgeRAM)))
	b.Write(rec.CartridgeRAM)

	binary.Write(b, binary.LittleEndian, uint32(len(rec.SaveStates)))
	for _, st := range rec.SaveStates {
		d, err := st.MarshalBinary()
		if err != nil {
			return nil, curated.Errorf("records: %v", err)
		}
		binary.Write(b, binary.LittleEndian, uint32(len(d)))
		b.Write(d)
	}

	binary.Write(b, binary.LittleEndian, crc32.ChecksumIEEE(b.Bytes()))

	return b.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (rec *Record) UnmarshalBinary(data []byte) error {
	if len(data) < len(recordMagic)+2+crcLen {
		return curated.Errorf(Corrupted, "too short")
	}

	if string(data[:len(recordMagic)]) != recordMagic {
		return curated.Errorf(Corrupted, "invalid magic")
	}

	body := data[:len(data)-crcLen]
	crc := binary.LittleEndian.Uint32(data[len(data)-crcLen:])
	if crc32.ChecksumIEEE(body) != crc {
		return curated.Errorf(Corrupted, "checksum mismatch")
	}

	r := bytes.NewReader(body[len(recordMagic):])

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return curated.Errorf(Corrupted, err)
	}
	if version == 0 || version > recordVersion {
		return curated.Errorf(Corrupted, curated.Errorf("unsupported version (%d)", version))
	}

	flags, err := r.ReadByte()
	if err != nil {
		return curated.Errorf(Corrupted, err)
	}

	ram, err := readField(r)
	if err != nil {
		return curated.Errorf(Corrupted, err)
	}

	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return curated.Errorf(Corrupted, err)
	}

	// every state needs at least its length field
	if int(n) > r.Len()/4 {
		return curated.Errorf(Corrupted, curated.Errorf("number of states (%d)", n))
	}

	states := make([]*savestate.State, 0, n)
	for i := 0; i < int(n); i++ {
		d, err := readField(r)
		if err != nil {
			return curated.Errorf(Corrupted, err)
		}
		st := &savestate.State{}
		if err := st.UnmarshalBinary(d); err != nil {
			return curated.Errorf(Corrupted, curated.Errorf("state %d: %v", i, err))
		}
		states = append(states, st)
	}

	if r.Len() != 0 {
		return curated.Errorf(Corrupted, curated.Errorf("%d trailing bytes", r.Len()))
	}

	rec.CartridgeRAM = nil
	if flags&flagCartridgeRAM == flagCartridgeRAM {
		rec.CartridgeRAM = ram
	}
	rec.SaveStates = states

	return nil
}

func readField(r *bytes.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	if n > maxFieldLen || int(n) > r.Len() {
		return nil, curated.Errorf("field length (%d)", n)
	}
	d := make([]byte, n)
	if _, err := io.ReadFull(r, d); err != nil {
		return nil, err
	}
	return d, nil
}
