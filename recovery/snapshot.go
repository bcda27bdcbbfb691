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

package recovery

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/savestate"
)

// Snapshot of an emulation at teardown.
type Snapshot struct {
	Header cartridge.Header

	// nil if the cartridge has no battery backed RAM
	CartridgeRAM []byte

	// an automatic save state
	State *savestate.State
}

const (
	snapshotMagic   = "GBUNLOAD"
	snapshotVersion = uint16(1)
	crcLen          = 4
)

const flagCartridgeRAM = 0x01

const maxFieldLen = 0x1000000

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (snap *Snapshot) MarshalBinary() ([]byte, error) {
	if snap.State == nil {
		return nil, curated.Errorf("recovery: snapshot has no save state")
	}

	st, err := snap.State.MarshalBinary()
	if err != nil {
		return nil, curated.Errorf("recovery: %v", err)
	}

	b := &bytes.Buffer{}
	b.WriteString(snapshotMagic)
	binary.Write(b, binary.LittleEndian, snapshotVersion)
	b.Write(snap.Header[:])

	var flags uint8
	if snap.CartridgeRAM != nil {
		flags |= flagCartridgeRAM
	}
	b.WriteByte(flags)

	binary.Write(b, binary.LittleEndian, uint32(len(snap.CartridgeRAM)))
	b.Write(snap.CartridgeRAM)
	binary.Write(b, binary.LittleEndian, uint32(len(st)))
	b.Write(st)

	binary.Write(b, binary.LittleEndian, crc32.ChecksumIEEE(b.Bytes()))

	return b.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (snap *Snapshot) UnmarshalBinary(data []byte) error {
	if len(data) < len(snapshotMagic)+2+crcLen {
		return curated.Errorf(Corrupted, "too short")
	}
	if string(data[:len(snapshotMagic)]) != snapshotMagic {
		return curated.Errorf(Corrupted, "invalid magic")
	}

	body := data[:len(data)-crcLen]
	crc := binary.LittleEndian.Uint32(data[len(data)-crcLen:])
	if crc32.ChecksumIEEE(body) != crc {
		return curated.Errorf(Corrupted, "checksum mismatch")
	}

	r := bytes.NewReader(body[len(snapshotMagic):])

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return curated.Errorf(Corrupted, err)
	}
	if version == 0 {
		return curated.Errorf(Corrupted, "zero version")
	}
	if version > snapshotVersion {
		return curated.Errorf(UnsupportedVersion, curated.Errorf("snapshot version (%d)", version))
	}

	var h cartridge.Header
	if _, err := io.ReadFull(r, h[:]); err != nil {
		return curated.Errorf(Corrupted, err)
	}

	flags, err := r.ReadByte()
	if err != nil {
		return curated.Errorf(Corrupted, err)
	}

	ram, err := readField(r)
	if err != nil {
		return curated.Errorf(Corrupted, err)
	}

	d, err := readField(r)
	if err != nil {
		return curated.Errorf(Corrupted, err)
	}
	st := &savestate.State{}
	if err := st.UnmarshalBinary(d); err != nil {
		if curated.Is(err, savestate.UnsupportedVersion) {
			return curated.Errorf(UnsupportedVersion, err)
		}
		return curated.Errorf(Corrupted, err)
	}

	if r.Len() != 0 {
		return curated.Errorf(Corrupted, curated.Errorf("%d trailing bytes", r.Len()))
	}

	snap.Header = h
	snap.CartridgeRAM = nil
	if flags&flagCartridgeRAM == flagCartridgeRAM {
		snap.CartridgeRAM = ram
	}
	snap.State = st

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
