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

package database

import (
	"context"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
)

const diskExtension = ".rec"

// Disk is an implementation of KeyValue that stores every value in its own
// file.
type Disk struct {
	dir string
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// directory is created if it does not exist.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, curated.Errorf("database: %v", err)
	}
	return &Disk{dir: dir}, nil
}

func (dsk *Disk) String() string {
	return dsk.dir
}

func (dsk *Disk) filename(key []byte) string {
	return filepath.Join(dsk.dir, hex.EncodeToString(key)+diskExtension)
}

// Get implements the KeyValue interface.
func (dsk *Disk) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, curated.Errorf("database: %v", err)
	}

	data, err := os.ReadFile(dsk.filename(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, curated.Errorf("database: %v", err)
	}

	return data, true, nil
}

// Set implements the KeyValue interface.
func (dsk *Disk) Set(ctx context.Context, key []byte, value []byte) error {
	if err := ctx.Err(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	f, err := os.CreateTemp(dsk.dir, "tmp-*")
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	// the temporary file is removed on any error. after a successful rename
	// the remove will fail harmlessly
	defer os.Remove(f.Name())

	if _, err := f.Write(value); err != nil {
		f.Close()
		return curated.Errorf("database: %v", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return curated.Errorf("database: %v", err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	if err := os.Rename(f.Name(), dsk.filename(key)); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

// Keys returns a sorted list of all keys in the store.
func (dsk *Disk) Keys() ([][]byte, error) {
	entries, err := os.ReadDir(dsk.dir)
	if err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), diskExtension) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), diskExtension))
	}
	sort.Strings(names)

	keys := make([][]byte, 0, len(names))
	for _, n := range names {
		k, err := hex.DecodeString(n)
		if err != nil {
			// not a file created by Disk
			continue
		}
		keys = append(keys, k)
	}

	return keys, nil
}
