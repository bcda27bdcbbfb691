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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jetsetilly/gopherboy/curated"
)

// Volatile is the interface to the store used to hold a snapshot between
// the end of one session and the start of the next. All methods are
// synchronous.
type Volatile interface {
	// Get the value for the key. The ok value is false if no value exists
	// for the key.
	Get(key string) (value []byte, ok bool, err error)

	// Set the value for the key, replacing any existing value.
	Set(key string, value []byte) error

	// Delete the value for the key. Deleting a key that does not exist is
	// not an error.
	Delete(key string) error
}

// MemVolatile is an implementation of Volatile that keeps values in memory.
// Values only survive for as long as the MemVolatile instance.
type MemVolatile struct {
	crit    sync.Mutex
	entries map[string][]byte
}

// NewMemVolatile is the preferred method of initialisation for the
// MemVolatile type.
func NewMemVolatile() *MemVolatile {
	return &MemVolatile{
		entries: make(map[string][]byte),
	}
}

// Get implements the Volatile interface.
func (vol *MemVolatile) Get(key string) ([]byte, bool, error) {
	vol.crit.Lock()
	defer vol.crit.Unlock()
	v, ok := vol.entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte{}, v...), true, nil
}

// Set implements the Volatile interface.
func (vol *MemVolatile) Set(key string, value []byte) error {
	vol.crit.Lock()
	defer vol.crit.Unlock()
	vol.entries[key] = append([]byte{}, value...)
	return nil
}

// Delete implements the Volatile interface.
func (vol *MemVolatile) Delete(key string) error {
	vol.crit.Lock()
	defer vol.crit.Unlock()
	delete(vol.entries, key)
	return nil
}

// FileVolatile is an implementation of Volatile that keeps every value in a
// file. The filename is the key with a fixed prefix.
type FileVolatile struct {
	prefix string
}

// NewFileVolatile is the preferred method of initialisation for the
// FileVolatile type. Values are stored in files named prefix.key
func NewFileVolatile(prefix string) (*FileVolatile, error) {
	if err := os.MkdirAll(filepath.Dir(prefix), 0o700); err != nil {
		return nil, curated.Errorf("recovery: %v", err)
	}
	return &FileVolatile{prefix: prefix}, nil
}

func (vol *FileVolatile) filename(key string) string {
	return vol.prefix + "." + key
}

// Get implements the Volatile interface.
func (vol *FileVolatile) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(vol.filename(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, curated.Errorf("recovery: %v", err)
	}
	return data, true, nil
}

// Set implements the Volatile interface. The value is written to a temporary
// file and renamed, so a reader sees either the previous value or the new
// value.
func (vol *FileVolatile) Set(key string, value []byte) error {
	fn := vol.filename(key)
	tmp := fn + ".tmp"

	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return curated.Errorf("recovery: %v", err)
	}
	if err := os.Rename(tmp, fn); err != nil {
		_ = os.Remove(tmp)
		return curated.Errorf("recovery: %v", err)
	}
	return nil
}

// Delete implements the Volatile interface.
func (vol *FileVolatile) Delete(key string) error {
	err := os.Remove(vol.filename(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return curated.Errorf("recovery: %v", err)
	}
	return nil
}
