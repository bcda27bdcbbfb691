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
	"sync"

	"github.com/jetsetilly/gopherboy/curated"
)

// Memory is an implementation of KeyValue that keeps all values in memory.
// It is safe for concurrent use.
type Memory struct {
	crit    sync.Mutex
	entries map[string][]byte
	failure error

	// the number of successful calls to Set()
	sets int
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string][]byte),
	}
}

// SetFailure causes all subsequent calls to Get() and Set() to fail with the
// supplied error. A nil error returns the store to normal operation.
func (mem *Memory) SetFailure(err error) {
	mem.crit.Lock()
	defer mem.crit.Unlock()
	mem.failure = err
}

// Len returns the number of keys in the store.
func (mem *Memory) Len() int {
	mem.crit.Lock()
	defer mem.crit.Unlock()
	return len(mem.entries)
}

// Sets returns the number of successful calls to Set().
func (mem *Memory) Sets() int {
	mem.crit.Lock()
	defer mem.crit.Unlock()
	return mem.sets
}

// Get implements the KeyValue interface.
func (mem *Memory) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, curated.Errorf("database: %v", err)
	}

	mem.crit.Lock()
	defer mem.crit.Unlock()

	if mem.failure != nil {
		return nil, false, curated.Errorf("database: %v", mem.failure)
	}

	v, ok := mem.entries[string(key)]
	if !ok {
		return nil, false, nil
	}

	return append([]byte{}, v...), true, nil
}

// Set implements the KeyValue interface.
func (mem *Memory) Set(ctx context.Context, key []byte, value []byte) error {
	if err := ctx.Err(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	mem.crit.Lock()
	defer mem.crit.Unlock()

	if mem.failure != nil {
		return curated.Errorf("database: %v", mem.failure)
	}

	mem.entries[string(key)] = append([]byte{}, value...)
	mem.sets++

	return nil
}
