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

import "sync"

// keyedMutex provides a mutex for every key. entries are created on demand and
// are discarded once nothing is holding or waiting on the lock.
type keyedMutex struct {
	crit  sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	sync.Mutex
	refs int
}

// lock the key. the returned function unlocks the key.
func (km *keyedMutex) lock(key string) func() {
	km.crit.Lock()
	if km.locks == nil {
		km.locks = make(map[string]*keyedLock)
	}
	l, ok := km.locks[key]
	if !ok {
		l = &keyedLock{}
		km.locks[key] = l
	}
	l.refs++
	km.crit.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		km.crit.Lock()
		l.refs--
		if l.refs == 0 {
			delete(km.locks, key)
		}
		km.crit.Unlock()
	}
}

// the number of keys currently held or waited on
func (km *keyedMutex) len() int {
	km.crit.Lock()
	defer km.crit.Unlock()
	return len(km.locks)
}
