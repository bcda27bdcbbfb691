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

import "context"

// KeyValue is the interface to a key-value store.
type KeyValue interface {
	// Get the value for the key. The ok value is false if no value exists
	// for the key, which is not an error.
	Get(ctx context.Context, key []byte) (value []byte, ok bool, err error)

	// Set the value for the key, replacing any existing value.
	Set(ctx context.Context, key []byte, value []byte) error
}
