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

package memory

import (
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/database"
	"github.com/jetsetilly/gopherboy/environment"
	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/records"
	"github.com/jetsetilly/gopherboy/recovery"
)

// OpenStores creates the record store and recovery instances named by the
// environment's preferences. Both are located in the resource directory (see
// the paths package).
func OpenStores(env *environment.Environment) (*records.Store, *recovery.Recovery, error) {
	dir, err := paths.ResourceDir(env.Prefs.StoreDir.String())
	if err != nil {
		return nil, nil, curated.Errorf("memory: %v", err)
	}

	dsk, err := database.NewDisk(dir)
	if err != nil {
		return nil, nil, curated.Errorf("memory: %v", err)
	}

	fn, err := paths.ResourcePath(env.Prefs.RecoveryFile.String())
	if err != nil {
		return nil, nil, curated.Errorf("memory: %v", err)
	}

	vol, err := recovery.NewFileVolatile(fn)
	if err != nil {
		return nil, nil, curated.Errorf("memory: %v", err)
	}

	return records.NewStore(dsk), recovery.NewRecovery(env, vol), nil
}
