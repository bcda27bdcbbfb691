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

package notifications

// Notice describes events that somehow change the presentation of the
// emulation.
type Notice string

// List of defined notifications.
const (
	// a cartridge ROM has been written into linear memory and the CPU has
	// been reset
	NotifyCartridgeLoaded Notice = "NotifyCartridgeLoaded"

	// a save state has been appended to the cartridge record
	NotifyStateSaved Notice = "NotifyStateSaved"

	// a save state has been written back into linear memory
	NotifyStateLoaded Notice = "NotifyStateLoaded"

	// battery backed cartridge RAM has been persisted or restored
	NotifyRAMSaved  Notice = "NotifyRAMSaved"
	NotifyRAMLoaded Notice = "NotifyRAMLoaded"

	// a snapshot left by a previous session has been replayed into the
	// record store
	NotifyRecoveryReplayed Notice = "NotifyRecoveryReplayed"

	// a snapshot left by a previous session could not be replayed. it will be
	// retried on the next initialisation
	NotifyRecoveryPending Notice = "NotifyRecoveryPending"
)

// Notify is used for direct communication between the memory core and the
// interface collaborator.
type Notify interface {
	Notify(notice Notice) error
}
