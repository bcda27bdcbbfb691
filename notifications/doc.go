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

// Package notifications allow communication from the memory and persistence
// core to a user interface or debugger collaborator. A save-state browser,
// for example, can use the NotifyStateSaved notice to refresh its listing.
//
// Notices are informational. An error returned by an implementation of
// Notify is logged by the sender but does not cause the operation that
// raised the notice to fail.
package notifications
