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

// Package logger is the central logging facility. Entries are kept in a ring
// of limited size and repeated entries are collapsed into a single entry with
// a repeat count.
//
// Log entries are tagged. The tag is normally the name of the package, or
// the name of the component within a package, that is creating the entry:
//
//	logger.Logf(env, "records", "state appended (%d states)", n)
//
// The first argument of every logging function is a Permission. The
// environment.Environment type implements Permission so that an emulator
// instance can silence its logging. The Allow value always permits logging.
package logger
