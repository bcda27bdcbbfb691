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

// Package paths contains functions to prepare paths to gopherboy resources.
//
// The ResourcePath() function prepends the supplied resource path with the
// appropriate base directory. For example, the following returns the
// directory used by the default record store:
//
//	d, err := paths.ResourcePath("records")
//
// If the base resource directory, ".gopherboy", is present in the program's
// current directory then that is used. Otherwise, the user's config directory
// is used (as returned by os.UserConfigDir()). On a modern Linux system the
// path in the example above would be:
//
//	/home/user/.config/gopherboy/records
//
// The directory part of the returned path is created if it does not exist.
package paths
