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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The extension argument should
// include the leading dot, or be empty.
//
// Format of the returned filename is:
//
//	prepend_cartname_YYYYMMDD_HHMMSS.ext
//
// The cartname part is omitted if the cartName argument is empty.
func UniqueFilename(prepend string, cartName string, extension string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	c := strings.Map(func(r rune) rune {
		if r == ' ' || r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, strings.TrimSpace(cartName))

	if len(c) > 0 {
		return fmt.Sprintf("%s_%s_%s%s", prepend, c, timestamp, extension)
	}
	return fmt.Sprintf("%s_%s%s", prepend, timestamp, extension)
}
