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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a string describing the memory map. The CartridgeROM
// region is open ended and its end address is not shown.
func Summary() string {
	s := strings.Builder{}
	for _, r := range Regions {
		origin, size := Bounds(r)
		if size == 0 {
			s.WriteString(fmt.Sprintf("%06x -> ......\t%s\n", origin, r))
		} else {
			s.WriteString(fmt.Sprintf("%06x -> %06x\t%s\n", origin, origin+size-1, r))
		}
	}
	return s.String()
}
