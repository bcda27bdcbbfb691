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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Overrides are preference values that take precedence over the values on
// disk. They are applied with Disk.SetOverrides().
type Overrides map[string]string

// ParseOverrides parses a string of the form "key::value; key::value".
// Malformed key/value pairs are ignored.
func ParseOverrides(s string) Overrides {
	o := make(Overrides)
	for _, p := range strings.Split(s, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			o[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	return o
}

func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, o[k]))
	}
	return strings.TrimSuffix(s.String(), "; ")
}
