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

package logger

import (
	"io"
	"strings"
)

const (
	penTag    = "\033[1;36m"
	penError  = "\033[2;31m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is highlighted and any entry with the word "error" in the detail is
// drawn with a red pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. Input is expected to be one or
// more entries, as returned by Entry.String().
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}

		var s strings.Builder

		tag, detail, ok := strings.Cut(l, ": ")
		if ok {
			s.WriteString(penTag)
			s.WriteString(tag)
			s.WriteString(penNormal)
			s.WriteString(": ")
			if strings.Contains(detail, "error") {
				s.WriteString(penError)
				s.WriteString(strings.TrimSuffix(detail, "\n"))
				s.WriteString(penNormal)
				s.WriteString("\n")
			} else {
				s.WriteString(detail)
			}
		} else {
			s.WriteString(l)
		}

		if _, err := io.WriteString(c.out, s.String()); err != nil {
			return n, err
		}
		n += len(l)
	}

	return n, nil
}
