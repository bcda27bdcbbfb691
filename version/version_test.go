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

package version

import (
	"testing"

	"github.com/jetsetilly/gopherboy/test"
)

func TestVersion(t *testing.T) {
	v, r := version("", buildInfo{})
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	v, r = version("", buildInfo{vcs: true, revision: "abc123", modified: true})
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abc123+dirty")

	v, r = version("v0.1.0", buildInfo{vcs: true, revision: "abc123"})
	test.ExpectEquality(t, v, "v0.1.0")
	test.ExpectEquality(t, r, "abc123")
}
