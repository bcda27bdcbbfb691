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

// Package version reports the version of the application. The version number
// is set at link time with:
//
//	-ldflags "-X github.com/jetsetilly/gopherboy/version.number=v0.1.0"
//
// Otherwise the build information embedded by the Go toolchain is used.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopherboy"

// set by the linker. empty if not set
var number string

// Version returns the version string and the revision string. The version
// string is "unreleased" if the application was built without a version
// number but with VCS information, and "local" if there is no VCS
// information. A revision built from modified source is suffixed with
// "+dirty".
func Version() (string, string) {
	return version(number, readBuildInfo())
}

type buildInfo struct {
	vcs      bool
	revision string
	modified bool
}

func readBuildInfo() buildInfo {
	var bi buildInfo

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs":
			bi.vcs = true
		case "vcs.revision":
			bi.revision = v.Value
		case "vcs.modified":
			bi.modified = v.Value == "true"
		}
	}

	return bi
}

func version(number string, bi buildInfo) (string, string) {
	revision := "no revision information"
	if bi.revision != "" {
		revision = bi.revision
		if bi.modified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		return number, revision
	case bi.vcs:
		return "unreleased", revision
	}
	return "local", revision
}
