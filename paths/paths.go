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
	"os"
	"path/filepath"
)

const baseResourcePath = ".gopherboy"

// ResourcePath returns the resource path, prepended with the base resource
// directory. Empty strings in the resource list are ignored.
//
// All directories leading up to the final element are created. The final
// element is assumed to be a file unless it is the only element, in which
// case it is created as a directory. Use ResourceDir() when the final
// element should always be a directory.
func ResourcePath(resource ...string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	p := []string{base}
	for _, r := range resource {
		if r != "" {
			p = append(p, r)
		}
	}
	pth := filepath.Join(p...)

	dir := filepath.Dir(pth)
	if len(p) == 1 {
		dir = pth
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}

// ResourceDir is like ResourcePath() except that the returned path is always
// created as a directory.
func ResourceDir(resource ...string) (string, error) {
	pth, err := ResourcePath(resource...)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}
	return pth, nil
}

func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, baseResourcePath[1:]), nil
}
