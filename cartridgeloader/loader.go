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

package cartridgeloader

import (
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
)

// MaxROMSize is the size of the largest cartridge ROM that will be loaded.
// This is the largest ROM addressable by the MBC5 mapper.
const MaxROMSize = 0x800000

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".GB", ".GBC", ".SGB", ".CGB", ".ROM", ".BIN"}

// Loader is used to specify the cartridge ROM to load into the emulation.
type Loader struct {
	// filename of cartridge to load. can be a http or https URL
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// Recognised returns true if the filename has one of the file extensions in
// the FileExtensions list. Extensions are not case sensitive.
func Recognised(filename string) bool {
	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load(ctx context.Context) error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil && len(u.Scheme) > 1 {
		// single letter schemes are windows drive letters
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, cl.Filename, nil)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", resp.Status)
		}

		data, err = io.ReadAll(io.LimitReader(resp.Body, MaxROMSize+1))
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		f, err := os.Open(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer f.Close()

		data, err = io.ReadAll(io.LimitReader(f, MaxROMSize+1))
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) == 0 {
		return curated.Errorf("cartridgeloader: %v", "empty cartridge")
	}
	if len(data) > MaxROMSize {
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("cartridge too large (more than %d bytes)", MaxROMSize))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}
