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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/test"
)

const testPattern = "test error: %s"
const wrapPattern = "wrapped: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf("error: %v", "foo")
	test.ExpectEquality(t, e.Error(), "error: foo")

	// packing errors of the same pattern next to each other causes one of
	// them to be dropped
	f := curated.Errorf("error: %v", e)
	test.ExpectEquality(t, f.Error(), "error: foo")

	// duplicates further along the chain are removed too
	g := curated.Errorf("records: %v", curated.Errorf("records: %v", curated.Errorf("store unavailable")))
	test.ExpectEquality(t, g.Error(), "records: store unavailable")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectSuccess(t, curated.IsAny(e))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Is(f, wrapPattern))

	// plain errors are never curated
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(wrapPattern, e)
	g := curated.Errorf(wrapPattern, f)

	test.ExpectSuccess(t, curated.Has(g, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectFailure(t, curated.Has(e, wrapPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapPattern, io.ErrUnexpectedEOF)
	test.ExpectSuccess(t, errors.Is(e, io.ErrUnexpectedEOF))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectSuccess(t, errors.Is(f, io.ErrUnexpectedEOF))

	g := curated.Errorf(testPattern, "no error here")
	test.ExpectSuccess(t, errors.Unwrap(g) == nil)
}
