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

// Package curated wraps the plain Go error type so that errors can be
// identified by the pattern used to create them.
//
// Curated errors are created with the Errorf() function, which takes a
// pattern and placeholder values in the same way as fmt.Errorf():
//
//	e := curated.Errorf("region %s: %d bytes", region, n)
//
// The Is() function checks whether an error was created with a specific
// pattern. The Has() function checks whether the pattern appears anywhere in
// the chain of curated errors:
//
//	f := curated.Errorf("savestate: %v", e)
//	curated.Is(f, "region %s: %d bytes")  // false
//	curated.Has(f, "region %s: %d bytes") // true
//
// Sentinel errors are expressed as exported pattern constants in the package
// that raises them. For example, the memorymap package exports OutOfBounds and
// callers test for it with curated.Has(err, memorymap.OutOfBounds).
//
// The Error() implementation normalises the message chain by removing
// adjacent duplicate parts. Parts are separated by the sub-string ': ' so the
// chain:
//
//	records: records: store unavailable
//
// is reported as:
//
//	records: store unavailable
//
// Curated errors that wrap another error (a value of type error among the
// placeholder values) support errors.Unwrap() so that the standard library's
// errors.Is() and errors.As() reach the wrapped error.
package curated
