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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "LIST", "EXPORT", "IMPORT")
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function.
//
// A mode is a special command line argument that puts the program into a
// different mode of operation. Each mode can have its own set of flags and
// expected arguments. The first mode given to AddSubModes() is the default
// mode and is selected if the first non-flag argument is not a mode. Mode
// comparisons are case insensitive.
//
// After deciding on the mode, NewMode() should be called before adding the
// flags for that mode and calling Parse() again:
//
//	switch md.Mode() {
//	case "LIST":
//		md.NewMode()
//		viz := md.AddBool("memviz", false, "output graphviz of record")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		list(md.RemainingArgs(), *viz)
//	}
//
// Help messages are printed automatically when the -help flag is given.
package modalflag
