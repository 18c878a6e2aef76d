// This file is part of GopherSNES.
//
// GopherSNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSNES.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function.
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, in the way that the go command has the build,
// doc and test modes. Each mode can have its own flags and arguments.
// Sub-modes are added with the AddSubModes() function. The first sub-mode is
// the default.
//
//	md.AddSubModes("info", "scan")
//
// All sub-mode comparisons are case insensitive and Mode() always returns the
// upper case name.
//
// After a Parse() that selects a sub-mode, the program calls NewMode() and
// adds the flags for that mode before calling Parse() again:
//
//	md.Parse()
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		log := md.AddBool("log", false, "echo log to stdout")
//		p, err := md.Parse()
//		...
//	}
//
// If the default sub-mode is selected because the first argument is not the
// name of a sub-mode, the same arguments are parsed again by the next call to
// Parse().
package modalflag
