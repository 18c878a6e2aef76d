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

// Package logger is the central log repository for GopherSNES. There is a
// single central log that can be added to with the Log() and Logf()
// functions. Each entry has a tag, which is usually the name of the package
// or component adding the entry.
//
//	logger.Logf(logger.Allow, "header", "rejected candidate at %#06x", offset)
//
// Consecutive identical entries are collapsed into one entry with a repeat
// count.
//
// The log can be written to any io.Writer with Write() and Tail(). SetEcho()
// causes new entries to be written to an io.Writer as they are added. The
// command line tool uses this to implement its -log flag.
package logger
